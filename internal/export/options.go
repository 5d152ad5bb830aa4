package export

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shanghaoqi/glyphicon/internal/render"
)

const (
	DefaultStem     = "shanghaoqi_icon"
	DefaultIconSize = 256

	// MaxIconSize is the largest edge an ICO directory entry can describe.
	MaxIconSize = 256
)

// DefaultSizes are the PNG edge lengths written by a default run.
var DefaultSizes = []int{16, 32, 48, 64, 128, 256, 512, 1024}

var (
	ErrEmptyStem   = errors.New("output stem is empty")
	ErrInvalidStem = errors.New("output stem must not contain a path separator")
)

// SizeError reports a size that cannot be exported.
type SizeError struct {
	Field  string
	Size   int
	Reason string
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%s %d: %s", e.Field, e.Size, e.Reason)
}

// Options controls what an Exporter writes and where.
type Options struct {
	Dir        string
	Stem       string
	Sizes      []int
	MasterSize int
	IconSize   int
}

func DefaultOptions() Options {
	return Options{
		Dir:        ".",
		Stem:       DefaultStem,
		Sizes:      append([]int(nil), DefaultSizes...),
		MasterSize: render.MasterSize,
		IconSize:   DefaultIconSize,
	}
}

// Validate rejects option sets that would feed a non-positive size to the
// geometry, or ask for a size larger than the master render.
func (o Options) Validate() error {
	if o.Stem == "" {
		return ErrEmptyStem
	}
	if strings.ContainsAny(o.Stem, `/\`) {
		return ErrInvalidStem
	}
	if o.MasterSize <= 0 {
		return &SizeError{Field: "master size", Size: o.MasterSize, Reason: "must be positive"}
	}
	for _, size := range o.Sizes {
		if err := checkSize("size", size, o.MasterSize); err != nil {
			return err
		}
	}
	if err := checkSize("icon size", o.IconSize, o.MasterSize); err != nil {
		return err
	}
	if o.IconSize > MaxIconSize {
		return &SizeError{Field: "icon size", Size: o.IconSize, Reason: fmt.Sprintf("exceeds ICO limit %d", MaxIconSize)}
	}
	return nil
}

func checkSize(field string, size, master int) error {
	if size <= 0 {
		return &SizeError{Field: field, Size: size, Reason: "must be positive"}
	}
	if size > master {
		return &SizeError{Field: field, Size: size, Reason: fmt.Sprintf("exceeds master size %d", master)}
	}
	return nil
}

// ParseSizes parses a comma separated list such as "16, 32,64".
func ParseSizes(raw string) ([]int, error) {
	var sizes []int
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("parse size %q: %w", field, err)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes in %q", raw)
	}
	return sizes, nil
}

// PNGName returns the file name of the PNG for size, e.g. "icon_16x16.png".
func PNGName(stem string, size int) string {
	return fmt.Sprintf("%s_%dx%d.png", stem, size, size)
}

// ICOName returns the file name of the icon container, e.g. "icon.ico".
func ICOName(stem string) string {
	return stem + ".ico"
}
