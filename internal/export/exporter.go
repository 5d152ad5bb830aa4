package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	ico "github.com/sergeymakinen/go-ico"
	"github.com/shanghaoqi/glyphicon/internal/render"
	"github.com/shanghaoqi/glyphicon/internal/state"
)

// Rendered is one exported raster together with the file it was written to.
type Rendered struct {
	Size   int
	Image  *image.RGBA
	Output state.Output
}

// Exporter renders the master glyph once and writes every requested size
// plus the icon container. Any write error aborts the run.
type Exporter struct {
	Options Options
	Store   *state.Store

	// Progress receives one line per written file. Nil means os.Stdout.
	Progress io.Writer
	Logger   interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

func NewExporter(opts Options, store *state.Store) *Exporter {
	return &Exporter{Options: opts, Store: store}
}

func (e *Exporter) Run(ctx context.Context) ([]Rendered, error) {
	opts := e.Options
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", opts.Dir, err)
	}

	e.setPhase(state.RENDERING)
	master := render.RenderGlyph(opts.MasterSize)
	e.infof("master render done, size=%d", opts.MasterSize)

	e.setPhase(state.EXPORTING)
	e.progressf("Generating icons...\n")
	rendered := make([]Rendered, 0, len(opts.Sizes))
	for _, size := range opts.Sizes {
		if err := ctx.Err(); err != nil {
			return rendered, err
		}
		img := render.Resample(master, size)
		out, err := e.write(PNGName(opts.Stem, size), size, func(w io.Writer) error {
			return png.Encode(w, img)
		})
		if err != nil {
			return rendered, err
		}
		rendered = append(rendered, Rendered{Size: size, Image: img, Output: out})
	}

	if err := ctx.Err(); err != nil {
		return rendered, err
	}
	icon := render.Resample(master, opts.IconSize)
	if _, err := e.write(ICOName(opts.Stem), opts.IconSize, func(w io.Writer) error {
		return ico.Encode(w, icon)
	}); err != nil {
		return rendered, err
	}
	e.progressf("Done.\n")
	return rendered, nil
}

// write encodes into memory first so a failing encoder never leaves a
// truncated file behind.
func (e *Exporter) write(name string, size int, encode func(io.Writer) error) (state.Output, error) {
	path := filepath.Join(e.Options.Dir, name)
	var buf bytes.Buffer
	if err := encode(&buf); err != nil {
		e.errorf("encode %s failed: %v", name, err)
		return state.Output{}, fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		e.errorf("write %s failed: %v", path, err)
		return state.Output{}, fmt.Errorf("write %s: %w", path, err)
	}

	out := state.Output{Name: name, Path: path, Size: size, Bytes: int64(buf.Len())}
	if e.Store != nil {
		e.Store.AddOutput(out)
	}
	e.infof("wrote %s (%d bytes)", path, out.Bytes)
	e.progressf("✓ %s\n", name)
	return out, nil
}

func (e *Exporter) setPhase(p state.Phase) {
	if e.Store != nil {
		e.Store.SetPhase(p)
	}
}

func (e *Exporter) progressf(format string, args ...interface{}) {
	w := e.Progress
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintf(w, format, args...)
}

func (e *Exporter) infof(format string, args ...interface{}) {
	if e.Logger != nil {
		e.Logger.Infof("export", format, args...)
	}
}

func (e *Exporter) errorf(format string, args ...interface{}) {
	if e.Logger != nil {
		e.Logger.Errorf("export", format, args...)
	}
}
