package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"strconv"
	"sync"

	ico "github.com/sergeymakinen/go-ico"
	"github.com/shanghaoqi/glyphicon/internal/export"
	"github.com/shanghaoqi/glyphicon/internal/glyph"
	"github.com/shanghaoqi/glyphicon/internal/render"
)

// maxGeometrySize bounds /geometry; the geometry itself accepts any size.
const maxGeometrySize = 1 << 16

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type rectResponse struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

type pointResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type diamondResponse struct {
	Center pointResponse   `json:"center"`
	Radius int             `json:"radius"`
	Points []pointResponse `json:"points"`
}

type geometryResponse struct {
	Size     int                     `json:"size"`
	Unit     int                     `json:"unit"`
	LineW    int                     `json:"lineW"`
	Bounds   rectResponse            `json:"bounds"`
	Bars     map[string]rectResponse `json:"bars"`
	Notch    rectResponse            `json:"notch"`
	Diamonds []diamondResponse       `json:"diamonds"`
}

type sizesResponse struct {
	Stem       string `json:"stem"`
	Sizes      []int  `json:"sizes"`
	MasterSize int    `json:"masterSize"`
	IconSize   int    `json:"iconSize"`
}

// Preview renders the master glyph on first use and serves every size from it.
type Preview struct {
	Options export.Options

	once   sync.Once
	master *image.RGBA
}

func NewPreview(opts export.Options) *Preview {
	return &Preview{Options: opts}
}

func (p *Preview) Master() *image.RGBA {
	p.once.Do(func() {
		p.master = render.RenderGlyph(p.Options.MasterSize)
	})
	return p.master
}

func apiV1Router(preview *Preview) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/geometry", getOnly(func(w http.ResponseWriter, r *http.Request) { handleGeometry(w, r, preview) }))
	mux.HandleFunc("/glyph.png", getOnly(func(w http.ResponseWriter, r *http.Request) { handleGlyph(w, r, preview) }))
	mux.HandleFunc("/icon.ico", getOnly(func(w http.ResponseWriter, r *http.Request) { handleIcon(w, r, preview) }))
	mux.HandleFunc("/sizes", getOnly(func(w http.ResponseWriter, r *http.Request) { handleSizes(w, r, preview) }))
	return mux
}

func getOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
			return
		}
		next(w, r)
	}
}

func handleGeometry(w http.ResponseWriter, r *http.Request, preview *Preview) {
	size, err := sizeParam(r, preview.Options.MasterSize, maxGeometrySize)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid_size", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toGeometryResponse(glyph.Compute(size)))
}

func handleGlyph(w http.ResponseWriter, r *http.Request, preview *Preview) {
	size, err := sizeParam(r, preview.Options.MasterSize, preview.Options.MasterSize)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid_size", err.Error())
		return
	}
	img := render.Resample(preview.Master(), size)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		writeAPIError(w, http.StatusInternalServerError, "encode_failed", err.Error())
		return
	}
	writeBlob(w, "image/png", buf.Bytes())
}

func handleIcon(w http.ResponseWriter, r *http.Request, preview *Preview) {
	img := render.Resample(preview.Master(), preview.Options.IconSize)
	var buf bytes.Buffer
	if err := ico.Encode(&buf, img); err != nil {
		writeAPIError(w, http.StatusInternalServerError, "encode_failed", err.Error())
		return
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", export.ICOName(preview.Options.Stem)))
	writeBlob(w, "image/x-icon", buf.Bytes())
}

func handleSizes(w http.ResponseWriter, r *http.Request, preview *Preview) {
	opts := preview.Options
	writeJSON(w, http.StatusOK, sizesResponse{
		Stem:       opts.Stem,
		Sizes:      append([]int{}, opts.Sizes...),
		MasterSize: opts.MasterSize,
		IconSize:   opts.IconSize,
	})
}

// sizeParam reads ?size=, defaulting to def, and requires 1 <= size <= max.
func sizeParam(r *http.Request, def, max int) (int, error) {
	raw := r.URL.Query().Get("size")
	if raw == "" {
		return def, nil
	}
	size, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("size %q is not an integer", raw)
	}
	if size <= 0 || size > max {
		return 0, fmt.Errorf("size %d out of range 1..%d", size, max)
	}
	return size, nil
}

func toGeometryResponse(g glyph.Geometry) geometryResponse {
	resp := geometryResponse{
		Size:   g.Size,
		Unit:   g.Unit,
		LineW:  g.LineW,
		Bounds: toRect(g.Bounds),
		Notch:  toRect(g.Notch()),
		Bars: map[string]rectResponse{
			"top":    toRect(g.Top.Rect()),
			"left":   toRect(g.Left.Rect()),
			"bottom": toRect(g.Bottom.Rect()),
			"right":  toRect(g.Right.Rect()),
		},
	}
	for _, d := range g.Diamonds {
		dr := diamondResponse{Center: pointResponse{X: d.Center.X, Y: d.Center.Y}, Radius: d.Radius}
		for _, p := range d.Points() {
			dr.Points = append(dr.Points, pointResponse{X: p.X, Y: p.Y})
		}
		resp.Diamonds = append(resp.Diamonds, dr)
	}
	return resp
}

func toRect(r image.Rectangle) rectResponse {
	return rectResponse{Left: r.Min.X, Top: r.Min.Y, Right: r.Max.X, Bottom: r.Max.Y}
}

func writeBlob(w http.ResponseWriter, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
