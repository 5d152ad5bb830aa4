package web

import (
	"html/template"
	"net/http"

	"github.com/shanghaoqi/glyphicon/internal/export"
	"github.com/shanghaoqi/glyphicon/internal/render"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>{{.Stem}}</title>
<style>body{background:#202020;color:#ddd;font-family:sans-serif}figure{display:inline-block;margin:12px;vertical-align:bottom}</style>
</head>
<body>
<h1>{{.Stem}}</h1>
{{range .Sizes}}<figure><img src="/api/v1/glyph.png?size={{.}}" width="{{.}}" height="{{.}}"><figcaption>{{.}}x{{.}}</figcaption></figure>
{{end}}
<p><a href="/api/v1/icon.ico">{{.Stem}}.ico</a> ({{.IconSize}}x{{.IconSize}})</p>
<p><img src="/qr.png" width="128" height="128" alt="open on phone"></p>
</body>
</html>
`))

// RegisterAPIV1 registers the preview API under /api/v1/.
func RegisterAPIV1(mux *http.ServeMux, preview *Preview) {
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", apiV1Router(preview)))
}

// RegisterUI serves the index page and the QR code pointing at it.
func RegisterUI(mux *http.ServeMux, preview *Preview) {
	mux.HandleFunc("/qr.png", getOnly(handleQRCode))
	mux.HandleFunc("/", getOnly(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = indexTemplate.Execute(w, preview.Options)
	}))
}

// NewDefaultMux builds the preview server mux:
// - /api/v1/* for the API
// - / and /qr.png for the UI
func NewDefaultMux(opts export.Options) *http.ServeMux {
	preview := NewPreview(opts)
	mux := http.NewServeMux()
	RegisterAPIV1(mux, preview)
	RegisterUI(mux, preview)
	return mux
}

func handleQRCode(w http.ResponseWriter, r *http.Request) {
	data, err := render.QRCodePNG(indexURL(r), 256)
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "qr_failed", err.Error())
		return
	}
	writeBlob(w, "image/png", data)
}

func indexURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + "/"
}
