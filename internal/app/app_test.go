package app

import (
	"bytes"
	"context"
	"errors"
	"image"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/shanghaoqi/glyphicon/internal/export"
	"github.com/shanghaoqi/glyphicon/internal/render"
	"github.com/shanghaoqi/glyphicon/internal/state"
)

type recordingDisplay struct {
	shown []image.Image
	err   error
}

func (d *recordingDisplay) Show(img image.Image) error {
	d.shown = append(d.shown, img)
	return d.err
}

func newTestExporter(dir string) *export.Exporter {
	exp := export.NewExporter(export.Options{Dir: dir, Stem: "app", Sizes: []int{10, 40}, MasterSize: 40, IconSize: 20}, nil)
	exp.Progress = &bytes.Buffer{}
	return exp
}

func TestRunWritesPreviewAndShowsIt(t *testing.T) {
	dir := t.TempDir()
	display := &recordingDisplay{err: errors.New("no framebuffer")}
	a := New(state.NewStore(), newTestExporter(dir), display)
	a.PreviewPath = filepath.Join(dir, "preview", "sheet.png")

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, err := os.Stat(a.PreviewPath); err != nil {
		t.Errorf("preview not written: %v", err)
	}
	if len(display.shown) != 1 {
		t.Fatalf("display shown %d times, want 1", len(display.shown))
	}
	snap := a.Store.Snapshot()
	if snap.Phase != state.DONE {
		t.Errorf("phase = %v, want done", snap.Phase)
	}
	if len(snap.Outputs) != 3 {
		t.Errorf("outputs = %d, want 3", len(snap.Outputs))
	}
}

func TestRunWithoutPreview(t *testing.T) {
	dir := t.TempDir()
	a := New(nil, newTestExporter(dir), render.NoopDisplay{})
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Errorf("files = %d, want 3", len(entries))
	}
}

func TestRunExportFailureMarksError(t *testing.T) {
	exp := newTestExporter(t.TempDir())
	exp.Options.Sizes = []int{-1}
	a := New(state.NewStore(), exp, nil)
	if err := a.Run(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	snap := a.Store.Snapshot()
	if snap.Phase != state.ERROR || snap.Err == "" {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestRunRequiresExporter(t *testing.T) {
	if err := New(nil, nil, nil).Run(context.Background()); err == nil {
		t.Fatal("expected error without exporter")
	}
}

func TestFileLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewFileLogger(&buf)
	l.Infof("export", "wrote %d files", 3)
	l.Errorf("fb", "open failed")
	re := regexp.MustCompile(`^\S+ \[INFO\] export: wrote 3 files\n\S+ \[ERROR\] fb: open failed\n$`)
	if !re.MatchString(buf.String()) {
		t.Errorf("log output = %q", buf.String())
	}
}
