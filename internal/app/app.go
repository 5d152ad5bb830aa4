package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/shanghaoqi/glyphicon/internal/export"
	"github.com/shanghaoqi/glyphicon/internal/render"
	"github.com/shanghaoqi/glyphicon/internal/state"
)

type App struct {
	Store    *state.Store
	Exporter *export.Exporter
	Display  render.Display
	Logger   Logger

	// PreviewPath, when set, receives a contact sheet PNG of every exported size.
	PreviewPath string
}

func New(store *state.Store, exporter *export.Exporter, display render.Display) *App {
	return &App{Store: store, Exporter: exporter, Display: display, Logger: NoopLogger{}}
}

// Run exports every size, then builds the contact sheet when a preview file
// or a display asks for one. Export and preview write errors are fatal;
// a display that cannot show the sheet is only logged.
func (app *App) Run(ctx context.Context) error {
	if app.Exporter == nil {
		return errors.New("exporter not configured")
	}
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	if app.Store == nil {
		app.Store = state.NewStore()
	}
	app.Exporter.Store = app.Store
	app.Exporter.Logger = app.Logger

	rendered, err := app.Exporter.Run(ctx)
	if err != nil {
		app.Store.Fail(err)
		app.Logger.Errorf("app", "export failed: %v", err)
		return err
	}

	if err := app.preview(rendered); err != nil {
		app.Store.Fail(err)
		app.Logger.Errorf("app", "preview failed: %v", err)
		return err
	}

	app.Store.SetPhase(state.DONE)
	app.Logger.Infof("app", "done, %d files written", len(app.Store.Snapshot().Outputs))
	return nil
}

func (app *App) preview(rendered []export.Rendered) error {
	_, noDisplay := app.Display.(render.NoopDisplay)
	if app.PreviewPath == "" && (app.Display == nil || noDisplay) {
		return nil
	}

	tiles := make([]render.Tile, 0, len(rendered))
	for _, r := range rendered {
		tiles = append(tiles, render.Tile{Image: r.Image, Label: fmt.Sprintf("%dx%d", r.Size, r.Size)})
	}
	sheet := render.ContactSheet(tiles)

	if app.PreviewPath != "" {
		if err := writePNG(app.PreviewPath, sheet); err != nil {
			return err
		}
		app.Logger.Infof("app", "contact sheet written to %s", app.PreviewPath)
		fmt.Println("✓", filepath.Base(app.PreviewPath))
	}
	if app.Display != nil && !noDisplay {
		if err := app.Display.Show(sheet); err != nil {
			app.Logger.Errorf("app", "display error: %v", err)
		}
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
