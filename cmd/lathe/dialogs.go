package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/lathe/internal/sketch"
	"github.com/Faultbox/lathe/pkg/revolve"
)

// Native dialogs block, so they run in a goroutine and hand the chosen path
// back through a channel. The result is processed on the main thread in
// drainDialogs because GL and SDL calls must stay there.

func (app *App) openProfileDialog() {
	go app.runDialog(app.pendingProfileOpen, func() (string, error) {
		return dialog.File().
			Filter("Profiles", "yaml", "yml").
			Filter("All Files", "*").
			Title("Open Profile").
			Load()
	})
}

func (app *App) saveProfileDialog() {
	go app.runDialog(app.pendingProfileSave, func() (string, error) {
		return dialog.File().
			Filter("Profiles", "yaml", "yml").
			Title("Save Profile").
			Save()
	})
}

func (app *App) saveRenderDialog() {
	go app.runDialog(app.pendingRender, func() (string, error) {
		return dialog.File().
			Filter("PNG Image", "png").
			Filter("BMP Image", "bmp").
			Title("Save Render As").
			Save()
	})
}

// runDialog shows a dialog and queues its result. A second result arriving
// before the first is drained is dropped.
func (app *App) runDialog(out chan<- string, show func() (string, error)) {
	path, err := show()
	if err != nil {
		if !errors.Is(err, dialog.ErrCancelled) {
			app.log.Error("file dialog failed", zap.Error(err))
		}
		return
	}
	select {
	case out <- path:
	default:
	}
}

// drainDialogs handles dialog results queued since the last frame.
func (app *App) drainDialogs() {
	select {
	case path := <-app.pendingProfileOpen:
		if err := app.LoadProfile(path); err != nil {
			app.log.Error("loading profile", zap.String("path", path), zap.Error(err))
			app.showStatus("Could not open " + filepath.Base(path))
		} else {
			app.log.Info("profile loaded", zap.String("path", path))
		}
	default:
	}

	select {
	case path := <-app.pendingProfileSave:
		app.saveProfile(path)
	default:
	}

	select {
	case path := <-app.pendingRender:
		app.saveRender(path)
	default:
	}
}

// saveProfile writes the current stroke and mesh settings to path.
func (app *App) saveProfile(path string) {
	if app.canvas.Len() == 0 {
		app.showStatus("Nothing to save")
		return
	}
	if filepath.Ext(path) == "" {
		path += ".yaml"
	}

	opts := app.bench.Options()
	f := sketch.NewFile(app.canvas.Profile(), opts.Edges, opts.CloseSeam)
	if err := sketch.SaveFile(path, f); err != nil {
		app.log.Error("saving profile", zap.String("path", path), zap.Error(err))
		app.showStatus("Could not save profile")
		return
	}
	app.log.Info("profile saved", zap.String("path", path), zap.Int("points", len(f.Points)))
	app.showStatus("Profile saved to " + path)
}

// saveRender captures the preview and writes it to path, or to a generated
// name in the screenshot directory when path is empty.
func (app *App) saveRender(path string) {
	img, err := app.renderer.Capture(app.bench.Transform())
	if err != nil {
		app.log.Error("capturing render", zap.Error(err))
		app.showStatus("Could not capture render")
		return
	}

	if path == "" {
		path, err = app.capture.Save(img)
	} else {
		path, err = app.capture.SaveAs(path, img)
	}
	if err != nil {
		app.log.Error("saving render", zap.Error(err))
		app.showStatus("Could not save render")
		return
	}

	snap := app.bench.Current()
	app.log.Info("render saved",
		zap.String("path", path),
		zap.Int("triangles", snap.Mesh.TriangleCount()),
		zap.Uint64("generation", snap.Generation))
	app.showStatus(fmt.Sprintf("Render saved to %s", path))
}

// describeMesh summarizes a mesh for the window title and status line.
func describeMesh(m *revolve.Mesh) string {
	if m.IsEmpty() {
		return "empty mesh"
	}
	return fmt.Sprintf("%d triangles, %d edges", m.TriangleCount(), m.Edges)
}
