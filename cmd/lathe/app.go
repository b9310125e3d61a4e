package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/lathe/internal/config"
	"github.com/Faultbox/lathe/internal/engine/renderer"
	"github.com/Faultbox/lathe/internal/engine/screenshot"
	"github.com/Faultbox/lathe/internal/engine/ui"
	"github.com/Faultbox/lathe/internal/sketch"
	"github.com/Faultbox/lathe/internal/view"
	"github.com/Faultbox/lathe/internal/workbench"
	"github.com/Faultbox/lathe/pkg/revolve"
)

// App is the sketching application.
type App struct {
	backend *ui.Backend
	cfg     *config.Config
	log     *zap.Logger

	canvas   *sketch.Canvas
	bench    *workbench.Workbench
	renderer *renderer.MeshRenderer
	capture  *screenshot.Capture

	// Canvas input state
	mouseWasDown bool
	lastMousePos imgui.Vec2
	drag         dragRotation

	// Control state mirrored into imgui widgets
	stepIndex int32
	rotation  [3]int32
	scale     float32
	closeSeam bool
	remap     bool
	policy    int32

	// Dialog results, produced off the main thread
	pendingRender      chan string
	pendingProfileOpen chan string
	pendingProfileSave chan string

	// F12 captures on the next frame
	screenshotRequested bool

	status     string
	statusTime time.Time
}

// NewApp creates the window, GL resources and session state.
func NewApp(cfg *config.Config, log *zap.Logger) (*App, error) {
	opts, err := cfg.MeshOptions()
	if err != nil {
		return nil, err
	}

	transform := view.Identity.
		WithRotation(cfg.View.RotateX, cfg.View.RotateY, cfg.View.RotateZ).
		WithScale(cfg.View.Scale)

	bench, err := workbench.New(opts, transform, log)
	if err != nil {
		return nil, fmt.Errorf("creating workbench: %w", err)
	}

	format, err := screenshot.ParseFormat(cfg.Screenshot.Format)
	if err != nil {
		return nil, err
	}

	app := &App{
		cfg:                cfg,
		log:                log,
		canvas:             sketch.NewCanvas(opts.Region),
		bench:              bench,
		capture:            screenshot.NewCapture(cfg.Screenshot.Dir, "lathe", format),
		pendingRender:      make(chan string, 1),
		pendingProfileOpen: make(chan string, 1),
		pendingProfileSave: make(chan string, 1),
	}
	app.syncControls()

	app.backend, err = ui.NewBackend("Lathe", cfg.Window.Width, cfg.Window.Height, log)
	if err != nil {
		return nil, err
	}
	if err := renderer.InitGL(log); err != nil {
		return nil, err
	}

	app.renderer, err = renderer.New(renderer.Config{
		Width:      cfg.View.PreviewWidth,
		Height:     cfg.View.PreviewHeight,
		Background: renderer.DefaultBackground,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	return app, nil
}

// syncControls copies workbench state into the widget mirrors.
func (app *App) syncControls() {
	opts := app.bench.Options()
	app.stepIndex = int32(max(revolve.StepIndex(opts.Edges), 0))
	app.closeSeam = opts.CloseSeam
	app.policy = int32(opts.Degenerate)

	t := app.bench.Transform()
	app.rotation = [3]int32{int32(t.RotateX), int32(t.RotateY), int32(t.RotateZ)}
	app.scale = t.Scale
}

// Close releases GL resources.
func (app *App) Close() {
	if app.renderer != nil {
		app.renderer.Close()
		app.renderer = nil
	}
}

// Run starts the main loop.
func (app *App) Run() {
	app.backend.Run(app.render)
}

// LoadProfile loads a profile file onto the canvas and generates its mesh.
func (app *App) LoadProfile(path string) error {
	f, err := sketch.LoadFile(path)
	if err != nil {
		return err
	}

	opts, snapped := f.OfferedOptions(app.bench.Options())
	if snapped {
		app.log.Warn("profile step count is not offered, snapping",
			zap.String("path", path),
			zap.Int("edges", f.Edges),
			zap.Int("using", opts.Edges))
	}
	if err := app.bench.SetEdges(opts.Edges); err != nil {
		return err
	}
	if err := app.bench.SetCloseSeam(opts.CloseSeam); err != nil {
		return err
	}

	app.canvas.Load(f.Profile())
	app.regenerate()
	app.syncControls()
	app.backend.SetWindowTitle(fmt.Sprintf("Lathe - %s", filepath.Base(path)))
	return nil
}

// regenerate rebuilds the mesh from the canvas.
func (app *App) regenerate() {
	snap, err := app.bench.Regenerate(app.canvas.Profile())
	if err != nil {
		app.showStatus(err.Error())
		return
	}
	app.showStatus(describeMesh(snap.Mesh))
}

// showStatus sets the status bar message.
func (app *App) showStatus(msg string) {
	app.status = msg
	app.statusTime = time.Now()
}

// render is called each frame to draw the UI.
func (app *App) render() {
	if app.screenshotRequested {
		app.screenshotRequested = false
		app.saveRender("")
	}
	app.drainDialogs()

	// F12 = save render with a generated name
	if ui.IsKeyPressed(imgui.KeyF12) {
		app.screenshotRequested = true
	}

	// Upload is a no-op unless a new generation was published
	snap := app.bench.Current()
	app.renderer.Upload(snap.Mesh, snap.Generation)

	app.renderMenuBar()

	workPos, workSize := ui.Viewport()
	l := computeLayout(workPos, workSize, app.canvas.Region())

	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	imgui.SetNextWindowPos(l.canvasPos)
	imgui.SetNextWindowSize(l.canvasSize)
	if imgui.BeginV("Profile", nil, flags|imgui.WindowFlagsNoScrollbar) {
		app.renderCanvas()
	}
	imgui.End()

	imgui.SetNextWindowPos(l.previewPos)
	imgui.SetNextWindowSize(l.previewSize)
	if imgui.BeginV("Preview", nil, flags|imgui.WindowFlagsNoScrollbar) {
		app.renderPreview()
	}
	imgui.End()

	imgui.SetNextWindowPos(l.controlsPos)
	imgui.SetNextWindowSize(l.controlsSize)
	if imgui.BeginV("Controls", nil, flags) {
		app.renderControls()
	}
	imgui.End()

	imgui.SetNextWindowPos(l.statusPos)
	imgui.SetNextWindowSize(l.statusSize)
	if imgui.BeginV("##Status", nil, flags|imgui.WindowFlagsNoTitleBar|imgui.WindowFlagsNoScrollbar) {
		app.renderStatus()
	}
	imgui.End()
}

func (app *App) renderMenuBar() {
	if imgui.BeginMainMenuBar() {
		if imgui.BeginMenu("File") {
			if imgui.MenuItemBool("Open Profile...") {
				app.openProfileDialog()
			}
			if imgui.MenuItemBool("Save Profile...") {
				app.saveProfileDialog()
			}
			imgui.Separator()
			if imgui.MenuItemBool("Save Render As...") {
				app.saveRenderDialog()
			}
			if imgui.MenuItemBool("Save Settings") {
				app.saveSettings()
			}
			imgui.EndMenu()
		}
		imgui.EndMainMenuBar()
	}
}

func (app *App) renderStatus() {
	snap := app.bench.Current()
	imgui.Text(fmt.Sprintf("Points: %d  Edges: %d  Triangles: %d  Generation: %d",
		app.canvas.Len(), snap.Options.Edges, snap.Mesh.TriangleCount(), snap.Generation))
	if app.status != "" && time.Since(app.statusTime) < statusTimeout {
		imgui.SameLine()
		imgui.TextDisabled("| " + app.status)
	}
}

// saveSettings persists the current controls to the user config file.
func (app *App) saveSettings() {
	opts := app.bench.Options()
	t := app.bench.Transform()

	app.cfg.Mesh.Edges = opts.Edges
	app.cfg.Mesh.CloseSeam = opts.CloseSeam
	app.cfg.Mesh.Degenerate = opts.Degenerate.String()
	app.cfg.View.RotateX, app.cfg.View.RotateY, app.cfg.View.RotateZ = t.RotateX, t.RotateY, t.RotateZ
	app.cfg.View.Scale = t.Scale

	if err := app.cfg.Save(); err != nil {
		app.log.Error("saving settings", zap.Error(err))
		app.showStatus("Could not save settings")
		return
	}
	app.showStatus("Settings saved to " + config.ConfigDir())
}
