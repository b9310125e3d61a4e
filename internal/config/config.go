// Package config handles application settings: defaults, an optional YAML
// file and command-line overrides.
package config

import (
	"fmt"

	"github.com/Faultbox/lathe/pkg/revolve"
)

// Config holds all application settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Canvas     CanvasConfig     `yaml:"canvas"`
	Mesh       MeshConfig       `yaml:"mesh"`
	View       ViewConfig       `yaml:"view"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WindowConfig holds main window settings.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CanvasConfig is the size of the sketching area in pixels.
type CanvasConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// MeshConfig holds mesh generation settings.
type MeshConfig struct {
	Edges      int    `yaml:"edges"`
	CloseSeam  bool   `yaml:"close_seam"`
	Degenerate string `yaml:"degenerate"` // skip, zero or nan
}

// ViewConfig holds the initial model transform and the preview target size.
// With FollowPanel set the preview is resized to the panel every frame and
// the fixed size only applies until the first frame.
type ViewConfig struct {
	RotateX       int     `yaml:"rotate_x"`
	RotateY       int     `yaml:"rotate_y"`
	RotateZ       int     `yaml:"rotate_z"`
	Scale         float32 `yaml:"scale"`
	PreviewWidth  int     `yaml:"preview_width"`
	PreviewHeight int     `yaml:"preview_height"`
	FollowPanel   bool    `yaml:"follow_panel"`
}

// ScreenshotConfig holds render-to-file settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // png or bmp
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
		},
		Canvas: CanvasConfig{
			Width:  revolve.DefaultRegion.Width,
			Height: revolve.DefaultRegion.Height,
		},
		Mesh: MeshConfig{
			Edges:      10,
			CloseSeam:  false,
			Degenerate: revolve.DegenerateSkip.String(),
		},
		View: ViewConfig{
			Scale:         1,
			PreviewWidth:  550,
			PreviewHeight: 550,
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Format: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// MeshOptions converts the mesh and canvas sections into generator options.
func (c *Config) MeshOptions() (revolve.Options, error) {
	policy, err := revolve.ParseDegeneratePolicy(c.Mesh.Degenerate)
	if err != nil {
		return revolve.Options{}, err
	}
	return revolve.Options{
		Region:     revolve.Region{Width: c.Canvas.Width, Height: c.Canvas.Height},
		Edges:      c.Mesh.Edges,
		CloseSeam:  c.Mesh.CloseSeam,
		Degenerate: policy,
	}, nil
}

// Normalize replaces out-of-range values with usable ones and describes
// every change it made. Callers log the returned messages as warnings.
func (c *Config) Normalize() []string {
	var fixes []string
	def := Default()

	if err := revolve.ValidateEdges(c.Mesh.Edges); err != nil || revolve.StepIndex(c.Mesh.Edges) < 0 {
		snapped := revolve.SnapEdges(c.Mesh.Edges)
		fixes = append(fixes, fmt.Sprintf("mesh.edges %d is not an offered step count, using %d", c.Mesh.Edges, snapped))
		c.Mesh.Edges = snapped
	}
	if _, err := revolve.ParseDegeneratePolicy(c.Mesh.Degenerate); err != nil {
		fixes = append(fixes, fmt.Sprintf("mesh.degenerate %q is unknown, using %q", c.Mesh.Degenerate, def.Mesh.Degenerate))
		c.Mesh.Degenerate = def.Mesh.Degenerate
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		fixes = append(fixes, fmt.Sprintf("canvas size %gx%g is not positive, using %gx%g",
			c.Canvas.Width, c.Canvas.Height, def.Canvas.Width, def.Canvas.Height))
		c.Canvas = def.Canvas
	}
	if c.View.Scale <= 0 {
		fixes = append(fixes, fmt.Sprintf("view.scale %g is not positive, using %g", c.View.Scale, def.View.Scale))
		c.View.Scale = def.View.Scale
	}
	if c.View.PreviewWidth <= 0 || c.View.PreviewHeight <= 0 {
		fixes = append(fixes, fmt.Sprintf("preview size %dx%d is not positive, using %dx%d",
			c.View.PreviewWidth, c.View.PreviewHeight, def.View.PreviewWidth, def.View.PreviewHeight))
		c.View.PreviewWidth, c.View.PreviewHeight = def.View.PreviewWidth, def.View.PreviewHeight
	}
	switch c.Screenshot.Format {
	case "png", "bmp":
	default:
		fixes = append(fixes, fmt.Sprintf("screenshot.format %q is unsupported, using %q", c.Screenshot.Format, def.Screenshot.Format))
		c.Screenshot.Format = def.Screenshot.Format
	}

	return fixes
}
