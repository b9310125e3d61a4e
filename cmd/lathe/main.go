// Lathe - sketch a profile and revolve it into a 3D surface.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/lathe/internal/config"
	"github.com/Faultbox/lathe/internal/logger"
)

func main() {
	runtime.LockOSThread()

	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fatal(fmt.Errorf("initializing logger: %w", err))
	}
	defer logger.Sync()

	for _, fix := range cfg.Normalize() {
		logger.Warn("config adjusted", zap.String("detail", fix))
	}

	app, err := NewApp(cfg, logger.Log)
	if err != nil {
		fatal(err)
	}
	defer app.Close()

	if path := config.ProfilePath(); path != "" {
		if err := app.LoadProfile(path); err != nil {
			logger.Error("loading profile", zap.String("path", path), zap.Error(err))
		}
	}

	logger.Info("lathe started",
		zap.Int("edges", cfg.Mesh.Edges),
		zap.Bool("close_seam", cfg.Mesh.CloseSeam),
	)
	app.Run()
}

// fatal reports a startup error on stderr, in the log and in a message box,
// then exits.
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "lathe: %v\n", err)
	logger.Error("fatal", zap.Error(err))
	logger.Sync()
	if boxErr := sdl.ShowSimpleMessageBox(sdl.MESSAGEBOX_ERROR, "Lathe", err.Error(), nil); boxErr != nil {
		fmt.Fprintf(os.Stderr, "lathe: message box: %v\n", boxErr)
	}
	os.Exit(1)
}
