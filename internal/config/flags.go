package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile   = flag.String("log-file", "", "Write logs to this file as well")
	flagWidth     = flag.Int("width", 0, "Window width")
	flagHeight    = flag.Int("height", 0, "Window height")
	flagEdges     = flag.Int("edges", 0, "Number of angular steps around the axis")
	flagCloseSeam = flag.Bool("close-seam", false, "Stitch every band as a closed strip")
	flagProfile   = flag.String("profile", "", "Profile file to load on startup")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// ProfilePath returns the profile file given with --profile, if any.
func ProfilePath() string {
	return *flagProfile
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagEdges != 0 {
		cfg.Mesh.Edges = *flagEdges
	}
	if *flagCloseSeam {
		cfg.Mesh.CloseSeam = true
	}
}
