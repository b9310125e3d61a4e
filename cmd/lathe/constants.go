// Constants for the Lathe application.
package main

import "time"

// Layout dimensions
const (
	controlsPanelWidth = 300
	statusBarHeight    = 30
	panelPadding       = 16 // window padding on both sides of the canvas
	panelTitleHeight   = 20
	minPreviewWidth    = 120
)

// statusTimeout is how long a status message stays visible.
const statusTimeout = 4 * time.Second

// Canvas colors
var (
	CanvasBackground = [4]float32{0.08, 0.08, 0.09, 1.0}
	CanvasBorder     = [4]float32{0.35, 0.35, 0.4, 1.0}
	CanvasAxis       = [4]float32{0.3, 0.5, 0.3, 1.0} // X = Width/2 maps to the revolve axis
	StrokeColor      = [4]float32{1.0, 1.0, 1.0, 1.0}
	StrokeStartColor = [4]float32{0.9, 0.6, 0.2, 1.0}
)
