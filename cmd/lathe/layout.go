package main

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/lathe/pkg/revolve"
)

// layout is the placement of the four fixed panels.
type layout struct {
	canvasPos, canvasSize     imgui.Vec2
	previewPos, previewSize   imgui.Vec2
	controlsPos, controlsSize imgui.Vec2
	statusPos, statusSize     imgui.Vec2
}

// computeLayout splits the work area into the canvas on the left, the
// preview in the middle, the controls on the right and a status bar along
// the bottom. The canvas panel is sized to hold region at 1:1.
func computeLayout(workPos, workSize imgui.Vec2, region revolve.Region) layout {
	contentHeight := max(workSize.Y-statusBarHeight, 0)

	canvasWidth := region.Width + 2*panelPadding
	controlsWidth := float32(controlsPanelWidth)
	previewWidth := workSize.X - canvasWidth - controlsWidth
	if previewWidth < minPreviewWidth {
		// Narrow windows squeeze the controls first.
		controlsWidth = max(controlsWidth-(minPreviewWidth-previewWidth), 0)
		previewWidth = max(workSize.X-canvasWidth-controlsWidth, 0)
	}

	return layout{
		canvasPos:    workPos,
		canvasSize:   imgui.NewVec2(canvasWidth, contentHeight),
		previewPos:   imgui.NewVec2(workPos.X+canvasWidth, workPos.Y),
		previewSize:  imgui.NewVec2(previewWidth, contentHeight),
		controlsPos:  imgui.NewVec2(workPos.X+canvasWidth+previewWidth, workPos.Y),
		controlsSize: imgui.NewVec2(controlsWidth, contentHeight),
		statusPos:    imgui.NewVec2(workPos.X, workPos.Y+contentHeight),
		statusSize:   imgui.NewVec2(workSize.X, statusBarHeight),
	}
}

// fitImage scales a width x height image to the largest size that fits in
// avail while keeping its aspect ratio.
func fitImage(avail imgui.Vec2, width, height int) imgui.Vec2 {
	if width <= 0 || height <= 0 || avail.X <= 0 || avail.Y <= 0 {
		return imgui.NewVec2(0, 0)
	}
	scale := min(avail.X/float32(width), avail.Y/float32(height))
	return imgui.NewVec2(float32(width)*scale, float32(height)*scale)
}

// centerOffset returns the offset that centers size inside avail.
func centerOffset(avail, size imgui.Vec2) imgui.Vec2 {
	return imgui.NewVec2(max((avail.X-size.X)/2, 0), max((avail.Y-size.Y)/2, 0))
}
