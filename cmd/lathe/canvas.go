package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/lathe/internal/engine/ui"
	"github.com/Faultbox/lathe/pkg/math"
)

// renderCanvas draws the sketching area and feeds mouse input to the canvas.
func (app *App) renderCanvas() {
	if imgui.Button("Generate") {
		app.regenerate()
	}
	imgui.SameLine()
	if imgui.Button("Clear") {
		app.canvas.Clear()
	}
	imgui.SameLine()
	imgui.TextDisabled("Draw with the left mouse button")

	region := app.canvas.Region()
	origin := imgui.CursorScreenPos()
	size := imgui.NewVec2(region.Width, region.Height)
	imgui.Dummy(size)
	hovered := imgui.IsItemHovered()

	app.handleCanvasInput(origin, hovered)

	drawList := imgui.WindowDrawList()
	end := imgui.NewVec2(origin.X+size.X, origin.Y+size.Y)
	drawList.AddRectFilledV(origin, end, ui.Color(CanvasBackground[0], CanvasBackground[1], CanvasBackground[2], CanvasBackground[3]), 0, 0)

	axisX := origin.X + size.X/2
	drawList.AddLineV(imgui.NewVec2(axisX, origin.Y), imgui.NewVec2(axisX, end.Y),
		ui.Color(CanvasAxis[0], CanvasAxis[1], CanvasAxis[2], CanvasAxis[3]), 1)

	points := app.canvas.Points()
	strokeCol := ui.Color(StrokeColor[0], StrokeColor[1], StrokeColor[2], StrokeColor[3])
	for i := 1; i < len(points); i++ {
		drawList.AddLineV(toScreen(origin, points[i-1]), toScreen(origin, points[i]), strokeCol, 2)
	}
	if len(points) > 0 {
		start := toScreen(origin, points[0])
		drawList.AddCircleFilledV(start, 3, ui.Color(StrokeStartColor[0], StrokeStartColor[1], StrokeStartColor[2], StrokeStartColor[3]), 8)
	}

	drawList.AddRectV(origin, end, ui.Color(CanvasBorder[0], CanvasBorder[1], CanvasBorder[2], CanvasBorder[3]), 0, 0, 1)

	if hovered {
		local := toCanvas(origin, imgui.MousePos())
		imgui.Text(fmt.Sprintf("Cursor: %.0f, %.0f", local.X, local.Y))
	} else {
		imgui.TextDisabled(fmt.Sprintf("%d points", app.canvas.Len()))
	}
}

// handleCanvasInput turns the mouse button state into stroke events. A press
// over the canvas starts a stroke; the stroke follows the cursor until the
// button is released, which regenerates the mesh.
func (app *App) handleCanvasInput(origin imgui.Vec2, hovered bool) {
	down := imgui.IsMouseDown(imgui.MouseButtonLeft)
	local := toCanvas(origin, imgui.MousePos())

	switch {
	case down && !app.mouseWasDown && hovered:
		app.canvas.Begin(local)
	case down && app.canvas.Drawing():
		app.canvas.Extend(local)
	case !down && app.canvas.Drawing():
		app.canvas.End()
		app.regenerate()
	}
	app.mouseWasDown = down
}

// toCanvas converts a screen position into canvas coordinates.
func toCanvas(origin, screen imgui.Vec2) math.Vec2 {
	return math.Vec2{X: screen.X - origin.X, Y: screen.Y - origin.Y}
}

// toScreen converts a canvas point into a screen position.
func toScreen(origin imgui.Vec2, p math.Vec2) imgui.Vec2 {
	return imgui.NewVec2(origin.X+p.X, origin.Y+p.Y)
}
