package main

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/lathe/internal/engine/ui"
	"github.com/Faultbox/lathe/internal/view"
)

// Preview mouse sensitivity
const (
	dragDegreesPerPixel = 0.5
	wheelScaleStep      = 0.1
)

// renderPreview draws the mesh into the offscreen target and shows it. The
// target follows the panel size unless a fixed size is configured.
// Dragging rotates the model and the wheel scales it.
func (app *App) renderPreview() {
	avail := imgui.ContentRegionAvail()
	if app.cfg.View.FollowPanel && avail.X >= 1 && avail.Y >= 1 {
		app.renderer.Resize(int(avail.X), int(avail.Y))
	}

	transform := app.bench.Transform()
	textureID := app.renderer.Render(transform)

	w, h := app.renderer.Size()
	size := fitImage(avail, w, h)
	offset := centerOffset(avail, size)
	imgui.SetCursorPosX(imgui.CursorPosX() + offset.X)
	imgui.SetCursorPosY(imgui.CursorPosY() + offset.Y)

	ui.Texture(textureID, size)

	if imgui.IsItemHovered() {
		mousePos := imgui.MousePos()
		if imgui.IsMouseDragging(imgui.MouseButtonLeft) {
			app.applyTransform(app.drag.rotate(transform,
				mousePos.X-app.lastMousePos.X, mousePos.Y-app.lastMousePos.Y))
		} else {
			app.drag.reset()
		}
		app.lastMousePos = mousePos

		if wheel := imgui.CurrentIO().MouseWheel(); wheel != 0 {
			app.applyTransform(wheelScale(transform, wheel))
		}
	}
}

// applyTransform pushes t into the workbench and the control mirrors.
func (app *App) applyTransform(t view.ModelTransform) {
	app.bench.SetRotation(t.RotateX, t.RotateY, t.RotateZ)
	app.bench.SetScale(t.Scale)
	app.syncControls()
}

// dragRotation turns per-frame mouse deltas into whole-degree rotations:
// horizontal movement spins around Y, vertical movement tilts around X. The
// fractional degrees left over are carried to the next frame so slow drags
// still rotate.
type dragRotation struct {
	pendingX, pendingY float32
}

func (d *dragRotation) rotate(t view.ModelTransform, dx, dy float32) view.ModelTransform {
	d.pendingX += dy * dragDegreesPerPixel
	d.pendingY += dx * dragDegreesPerPixel

	stepX, stepY := int(d.pendingX), int(d.pendingY)
	d.pendingX -= float32(stepX)
	d.pendingY -= float32(stepY)

	return t.WithRotation(t.RotateX+stepX, t.RotateY+stepY, t.RotateZ)
}

// reset drops the carried fraction when a drag ends.
func (d *dragRotation) reset() {
	d.pendingX, d.pendingY = 0, 0
}

// wheelScale changes the scale by one step per wheel notch.
func wheelScale(t view.ModelTransform, wheel float32) view.ModelTransform {
	return t.WithScale(t.Scale + wheel*wheelScaleStep)
}
