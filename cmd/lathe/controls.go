package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/lathe/internal/engine/renderer"
	"github.com/Faultbox/lathe/internal/view"
	"github.com/Faultbox/lathe/pkg/revolve"
)

var rotationLabels = [3]string{"X##rot", "Y##rot", "Z##rot"}

// renderControls draws the mesh and view settings.
func (app *App) renderControls() {
	imgui.Text("Mesh")
	imgui.Separator()

	last := int32(len(revolve.StepCounts) - 1)
	label := fmt.Sprintf("%d", revolve.StepCounts[app.stepIndex])
	if imgui.SliderIntV("Edges", &app.stepIndex, 0, last, label, imgui.SliderFlagsNone) {
		app.setEdges(revolve.StepCounts[app.stepIndex])
	}
	imgui.TextDisabled(fmt.Sprintf("%d degrees per step", revolve.AngleStep(revolve.StepCounts[app.stepIndex])))

	if imgui.Checkbox("Close seam", &app.closeSeam) {
		if err := app.bench.SetCloseSeam(app.closeSeam); err != nil {
			app.showStatus(err.Error())
		}
		app.syncControls()
	}

	imgui.Text("Degenerate faces")
	for i := revolve.DegenerateSkip; i <= revolve.DegenerateNaN; i++ {
		if imgui.SelectableBoolV(i.String(), app.policy == int32(i), 0, imgui.NewVec2(0, 0)) {
			app.setDegeneratePolicy(i)
		}
	}

	imgui.Dummy(imgui.NewVec2(0, 6))
	imgui.Text("View")
	imgui.Separator()

	changed := false
	for i := range app.rotation {
		if imgui.SliderIntV(rotationLabels[i], &app.rotation[i], -180, 180, "%d deg", imgui.SliderFlagsNone) {
			changed = true
		}
	}
	if changed {
		app.bench.SetRotation(int(app.rotation[0]), int(app.rotation[1]), int(app.rotation[2]))
	}
	if imgui.ButtonV("Reset rotation", imgui.NewVec2(-1, 0)) {
		app.bench.ResetRotation()
		app.syncControls()
	}

	if imgui.SliderFloatV("Scale", &app.scale, view.MinScale, view.MaxScale, "%.2f", imgui.SliderFlagsNone) {
		app.bench.SetScale(app.scale)
	}
	if imgui.ButtonV("Reset scale", imgui.NewVec2(-1, 0)) {
		app.bench.ResetScale()
		app.syncControls()
	}

	if imgui.Checkbox("Remap normals to color", &app.remap) {
		shading := renderer.ShadeRaw
		if app.remap {
			shading = renderer.ShadeRemapped
		}
		app.renderer.SetShading(shading)
	}

	imgui.Dummy(imgui.NewVec2(0, 6))
	imgui.Text("Output")
	imgui.Separator()

	if imgui.ButtonV("Save render (F12)", imgui.NewVec2(-1, 0)) {
		app.screenshotRequested = true
	}
	if imgui.ButtonV("Save render as...", imgui.NewVec2(-1, 0)) {
		app.saveRenderDialog()
	}

	snap := app.bench.Current()
	if !snap.Mesh.IsEmpty() {
		imgui.Dummy(imgui.NewVec2(0, 6))
		b := snap.Mesh.Bounds
		imgui.TextDisabled(fmt.Sprintf("Bounds min (%.2f, %.2f, %.2f)", b.Min.X, b.Min.Y, b.Min.Z))
		imgui.TextDisabled(fmt.Sprintf("Bounds max (%.2f, %.2f, %.2f)", b.Max.X, b.Max.Y, b.Max.Z))
		imgui.TextDisabled(fmt.Sprintf("Generated in %s", snap.Elapsed))
	}
}

// setEdges changes the step count and regenerates the current profile.
func (app *App) setEdges(edges int) {
	if err := app.bench.SetEdges(edges); err != nil {
		app.showStatus(err.Error())
	}
	app.syncControls()
}

// setDegeneratePolicy changes how degenerate faces are handled.
func (app *App) setDegeneratePolicy(policy revolve.DegeneratePolicy) {
	if err := app.bench.SetDegeneratePolicy(policy); err != nil {
		app.showStatus(err.Error())
	}
	app.syncControls()
}
