package main

import (
	"testing"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/lathe/pkg/revolve"
)

func TestComputeLayout(t *testing.T) {
	pos := imgui.NewVec2(0, 20)
	size := imgui.NewVec2(1280, 700)
	l := computeLayout(pos, size, revolve.DefaultRegion)

	if l.canvasPos != pos {
		t.Errorf("canvas pos = %v, want %v", l.canvasPos, pos)
	}
	if l.canvasSize.X != 300+2*panelPadding {
		t.Errorf("canvas width = %g", l.canvasSize.X)
	}
	if l.canvasSize.Y != 700-statusBarHeight {
		t.Errorf("canvas height = %g", l.canvasSize.Y)
	}

	// Panels tile the width without gaps.
	if l.previewPos.X != l.canvasPos.X+l.canvasSize.X {
		t.Errorf("preview starts at %g, canvas ends at %g", l.previewPos.X, l.canvasPos.X+l.canvasSize.X)
	}
	if l.controlsPos.X != l.previewPos.X+l.previewSize.X {
		t.Errorf("controls start at %g, preview ends at %g", l.controlsPos.X, l.previewPos.X+l.previewSize.X)
	}
	if got := l.controlsPos.X + l.controlsSize.X; got != 1280 {
		t.Errorf("controls end at %g, want 1280", got)
	}
	if l.controlsSize.X != controlsPanelWidth {
		t.Errorf("controls width = %g", l.controlsSize.X)
	}

	if l.statusPos.Y != 20+700-statusBarHeight {
		t.Errorf("status y = %g", l.statusPos.Y)
	}
	if l.statusSize.X != 1280 || l.statusSize.Y != statusBarHeight {
		t.Errorf("status size = %v", l.statusSize)
	}
}

func TestComputeLayoutNarrowWindow(t *testing.T) {
	l := computeLayout(imgui.NewVec2(0, 0), imgui.NewVec2(600, 400), revolve.DefaultRegion)

	if l.previewSize.X != minPreviewWidth {
		t.Errorf("preview width = %g, want %d", l.previewSize.X, minPreviewWidth)
	}
	if got := l.controlsPos.X + l.controlsSize.X; got != 600 {
		t.Errorf("controls end at %g, want 600", got)
	}
	if l.controlsSize.X >= controlsPanelWidth {
		t.Errorf("controls were not squeezed: %g", l.controlsSize.X)
	}
}

func TestComputeLayoutTinyWindow(t *testing.T) {
	l := computeLayout(imgui.NewVec2(0, 0), imgui.NewVec2(100, 10), revolve.DefaultRegion)

	if l.canvasSize.Y != 0 {
		t.Errorf("content height = %g, want 0", l.canvasSize.Y)
	}
	if l.previewSize.X < 0 || l.controlsSize.X < 0 {
		t.Errorf("negative widths: preview %g controls %g", l.previewSize.X, l.controlsSize.X)
	}
}

func TestFitImage(t *testing.T) {
	tests := []struct {
		name   string
		avail  imgui.Vec2
		w, h   int
		expect imgui.Vec2
	}{
		{"square in wide", imgui.NewVec2(800, 400), 550, 550, imgui.NewVec2(400, 400)},
		{"square in tall", imgui.NewVec2(300, 900), 550, 550, imgui.NewVec2(300, 300)},
		{"wide image", imgui.NewVec2(400, 400), 200, 100, imgui.NewVec2(400, 200)},
		{"zero image", imgui.NewVec2(400, 400), 0, 100, imgui.NewVec2(0, 0)},
		{"no room", imgui.NewVec2(0, 400), 100, 100, imgui.NewVec2(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fitImage(tt.avail, tt.w, tt.h); got != tt.expect {
				t.Errorf("fitImage(%v, %d, %d) = %v, want %v", tt.avail, tt.w, tt.h, got, tt.expect)
			}
		})
	}
}

func TestCenterOffset(t *testing.T) {
	got := centerOffset(imgui.NewVec2(800, 400), imgui.NewVec2(400, 400))
	if got != imgui.NewVec2(200, 0) {
		t.Errorf("centerOffset = %v", got)
	}
	got = centerOffset(imgui.NewVec2(100, 100), imgui.NewVec2(200, 50))
	if got != imgui.NewVec2(0, 25) {
		t.Errorf("centerOffset = %v", got)
	}
}
