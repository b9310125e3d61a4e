// Package ui wraps the ImGui SDL backend and a few drawing helpers shared
// by the application panels.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/lathe/internal/logger"
)

// Backend owns the application window.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	log     *zap.Logger
}

// NewBackend creates the window and its GL context. The caller loads the
// GL entry points afterwards. log may be nil.
func NewBackend(title string, width, height int, log *zap.Logger) (*Backend, error) {
	b := &Backend{log: logger.OrNop(log)}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetBgColor(imgui.NewVec4(0.1, 0.1, 0.12, 1.0))
	b.backend.CreateWindow(title, width, height)
	b.log.Debug("window created",
		zap.String("title", title),
		zap.Int("width", width),
		zap.Int("height", height),
	)

	return b, nil
}

// Run starts the main render loop.
func (b *Backend) Run(renderFunc func()) {
	b.backend.Run(renderFunc)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// Viewport returns the main viewport work area.
func Viewport() (pos, size imgui.Vec2) {
	viewport := imgui.MainViewport()
	return viewport.WorkPos(), viewport.WorkSize()
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}

// Texture draws a GL texture rendered by OpenGL, flipping V so the image is
// upright.
func Texture(textureID uint32, size imgui.Vec2) {
	texRef := imgui.NewTextureRefTextureID(imgui.TextureID(textureID))
	imgui.ImageWithBgV(
		*texRef,
		size,
		imgui.NewVec2(0, 1),
		imgui.NewVec2(1, 0),
		imgui.NewVec4(0, 0, 0, 0),
		imgui.NewVec4(1, 1, 1, 1),
	)
}

// Color packs an RGBA color for draw list calls.
func Color(r, g, b, a float32) uint32 {
	return imgui.ColorU32Vec4(imgui.NewVec4(r, g, b, a))
}
