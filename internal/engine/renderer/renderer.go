// Package renderer draws a revolved mesh into an offscreen framebuffer.
package renderer

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/lathe/internal/engine/framebuffer"
	"github.com/Faultbox/lathe/internal/engine/renderer/shaders"
	"github.com/Faultbox/lathe/internal/engine/screenshot"
	"github.com/Faultbox/lathe/internal/engine/shader"
	"github.com/Faultbox/lathe/internal/logger"
	"github.com/Faultbox/lathe/internal/view"
	"github.com/Faultbox/lathe/pkg/revolve"
)

// Shading selects how normals are turned into colors.
type Shading int32

const (
	// ShadeRaw uses the normal components as RGB; negative components
	// render black.
	ShadeRaw Shading = iota
	// ShadeRemapped maps each component from [-1, 1] to [0, 1].
	ShadeRemapped
)

// Vertex layout shared with the shader.
const (
	vertexStride = int32(unsafe.Sizeof(revolve.Vertex{}))
	normalOffset = unsafe.Offsetof(revolve.Vertex{}.Normal)
)

// DefaultBackground is the clear color of the preview.
var DefaultBackground = [4]float32{0.37, 0.42, 0.45, 1}

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Background [4]float32
	Shading    Shading
}

// InitGL loads the OpenGL function pointers and logs the driver. It must be
// called after a context is current.
func InitGL(log *zap.Logger) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.OrNop(log).Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)
	return nil
}

// MeshRenderer uploads one mesh at a time and renders it with a model
// transform. It keeps only the vertex count after an upload.
type MeshRenderer struct {
	log *zap.Logger
	cfg Config

	program *shader.Program
	target  *framebuffer.Framebuffer

	vao         uint32
	vbo         uint32
	vertexCount int32
	generation  uint64
	uploaded    bool
}

// New creates the shader program, render target and vertex buffers.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config, log *zap.Logger) (*MeshRenderer, error) {
	r := &MeshRenderer{
		log: logger.OrNop(log).Named("renderer"),
		cfg: cfg,
	}

	program, err := shader.New(shaders.MeshVertexShader, shaders.MeshFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("mesh shader: %w", err)
	}
	r.program = program

	target, err := framebuffer.New(int32(cfg.Width), int32(cfg.Height))
	if err != nil {
		r.program.Delete()
		return nil, err
	}
	r.target = target

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, normalOffset)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.log.Debug("mesh renderer created",
		zap.Uint32("vao", r.vao),
		zap.Uint32("vbo", r.vbo),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
	)
	return r, nil
}

// Upload copies mesh into the vertex buffer unless the same generation is
// already resident.
func (r *MeshRenderer) Upload(mesh *revolve.Mesh, generation uint64) {
	if r.uploaded && generation == r.generation {
		return
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	if mesh == nil || mesh.IsEmpty() {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
		r.vertexCount = 0
	} else {
		size := len(mesh.Vertices) * int(vertexStride)
		gl.BufferData(gl.ARRAY_BUFFER, size, unsafe.Pointer(&mesh.Vertices[0]), gl.STATIC_DRAW)
		r.vertexCount = int32(len(mesh.Vertices))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.generation = generation
	r.uploaded = true
	r.log.Debug("mesh uploaded",
		zap.Uint64("generation", generation),
		zap.Int32("vertices", r.vertexCount),
	)
}

// VertexCount returns the number of vertices drawn per frame.
func (r *MeshRenderer) VertexCount() int32 {
	return r.vertexCount
}

// SetShading changes the normal-to-color mapping.
func (r *MeshRenderer) SetShading(s Shading) {
	r.cfg.Shading = s
}

// Shading returns the current normal-to-color mapping.
func (r *MeshRenderer) Shading() Shading {
	return r.cfg.Shading
}

// Resize changes the render target size.
func (r *MeshRenderer) Resize(width, height int) {
	if r.target.Resize(int32(width), int32(height)) {
		r.log.Debug("render target resized", zap.Int("width", width), zap.Int("height", height))
	}
}

// Size returns the render target size.
func (r *MeshRenderer) Size() (width, height int) {
	w, h := r.target.Size()
	return int(w), int(h)
}

// Render draws the uploaded mesh with transform and returns the color
// texture holding the result.
func (r *MeshRenderer) Render(transform view.ModelTransform) uint32 {
	restore := r.target.BindWithViewport()
	defer restore()

	bg := r.cfg.Background
	r.target.Clear(bg[0], bg[1], bg[2], bg[3])

	if r.vertexCount == 0 {
		return r.target.ColorTexture()
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	defer gl.Disable(gl.DEPTH_TEST)

	w, h := r.Size()
	r.program.Use()
	r.program.SetMat4("uModel", transform.Matrix())
	r.program.SetMat4("uProjection", view.Projection(w, h))
	r.program.SetInt("uShading", int32(r.cfg.Shading))

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, r.vertexCount)
	gl.BindVertexArray(0)
	gl.UseProgram(0)

	return r.target.ColorTexture()
}

// Capture renders a frame with transform and reads it back as an image.
func (r *MeshRenderer) Capture(transform view.ModelTransform) (*image.RGBA, error) {
	r.Render(transform)
	w, h := r.Size()
	img, err := screenshot.FromPixels(r.target.ReadPixels(), w, h)
	if err != nil {
		return nil, fmt.Errorf("reading render target: %w", err)
	}
	return img, nil
}

// Close releases all GL resources.
func (r *MeshRenderer) Close() {
	r.log.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.program != nil {
		r.program.Delete()
	}
	if r.target != nil {
		r.target.Destroy()
	}
}
