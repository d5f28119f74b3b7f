// Package renderer draws court scenes with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/courtdesigner/internal/engine/model"
	"github.com/Faultbox/courtdesigner/internal/engine/shader"
	"github.com/Faultbox/courtdesigner/internal/logger"
	"github.com/Faultbox/courtdesigner/pkg/color"
	"github.com/Faultbox/courtdesigner/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	// Background is the clear color.
	Background color.RGBA
	Lights     Lights
}

// Lights is an ambient term plus one directional light.
type Lights struct {
	Ambient          float32
	Direction        math.Vec3 // from the scene towards the light
	DirectionalPower float32
}

// DefaultConfig returns the court preview setup: a soft sky and a sun high
// over the front right corner.
func DefaultConfig(width, height int) Config {
	return Config{
		Width:      width,
		Height:     height,
		Background: color.RGBA{R: 0.62, G: 0.56, B: 0.52, A: 1},
		Lights: Lights{
			Ambient:          0.45,
			Direction:        math.Vec3{X: 10, Y: 20, Z: 5},
			DirectionalPower: 0.75,
		},
	}
}

// gpuMesh is a mesh uploaded to the GPU.
type gpuMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config  Config
	program *shader.Program
	log     *zap.Logger

	batch  *model.Batch
	meshes map[*model.Mesh]gpuMesh
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
		meshes: make(map[*model.Mesh]gpuMesh),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	bg := cfg.Background
	gl.ClearColor(bg.R, bg.G, bg.B, bg.A)

	var err error
	r.program, err = shader.Compile(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.releaseMeshes()
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// ReadPixels returns the current frame as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// SetBatch replaces the drawn scene. Meshes of the previous batch are
// released.
func (r *Renderer) SetBatch(b *model.Batch) {
	r.releaseMeshes()
	r.batch = b
	for _, m := range b.Meshes {
		r.meshes[m] = upload(m)
	}
	r.log.Debug("scene uploaded",
		zap.Int("items", len(b.Items)),
		zap.Int("meshes", len(r.meshes)),
		zap.Int("skipped", b.Skipped),
	)
}

// Draw renders the current batch: opaque items first, then transparent ones
// back to front with depth writes off.
func (r *Renderer) Draw(view, projection math.Mat4, eye math.Vec3) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if r.batch == nil {
		return
	}

	r.program.Use()
	r.program.SetMat4("uView", view)
	r.program.SetMat4("uProjection", projection)
	r.program.SetVec3("uEye", eye)
	r.program.SetVec3("uLightDir", r.config.Lights.Direction.Normalize())
	r.program.SetFloat("uAmbient", r.config.Lights.Ambient)
	r.program.SetFloat("uDirectional", r.config.Lights.DirectionalPower)

	gl.Disable(gl.BLEND)
	gl.DepthMask(true)
	for _, it := range r.batch.Opaque() {
		r.drawItem(it)
	}

	r.batch.SortBackToFront(eye)
	gl.Enable(gl.BLEND)
	gl.DepthMask(false)
	for _, it := range r.batch.Transparent() {
		r.drawItem(it)
	}
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}

func (r *Renderer) drawItem(it model.DrawItem) {
	m, ok := r.meshes[it.Mesh]
	if !ok || m.indexCount == 0 {
		return
	}
	if it.DoubleSided {
		gl.Disable(gl.CULL_FACE)
	} else {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	}

	r.program.SetMat4("uModel", it.Model)
	r.program.SetColor("uColor", it.Color)
	r.program.SetFloat("uRoughness", it.Roughness)
	r.program.SetFloat("uMetalness", it.Metalness)

	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
}

func (r *Renderer) releaseMeshes() {
	for key, m := range r.meshes {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
		delete(r.meshes, key)
	}
}

func upload(m *model.Mesh) gpuMesh {
	var g gpuMesh
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return g
	}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	stride := int32(unsafe.Sizeof(model.Vertex{}))
	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(stride), unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// Normal attribute (location = 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, unsafe.Offsetof(model.Vertex{}.Normal))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	g.indexCount = int32(len(m.Indices))
	return g
}
