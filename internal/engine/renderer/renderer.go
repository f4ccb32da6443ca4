// Package renderer draws loaded OBJ models with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/objview/internal/engine/lighting"
	"github.com/Faultbox/objview/internal/engine/renderer/shaders"
	"github.com/Faultbox/objview/internal/engine/shader"
	"github.com/Faultbox/objview/internal/engine/texture"
	"github.com/Faultbox/objview/internal/logger"
)

// Renderer owns the mesh shader and the GPU meshes it draws.
type Renderer struct {
	// LightDir is the direction the key light travels.
	LightDir mgl32.Vec3

	program uint32

	locViewProj int32
	locModel    int32
	locTexture  int32
	locLightDir int32

	placeholderTex uint32
	meshes         []*GPUMesh

	width, height int
}

// New creates a renderer. The OpenGL context must already be current.
func New(width, height int) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	program, err := shader.CompileProgram(shaders.MeshVertexShader, shaders.MeshFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("mesh shader: %w", err)
	}

	r := &Renderer{
		LightDir:    lighting.SunDirection(35, 55),
		program:     program,
		locViewProj: shader.Uniform(program, "uViewProj"),
		locModel:    shader.Uniform(program, "uModel"),
		locTexture:  shader.Uniform(program, "uTexture"),
		locLightDir: shader.Uniform(program, "uLightDir"),
	}
	r.placeholderTex = uploadTexture(texture.Placeholder())

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)
	r.Resize(width, height)

	return r, nil
}

// Add registers a mesh for drawing.
func (r *Renderer) Add(m *GPUMesh) {
	r.meshes = append(r.meshes, m)
}

// Resize updates the viewport.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	if r.height == 0 {
		return 1
	}
	return float32(r.width) / float32(r.height)
}

// Render uploads any textures that finished decoding, then draws every mesh.
func (r *Renderer) Render(viewProj mgl32.Mat4) {
	for _, m := range r.meshes {
		m.syncTexture()
	}

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locViewProj, 1, false, &viewProj[0])
	gl.Uniform1i(r.locTexture, 0)
	gl.Uniform3f(r.locLightDir, r.LightDir[0], r.LightDir[1], r.LightDir[2])
	gl.ActiveTexture(gl.TEXTURE0)

	for _, m := range r.meshes {
		tex := m.tex
		if tex == 0 {
			tex = r.placeholderTex
		}
		gl.BindTexture(gl.TEXTURE_2D, tex)
		gl.UniformMatrix4fv(r.locModel, 1, false, &m.Transform[0])
		gl.BindVertexArray(m.vao)
		gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_SHORT, nil)
	}
	gl.BindVertexArray(0)
}

// ReadPixels returns the current framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	pixels := make([]byte, r.width*r.height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(r.width), int32(r.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, r.width, r.height
}

// Close releases all GPU resources.
func (r *Renderer) Close() {
	for _, m := range r.meshes {
		m.Delete()
	}
	r.meshes = nil
	if r.placeholderTex != 0 {
		gl.DeleteTextures(1, &r.placeholderTex)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}
