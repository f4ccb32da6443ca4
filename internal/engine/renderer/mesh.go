package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/objview/internal/engine/model"
	"github.com/Faultbox/objview/internal/engine/texture"
	"github.com/Faultbox/objview/internal/logger"
)

// GPUMesh is an uploaded model with its pending diffuse texture.
type GPUMesh struct {
	Transform mgl32.Mat4

	vao, vbo, ebo uint32
	indexCount    int32

	tex     uint32 // 0 until the decoded texture is uploaded
	diffuse *texture.Handle
	settled bool // texture uploaded or fetch failed
}

// Upload copies a model's mesh to the GPU. Indices are 16-bit, which the
// loader's vertex ceiling guarantees.
func Upload(m *model.Model, transform mgl32.Mat4) *GPUMesh {
	g := &GPUMesh{
		Transform: transform,
		diffuse:   m.Diffuse,
	}

	vertices := m.Mesh.Interleaved()
	stride := int32(model.VertexStride * 4)

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	if len(vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)
	}

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	indices := m.Mesh.Indices
	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	if len(indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)
	}
	g.indexCount = int32(len(indices))

	gl.BindVertexArray(0)
	return g
}

// syncTexture uploads the diffuse texture once its fetch has completed.
func (g *GPUMesh) syncTexture() {
	if g.settled || g.diffuse == nil {
		return
	}
	select {
	case <-g.diffuse.Done():
	default:
		return
	}

	g.settled = true
	if err := g.diffuse.Err(); err != nil {
		logger.Debug("drawing with placeholder texture",
			zap.String("path", g.diffuse.Path()),
			zap.Error(err))
		return
	}
	if !g.diffuse.Ready() {
		return
	}
	g.tex = uploadTexture(g.diffuse.Image())
	logger.Debug("texture uploaded", zap.String("path", g.diffuse.Path()))
}

// Delete releases the mesh's GPU objects.
func (g *GPUMesh) Delete() {
	if g.tex != 0 {
		gl.DeleteTextures(1, &g.tex)
	}
	gl.DeleteBuffers(1, &g.ebo)
	gl.DeleteBuffers(1, &g.vbo)
	gl.DeleteVertexArrays(1, &g.vao)
}

func uploadTexture(img *texture.Image) uint32 {
	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Width), int32(img.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	return texID
}
