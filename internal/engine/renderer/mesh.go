package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/deskscene/internal/engine/mesh"
	"github.com/Faultbox/deskscene/internal/logger"
)

// gpuMesh is a mesh uploaded to VAO/VBO/EBO.
type gpuMesh struct {
	vao, vbo, ebo uint32
	src           *mesh.Mesh
}

// UploadMesh creates GPU buffers for m, replacing any mesh of the same kind.
func (r *Renderer) UploadMesh(m *mesh.Mesh) error {
	if old, ok := r.meshes[m.Kind]; ok {
		old.delete()
	}

	g := &gpuMesh{src: m}
	stride := int32(unsafe.Sizeof(mesh.Vertex{}))

	// VAO
	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	// VBO
	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(stride), unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	// EBO
	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	// Position (location = 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, unsafe.Offsetof(mesh.Vertex{}.Position))
	gl.EnableVertexAttribArray(0)
	// Normal (location = 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, unsafe.Offsetof(mesh.Vertex{}.Normal))
	gl.EnableVertexAttribArray(1)
	// TexCoord (location = 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, unsafe.Offsetof(mesh.Vertex{}.UV))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.meshes[m.Kind] = g
	logger.Debug("mesh uploaded",
		zap.Stringer("mesh", m.Kind),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("indices", len(m.Indices)),
	)
	return nil
}

func (g *gpuMesh) draw(parts mesh.Parts) {
	gl.BindVertexArray(g.vao)
	// One draw call per selected part range
	for _, rg := range g.src.Select(parts) {
		gl.DrawElementsWithOffset(gl.TRIANGLES, int32(rg.Count), gl.UNSIGNED_INT, uintptr(rg.Offset*4))
	}
}

func (g *gpuMesh) delete() {
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
	}
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
	}
}
