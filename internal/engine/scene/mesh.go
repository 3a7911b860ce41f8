package scene

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/driftlabs/driftline/pkg/math"
)

// Vertex is the interleaved vertex layout: position, normal, color.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	Color    [3]float32
}

// Mesh is indexed triangle geometry. Vertex data lives on the CPU until
// the first draw; Upload pushes it into a VAO/VBO/EBO.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32

	vao, vbo, ebo uint32
	uploaded      bool
}

// Uploaded reports whether the mesh has GL buffers.
func (m *Mesh) Uploaded() bool {
	return m.uploaded
}

// IndexCount returns the number of indices to draw.
func (m *Mesh) IndexCount() int32 {
	return int32(len(m.Indices))
}

// VAO returns the vertex array object. Zero before Upload.
func (m *Mesh) VAO() uint32 {
	return m.vao
}

// Upload pushes vertex and index data to the GPU. Requires a current
// OpenGL context. Calling it twice is a no-op.
func (m *Mesh) Upload() {
	if m.uploaded || len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return
	}

	vertexSize := int(unsafe.Sizeof(Vertex{}))

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*vertexSize, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	m.uploaded = true
}

// Dispose releases the GL buffers. Safe to call on a never-uploaded
// mesh.
func (m *Mesh) Dispose() {
	if !m.uploaded {
		return
	}
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	m.vao, m.vbo, m.ebo = 0, 0, 0
	m.uploaded = false
}

// Append merges other into m, offsetting indices. Only valid before
// Upload.
func (m *Mesh) Append(other *Mesh) {
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, idx := range other.Indices {
		m.Indices = append(m.Indices, base+idx)
	}
}

// Transform bakes a matrix into the vertex positions and rotates the
// normals by the same matrix's rotation part. Only valid before Upload.
func (m *Mesh) Transform(mat math.Mat4) {
	for i := range m.Vertices {
		v := &m.Vertices[i]
		p := mat.TransformPoint(math.Vec3{X: v.Position[0], Y: v.Position[1], Z: v.Position[2]})
		v.Position = [3]float32{p.X, p.Y, p.Z}

		// Rotation-only transform for the normal; this assumes the
		// matrix has uniform scale, which holds for every factory here.
		n := math.Vec3{X: v.Normal[0], Y: v.Normal[1], Z: v.Normal[2]}
		nx := mat[0]*n.X + mat[4]*n.Y + mat[8]*n.Z
		ny := mat[1]*n.X + mat[5]*n.Y + mat[9]*n.Z
		nz := mat[2]*n.X + mat[6]*n.Y + mat[10]*n.Z
		rotated := math.Vec3{X: nx, Y: ny, Z: nz}.Normalize()
		v.Normal = [3]float32{rotated.X, rotated.Y, rotated.Z}
	}
}

// TranslateVerts offsets all vertex positions. Only valid before Upload.
func (m *Mesh) TranslateVerts(offset math.Vec3) {
	for i := range m.Vertices {
		m.Vertices[i].Position[0] += offset.X
		m.Vertices[i].Position[1] += offset.Y
		m.Vertices[i].Position[2] += offset.Z
	}
}
