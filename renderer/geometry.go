package renderer

import "github.com/richinsley/shaderbackdrop/graphics"

// Two triangles covering clip space.
var quadVertices = []float32{
	-1.0, 1.0, -1.0, -1.0, 1.0, -1.0,
	-1.0, 1.0, 1.0, -1.0, 1.0, 1.0,
}

const quadVertexCount = 6

// positionAttrib matches layout(location = 0) in the vertex stages.
const positionAttrib = 0

// Geometry is the full-screen quad, uploaded once and never modified.
type Geometry struct {
	VAO uint32
	VBO uint32
}

func newGeometry(g graphics.GL) *Geometry {
	geo := &Geometry{
		VAO: g.GenVertexArray(),
		VBO: g.GenBuffer(),
	}
	g.BindVertexArray(geo.VAO)
	g.BindArrayBuffer(geo.VBO)
	g.ArrayBufferData(quadVertices)
	g.EnableVertexAttribArray(positionAttrib)
	g.VertexAttribPointer2f(positionAttrib)
	g.BindArrayBuffer(0)
	g.BindVertexArray(0)
	return geo
}

func (geo *Geometry) bind(g graphics.GL) {
	g.BindVertexArray(geo.VAO)
}

func (geo *Geometry) release(g graphics.GL) {
	g.DeleteBuffer(geo.VBO)
	g.DeleteVertexArray(geo.VAO)
}
