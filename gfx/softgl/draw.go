package softgl

// Mesh is a triangle list: every consecutive triple of Indices is one triangle.
type Mesh struct {
	Vertices []Vertex
	Indices  []int
}

// TriangleCount returns the number of complete index triples.
func (m Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// DrawStats summarizes one or more draw calls.
type DrawStats struct {
	Triangles    int // complete index triples submitted
	Drawn        int // triangles handed to the rasterizer
	SkippedIndex int // triples referencing a vertex outside the mesh
	SkippedDepth int // triangles with a vertex at negative screen depth
	Pixels       int // framebuffer writes that landed
}

// Add accumulates o into s.
func (s *DrawStats) Add(o DrawStats) {
	s.Triangles += o.Triangles
	s.Drawn += o.Drawn
	s.SkippedIndex += o.SkippedIndex
	s.SkippedDepth += o.SkippedDepth
	s.Pixels += o.Pixels
}

// DrawMesh transforms every vertex of m with u and rasterizes each triangle
// with shader. Triangles with an out-of-range index are skipped, as are
// triangles with any vertex at negative depth after the vertex stage; the rest
// of the mesh still draws.
func DrawMesh[S Shader](m Mesh, fb *Framebuffer, u Uniforms, shader S) DrawStats {
	var st DrawStats
	if fb == nil || len(m.Vertices) == 0 {
		st.Triangles = m.TriangleCount()
		return st
	}

	stage := NewVertexStage(u)
	screen := make([]Vertex, len(m.Vertices))
	for i, v := range m.Vertices {
		screen[i] = stage.Transform(v)
	}

	n := len(screen)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		st.Triangles++
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		if i0 < 0 || i1 < 0 || i2 < 0 || i0 >= n || i1 >= n || i2 >= n {
			st.SkippedIndex++
			continue
		}

		a, b, c := screen[i0], screen[i1], screen[i2]
		if a.Position.Z < 0 || b.Position.Z < 0 || c.Position.Z < 0 {
			st.SkippedDepth++
			continue
		}

		st.Drawn++
		st.Pixels += Triangle(a, b, c, fb, shader)
	}

	if st.SkippedIndex > 0 {
		Logger().Debug("softgl: triangles with invalid indices skipped",
			"skipped", st.SkippedIndex, "triangles", st.Triangles)
	}
	return st
}
