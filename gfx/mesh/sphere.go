package mesh

import (
	"math"

	"orrery/gfx/softgl"
)

// UVSphere builds a unit sphere centered at the origin. Normals point outward;
// texcoords run u around the equator and v from the north pole to the south.
func UVSphere(stacks, slices int) softgl.Mesh {
	if stacks < 2 {
		stacks = 2
	}
	if slices < 3 {
		slices = 3
	}

	verts := make([]softgl.Vertex, 0, (stacks+1)*(slices+1))
	indices := make([]int, 0, stacks*slices*6)

	for i := 0; i <= stacks; i++ {
		v := float64(i) / float64(stacks)
		phi := v * math.Pi
		sp, cp := math.Sincos(phi)
		for j := 0; j <= slices; j++ {
			u := float64(j) / float64(slices)
			theta := u * 2 * math.Pi
			st, ct := math.Sincos(theta)

			p := softgl.V3(softgl.Scalar(sp*ct), softgl.Scalar(cp), softgl.Scalar(sp*st))
			verts = append(verts, softgl.Vertex{
				Position:  p,
				Normal:    p,
				TexCoords: softgl.V3(softgl.Scalar(u), softgl.Scalar(v), 0),
			})
		}
	}

	idx := func(i, j int) int { return i*(slices+1) + j }
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			i0 := idx(i, j)
			i1 := idx(i+1, j)
			i2 := idx(i+1, j+1)
			i3 := idx(i, j+1)

			indices = append(indices, i0, i1, i2)
			indices = append(indices, i0, i2, i3)
		}
	}

	return softgl.Mesh{Vertices: verts, Indices: indices}
}
