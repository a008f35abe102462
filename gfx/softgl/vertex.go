package softgl

// Vertex is one mesh vertex. Position is in object space before the vertex
// stage and in screen space (x, y in pixels, depth in z) after it.
type Vertex struct {
	Position  Vec3
	Normal    Vec3
	TexCoords Vec3
}

// Uniforms are the transforms and scalars that stay fixed for one draw call.
type Uniforms struct {
	Model      Mat4
	View       Mat4
	Projection Mat4
	Viewport   Mat4
	Time       Scalar
}

// NewUniforms returns uniforms with every matrix set to identity.
func NewUniforms() Uniforms {
	return Uniforms{
		Model:      Mat4Identity(),
		View:       Mat4Identity(),
		Projection: Mat4Identity(),
		Viewport:   Mat4Identity(),
	}
}

const (
	// minClipW is the smallest |w| that is still divided through.
	minClipW = 1e-4
	// degenerateCoord is written to every axis of a vertex that could not be
	// projected. It lands far outside any framebuffer and behind the camera.
	degenerateCoord = -10000
)

// VertexStage maps object-space vertices to screen space for one draw call.
type VertexStage struct {
	mvp      Mat4
	viewport Mat4
	normal   Mat4
}

// NewVertexStage precomputes Projection·View·Model.
func NewVertexStage(u Uniforms) VertexStage {
	return VertexStage{
		mvp:      u.Projection.Mul(u.View).Mul(u.Model),
		viewport: u.Viewport,
		// Normals are not corrected for the model transform.
		normal: Mat4Identity(),
	}
}

// Transform projects v. A vertex whose clip w is within 1e-4 of zero comes back
// at (-10000, -10000, -10000) so that any triangle using it is discarded
// downstream.
func (s VertexStage) Transform(v Vertex) Vertex {
	clip := s.mvp.MulVec4(v.Position.Vec4(1))
	if clip.W < minClipW && clip.W > -minClipW {
		return Vertex{
			Position:  V3(degenerateCoord, degenerateCoord, degenerateCoord),
			Normal:    v.Normal,
			TexCoords: v.TexCoords,
		}
	}

	ndc := Vec4{X: clip.X / clip.W, Y: clip.Y / clip.W, Z: clip.Z / clip.W, W: 1}
	screen := s.viewport.MulVec4(ndc)
	n := s.normal.MulVec4(v.Normal.Vec4(0))

	return Vertex{
		Position:  screen.Vec3(),
		Normal:    n.Vec3().Normalize(),
		TexCoords: v.TexCoords,
	}
}

// TransformVertex runs a single vertex through the vertex stage.
func TransformVertex(v Vertex, u Uniforms) Vertex {
	return NewVertexStage(u).Transform(v)
}
