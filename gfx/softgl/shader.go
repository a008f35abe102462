package softgl

// Fragment is the interpolated data for one covered pixel.
type Fragment struct {
	// Position holds the pixel column, row and interpolated depth.
	Position  Vec3
	Normal    Vec3
	Depth     Scalar
	TexCoords Vec3
}

// Shader maps a fragment to a color. Implementations must be pure and must
// return a color for every input.
type Shader interface {
	Shade(f Fragment) Color
}

// ShaderFunc adapts a plain function to Shader.
type ShaderFunc func(f Fragment) Color

func (fn ShaderFunc) Shade(f Fragment) Color { return fn(f) }

// ConstantShader colors every fragment the same.
type ConstantShader struct {
	Color Color
}

func (s ConstantShader) Shade(Fragment) Color { return s.Color }

// NormalShader visualizes the surface normal, mapping each axis from [-1,1]
// to [0,1].
type NormalShader struct{}

func (NormalShader) Shade(f Fragment) Color {
	return ColorFromFloat(
		(f.Normal.X+1)*0.5,
		(f.Normal.Y+1)*0.5,
		(f.Normal.Z+1)*0.5,
	)
}

// LambertShader is grey diffuse lighting from a light along +Z.
type LambertShader struct{}

var lambertLight = V3(0, 0, 1)

func (LambertShader) Shade(f Fragment) Color {
	i := f.Normal.Dot(lambertLight)
	if i < 0 {
		i = 0
	}
	return ColorFromFloat(i, i, i)
}
