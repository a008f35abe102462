package scene

import (
	"math"

	"orrery/gfx/softgl"
)

// Planet shaders. All of them light the fragment normal with a directional
// light and never drop below an ambient floor of 0.3.

const ambientFloor = 0.3

var (
	frontLight = softgl.V3(0, 0, 1)
	sideLight  = softgl.V3(1, 0.5, 0.5).Normalize()
)

func diffuse(n, light softgl.Vec3) softgl.Scalar {
	return max(n.Dot(light), ambientFloor)
}

func sin(v softgl.Scalar) softgl.Scalar { return softgl.Scalar(math.Sin(float64(v))) }
func cos(v softgl.Scalar) softgl.Scalar { return softgl.Scalar(math.Cos(float64(v))) }

func abs(v softgl.Scalar) softgl.Scalar {
	if v < 0 {
		return -v
	}
	return v
}

// stripes is |f(u*fu) * g(v*fv)|, the lattice pattern most surfaces use.
func stripes(f, g func(softgl.Scalar) softgl.Scalar, tex softgl.Vec3, fu, fv softgl.Scalar) softgl.Scalar {
	return abs(f(tex.X*fu) * g(tex.Y*fv))
}

// SunShader is unlit. It flickers with screen position.
type SunShader struct{}

func (SunShader) Shade(f softgl.Fragment) softgl.Color {
	const bright = 1.5
	flicker := sin(f.Position.X*0.1+f.Position.Y*0.1)*0.15 + 1
	return softgl.ColorFromFloat(
		min(bright*flicker, 1),
		min(bright*0.8*flicker, 1),
		min(bright*0.4*flicker, 1),
	)
}

// RockyShader is a dusty brown surface.
type RockyShader struct{}

var rockyBase = softgl.V3(0.8, 0.5, 0.4)

func (RockyShader) Shade(f softgl.Fragment) softgl.Color {
	i := diffuse(f.Normal, frontLight)
	k := i * (0.8 + stripes(sin, cos, f.TexCoords, 20, 20)*0.2) * 1.2
	return softgl.ColorFromFloat(rockyBase.X*k, rockyBase.Y*k, rockyBase.Z*k)
}

// GasShader draws latitude bands with some turbulence.
type GasShader struct{}

var (
	gasBandA = softgl.V3(1, 0.7, 0.5)
	gasBandB = softgl.V3(1, 0.8, 0.6)
)

func (GasShader) Shade(f softgl.Fragment) softgl.Color {
	i := diffuse(f.Normal, sideLight)
	bands := sin(f.TexCoords.Y*10)*0.5 + 0.5
	turbulence := stripes(sin, cos, f.TexCoords, 15, 3)

	c := gasBandA.Mul(bands).Add(gasBandB.Mul(1 - bands)).Mul(0.9 + turbulence*0.1)
	c = c.Mul(i * 1.2)
	return softgl.ColorFromFloat(c.X, c.Y, c.Z)
}

// EarthShader splits the surface into ocean and land cells.
type EarthShader struct{}

var (
	earthOcean = softgl.V3(0.3, 0.5, 1)
	earthLand  = softgl.V3(0.4, 0.8, 0.4)
)

func (EarthShader) Shade(f softgl.Fragment) softgl.Color {
	i := diffuse(f.Normal, frontLight)
	c := earthLand
	if stripes(sin, cos, f.TexCoords, 8, 8) > 0.5 {
		c = earthOcean
	}
	c = c.Mul(i * 1.3)
	return softgl.ColorFromFloat(c.X, c.Y, c.Z)
}

// RedShader is a cratered rust surface.
type RedShader struct{}

func (RedShader) Shade(f softgl.Fragment) softgl.Color {
	i := diffuse(f.Normal, frontLight)
	k := i * (0.7 + stripes(sin, cos, f.TexCoords, 25, 25)*0.3)
	return softgl.ColorFromFloat(k, 0.4*k*1.2, 0.25*k*1.2)
}

// IceShader is a bright, slightly blue surface.
type IceShader struct{}

func (IceShader) Shade(f softgl.Fragment) softgl.Color {
	i := diffuse(f.Normal, sideLight)
	k := (0.9 + stripes(cos, sin, f.TexCoords, 15, 15)*0.2) * i
	return softgl.ColorFromFloat(k*1.4, k*1.35, k*1.4)
}

// MoonShader is grey with craters.
type MoonShader struct{}

func (MoonShader) Shade(f softgl.Fragment) softgl.Color {
	i := diffuse(f.Normal, sideLight)
	k := (0.6 + stripes(sin, cos, f.TexCoords, 30, 30)*0.3) * i * 1.2
	return softgl.ColorFromFloat(k, k, k)
}

// ShaderByName returns the planet shader with the given lower-case name.
func ShaderByName(name string) (softgl.Shader, bool) {
	switch name {
	case "sun":
		return SunShader{}, true
	case "rocky":
		return RockyShader{}, true
	case "gas":
		return GasShader{}, true
	case "earth":
		return EarthShader{}, true
	case "red":
		return RedShader{}, true
	case "ice":
		return IceShader{}, true
	case "moon":
		return MoonShader{}, true
	}
	return nil, false
}
