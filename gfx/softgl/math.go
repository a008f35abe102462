package softgl

import "math"

// Scalar is the numeric type used by softgl math operations.
type Scalar = float32

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z Scalar
}

// Vec4 is a homogeneous 4D vector.
type Vec4 struct {
	X, Y, Z, W Scalar
}

// Mat4 is a column-major 4x4 matrix: m[col*4+row].
type Mat4 [16]Scalar

func V3(x, y, z Scalar) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3    { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3    { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s Scalar) Vec3  { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Neg() Vec3          { return Vec3{-v.X, -v.Y, -v.Z} }
func (v Vec3) Dot(o Vec3) Scalar  { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Len() Scalar        { return Scalar(math.Sqrt(float64(v.Dot(v)))) }
func (v Vec3) Vec4(w Scalar) Vec4 { return Vec4{v.X, v.Y, v.Z, w} }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Normalize returns v scaled to unit length. A vector whose length is not
// positive (zero or NaN) is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if !(l > 0) {
		return v
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Lerp interpolates between v and o.
func (v Vec3) Lerp(o Vec3, t Scalar) Vec3 {
	return Vec3{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t, v.Z + (o.Z-v.Z)*t}
}

// Vec3 drops the w component without dividing.
func (v Vec4) Vec3() Vec3 { return Vec3{v.X, v.Y, v.Z} }

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4FromRows builds a matrix from its elements written row by row.
func Mat4FromRows(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 Scalar,
) Mat4 {
	return Mat4{
		m00, m10, m20, m30,
		m01, m11, m21, m31,
		m02, m12, m22, m32,
		m03, m13, m23, m33,
	}
}

// At returns the element at row, col.
func (m Mat4) At(row, col int) Scalar { return m[col*4+row] }

// Mul returns m*o. The right operand is applied first.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[col*4+row] =
				m[0*4+row]*o[col*4+0] +
					m[1*4+row]*o[col*4+1] +
					m[2*4+row]*o[col*4+2] +
					m[3*4+row]*o[col*4+3]
		}
	}
	return out
}

func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

func Mat4Translate(v Vec3) Mat4 {
	m := Mat4Identity()
	m[12] = v.X
	m[13] = v.Y
	m[14] = v.Z
	return m
}

func Mat4Scale(v Vec3) Mat4 {
	m := Mat4Identity()
	m[0] = v.X
	m[5] = v.Y
	m[10] = v.Z
	return m
}

func Mat4RotateX(rad Scalar) Mat4 {
	c, s := sincos(rad)
	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

func Mat4RotateY(rad Scalar) Mat4 {
	c, s := sincos(rad)
	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

func Mat4RotateZ(rad Scalar) Mat4 {
	c, s := sincos(rad)
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Model composes an object transform as translate * (rotZ*rotY*rotX) * scale,
// so the scale is applied first and the translation last.
func Mat4Model(translation Vec3, scale Scalar, rotation Vec3) Mat4 {
	rot := Mat4RotateZ(rotation.Z).Mul(Mat4RotateY(rotation.Y)).Mul(Mat4RotateX(rotation.X))
	return Mat4Translate(translation).Mul(rot).Mul(Mat4Scale(V3(scale, scale, scale)))
}

// Mat4LookAt returns a right-handed view matrix looking from eye toward center.
func Mat4LookAt(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	return Mat4FromRows(
		s.X, s.Y, s.Z, -s.Dot(eye),
		u.X, u.Y, u.Z, -u.Dot(eye),
		-f.X, -f.Y, -f.Z, f.Dot(eye),
		0, 0, 0, 1,
	)
}

// Mat4Perspective returns a symmetric frustum projection. fovY is the vertical
// field of view in radians. The resulting clip w equals -z in view space.
func Mat4Perspective(fovY, aspect, near, far Scalar) Mat4 {
	tanHalf := Scalar(math.Tan(float64(fovY) / 2))
	return Mat4FromRows(
		1/(aspect*tanHalf), 0, 0, 0,
		0, 1/tanHalf, 0, 0,
		0, 0, -(far+near)/(far-near), -(2*far*near)/(far-near),
		0, 0, -1, 0,
	)
}

// Mat4Viewport maps NDC [-1,1]² to pixel coordinates with row 0 at the top.
// Depth passes through unchanged.
func Mat4Viewport(width, height Scalar) Mat4 {
	return Mat4FromRows(
		width/2, 0, 0, width/2,
		0, -height/2, 0, height/2,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

func sincos(rad Scalar) (c, s Scalar) {
	sf, cf := math.Sincos(float64(rad))
	return Scalar(cf), Scalar(sf)
}

func isFinite(v Scalar) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
