package softgl

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func approxEq(a, b, tol Scalar) bool {
	return Scalar(math.Abs(float64(a-b))) <= tol
}

func assertMat(t *testing.T, name string, got Mat4, want mgl32.Mat4, tol Scalar) {
	t.Helper()
	for i := range got {
		if !approxEq(got[i], want[i], tol) {
			t.Fatalf("%s[%d] = %v, want %v\ngot  %v\nwant %v", name, i, got[i], want[i], got, want)
		}
	}
}

func randMat(r *rand.Rand) Mat4 {
	var m Mat4
	for i := range m {
		m[i] = Scalar(r.Float64()*4 - 2)
	}
	return m
}

func TestMat4MulIdentity(t *testing.T) {
	a := Mat4Identity()
	b := Mat4Translate(V3(1, 2, 3))
	if got := a.Mul(b); got != b {
		t.Fatalf("identity*a mismatch")
	}
	if got := b.Mul(a); got != b {
		t.Fatalf("a*identity mismatch")
	}

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		m := randMat(r)
		if got := Mat4Identity().Mul(m); got != m {
			t.Fatalf("identity*M = %v, want %v", got, m)
		}
	}
}

func TestMat4MulAssociative(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		a, b, c := randMat(r), randMat(r), randMat(r)
		left := a.Mul(b).Mul(c)
		right := a.Mul(b.Mul(c))
		for k := range left {
			if !approxEq(left[k], right[k], 1e-4) {
				t.Fatalf("(AB)C[%d] = %v, A(BC)[%d] = %v", k, left[k], k, right[k])
			}
		}
	}
}

func TestMat4MulNotCommutative(t *testing.T) {
	tr := Mat4Translate(V3(5, 0, 0))
	rot := Mat4RotateZ(math.Pi / 2)
	p := V3(1, 0, 0).Vec4(1)

	tr1 := tr.Mul(rot).MulVec4(p) // rotate, then translate
	tr2 := rot.Mul(tr).MulVec4(p) // translate, then rotate
	if approxEq(tr1.X, tr2.X, 1e-3) && approxEq(tr1.Y, tr2.Y, 1e-3) {
		t.Fatalf("T*R and R*T produced the same point %v", tr1)
	}
	if !approxEq(tr1.X, 5, 1e-5) || !approxEq(tr1.Y, 1, 1e-5) {
		t.Fatalf("T*R*p = %v, want (5, 1)", tr1)
	}
}

func TestMat4FromRowsAt(t *testing.T) {
	m := Mat4FromRows(
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
		12, 13, 14, 15,
	)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if got, want := m.At(row, col), Scalar(row*4+col); got != want {
				t.Fatalf("At(%d, %d) = %v, want %v", row, col, got, want)
			}
		}
	}
	if m.At(0, 3) != m[12] {
		t.Fatalf("translation column not stored at m[12]")
	}
}

func TestTransformBuildersMatchMathGL(t *testing.T) {
	const angle = 0.7
	assertMat(t, "translate", Mat4Translate(V3(1, -2, 3)), mgl32.Translate3D(1, -2, 3), 0)
	assertMat(t, "scale", Mat4Scale(V3(2, 3, 4)), mgl32.Scale3D(2, 3, 4), 0)
	assertMat(t, "rotateX", Mat4RotateX(angle), mgl32.HomogRotate3DX(angle), 1e-6)
	assertMat(t, "rotateY", Mat4RotateY(angle), mgl32.HomogRotate3DY(angle), 1e-6)
	assertMat(t, "rotateZ", Mat4RotateZ(angle), mgl32.HomogRotate3DZ(angle), 1e-6)
}

func TestModelMatrixOrder(t *testing.T) {
	tr := V3(3, -1, 2)
	rot := V3(0.3, 1.1, -0.4)
	const s = 2.5

	got := Mat4Model(tr, s, rot)
	want := mgl32.Translate3D(tr.X, tr.Y, tr.Z).
		Mul4(mgl32.HomogRotate3DZ(rot.Z)).
		Mul4(mgl32.HomogRotate3DY(rot.Y)).
		Mul4(mgl32.HomogRotate3DX(rot.X)).
		Mul4(mgl32.Scale3D(s, s, s))
	assertMat(t, "model", got, want, 1e-5)

	// Scale is applied before translation: the origin lands on the translation.
	p := got.MulVec4(Vec4{W: 1})
	if !approxEq(p.X, tr.X, 1e-6) || !approxEq(p.Y, tr.Y, 1e-6) || !approxEq(p.Z, tr.Z, 1e-6) {
		t.Fatalf("model*origin = %v, want %v", p, tr)
	}
}

func TestLookAtMatchesMathGL(t *testing.T) {
	eye := V3(3, 4, 5)
	center := V3(-1, 0.5, 0)
	up := V3(0, 1, 0)
	got := Mat4LookAt(eye, center, up)
	want := mgl32.LookAtV(mgl32.Vec3{3, 4, 5}, mgl32.Vec3{-1, 0.5, 0}, mgl32.Vec3{0, 1, 0})
	assertMat(t, "lookAt", got, want, 1e-5)
}

func TestPerspectiveMatchesMathGL(t *testing.T) {
	got := Mat4Perspective(math.Pi/3, 700.0/525.0, 0.1, 100)
	want := mgl32.Perspective(math.Pi/3, 700.0/525.0, 0.1, 100)
	assertMat(t, "perspective", got, want, 1e-5)

	// w_clip = -z_view.
	p := got.MulVec4(Vec4{X: 1, Y: 2, Z: -7, W: 1})
	if !approxEq(p.W, 7, 1e-6) {
		t.Fatalf("clip w = %v, want 7", p.W)
	}
}

func TestLookAtPerspectiveForwardAxis(t *testing.T) {
	view := Mat4LookAt(V3(0, 0, 5), V3(0, 0, 0), V3(0, 1, 0))
	proj := Mat4Perspective(math.Pi/3, 4.0/3.0, 0.1, 100)
	pv := proj.Mul(view)

	for _, z := range []Scalar{0, -3, 2, 4.5} {
		clip := pv.MulVec4(V3(0, 0, z).Vec4(1))
		x, y := clip.X/clip.W, clip.Y/clip.W
		if !approxEq(x, 0, 1e-6) || !approxEq(y, 0, 1e-6) {
			t.Fatalf("forward point z=%v maps to NDC (%v, %v), want (0, 0)", z, x, y)
		}
	}
}

func TestViewport(t *testing.T) {
	vp := Mat4Viewport(800, 600)
	cases := []struct {
		name string
		ndc  Vec4
		want Vec3
	}{
		{"top-left", Vec4{-1, 1, 0.25, 1}, V3(0, 0, 0.25)},
		{"bottom-right", Vec4{1, -1, -0.5, 1}, V3(800, 600, -0.5)},
		{"center", Vec4{0, 0, 0.9, 1}, V3(400, 300, 0.9)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := vp.MulVec4(tc.ndc).Vec3()
			if got != tc.want {
				t.Fatalf("viewport(%v) = %v, want %v", tc.ndc, got, tc.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		v := V3(Scalar(r.NormFloat64()*10), Scalar(r.NormFloat64()*10), Scalar(r.NormFloat64()*10))
		if v.Len() == 0 {
			continue
		}
		if l := v.Normalize().Len(); !approxEq(l, 1, 1e-5) {
			t.Fatalf("|normalize(%v)| = %v, want 1", v, l)
		}
	}

	zero := Vec3{}
	if got := zero.Normalize(); got != zero {
		t.Fatalf("normalize(0) = %v, want %v", got, zero)
	}
	nan := V3(Scalar(math.NaN()), 0, 0)
	if got := nan.Normalize(); !isNaN(got.X) || got.Y != 0 || got.Z != 0 {
		t.Fatalf("normalize(NaN) = %v, want input unchanged", got)
	}
}

func TestVec3Ops(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -5, 6)
	if got, want := a.Add(b), V3(5, -3, 9); got != want {
		t.Fatalf("Add = %v, want %v", got, want)
	}
	if got, want := a.Sub(b), V3(-3, 7, -3); got != want {
		t.Fatalf("Sub = %v, want %v", got, want)
	}
	if got, want := a.Mul(2), V3(2, 4, 6); got != want {
		t.Fatalf("Mul = %v, want %v", got, want)
	}
	if got, want := a.Neg(), V3(-1, -2, -3); got != want {
		t.Fatalf("Neg = %v, want %v", got, want)
	}
	if got, want := a.Dot(b), Scalar(12); got != want {
		t.Fatalf("Dot = %v, want %v", got, want)
	}
	if got, want := V3(1, 0, 0).Cross(V3(0, 1, 0)), V3(0, 0, 1); got != want {
		t.Fatalf("Cross = %v, want %v", got, want)
	}
	if got, want := V3(3, 4, 0).Len(), Scalar(5); got != want {
		t.Fatalf("Len = %v, want %v", got, want)
	}
	if got, want := V3(0, 0, 0).Lerp(V3(2, 4, 6), 0.5), V3(1, 2, 3); got != want {
		t.Fatalf("Lerp = %v, want %v", got, want)
	}
}
