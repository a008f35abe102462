package softgl

import "testing"

func TestColorPacked(t *testing.T) {
	c := RGB(0x12, 0x34, 0x56)
	if got := c.Packed(); got != 0x123456 {
		t.Fatalf("Packed() = %#x, want 0x123456", got)
	}
	if got := ColorFromPacked(0xFF123456); got != c {
		t.Fatalf("ColorFromPacked() = %v, want %v", got, c)
	}
}

func TestColorFromFloat(t *testing.T) {
	cases := []struct {
		r, g, b Scalar
		want    Color
	}{
		{0, 0.5, 1, RGB(0, 127, 255)},
		{-1, 2, 0.25, RGB(0, 255, 63)},
	}
	for _, tc := range cases {
		if got := ColorFromFloat(tc.r, tc.g, tc.b); got != tc.want {
			t.Fatalf("ColorFromFloat(%v, %v, %v) = %v, want %v", tc.r, tc.g, tc.b, got, tc.want)
		}
	}
}

func TestColorLerpString(t *testing.T) {
	a := RGB(0, 100, 200)
	b := RGB(100, 200, 0)
	if got, want := a.Lerp(b, 0.5), RGB(50, 150, 100); got != want {
		t.Fatalf("Lerp = %v, want %v", got, want)
	}
	if got, want := a.String(), "Color(0, 100, 200)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
