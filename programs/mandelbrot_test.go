package programs

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func testProgram(t *testing.T, name string) Program {
	t.Helper()
	i := IndexOf(name)
	if i < 0 {
		t.Fatalf("program %q not registered", name)
	}
	return Get(i)
}

var white = mgl32.Vec4{1, 1, 1, 1}

func TestMandelbrotCenterNeverEscapes(t *testing.T) {
	p := testProgram(t, "mandelbrot")

	var u Uniforms
	u.DefaultValues()

	// c = (0,0); z stays at the origin forever.
	if got := p.GetPixel(u, mgl32.Vec2{0, 0}); got != white {
		t.Errorf("GetPixel(0,0) = %v, want %v", got, white)
	}
}

func TestMandelbrotEarlyEscape(t *testing.T) {
	p := testProgram(t, "mandelbrot")

	var u Uniforms
	u.DefaultValues()
	u.Zoom = 2

	// c = (2,2) escapes within the first iterations; under the integer
	// quotient shading that is black.
	want := mgl32.Vec4{0, 0, 0, 1}
	if got := p.GetPixel(u, mgl32.Vec2{1, 1}); got != want {
		t.Errorf("GetPixel(1,1) = %v, want %v", got, want)
	}
}

func TestMandelbrotZeroSubsteps(t *testing.T) {
	p := testProgram(t, "mandelbrot")

	var u Uniforms
	u.DefaultValues()
	u.Substeps = 0
	u.Zoom = 3

	// c = (3,3) escapes on the very first step; with substeps at zero
	// this must not divide by zero.
	want := mgl32.Vec4{0, 0, 0, 1}
	if got := p.GetPixel(u, mgl32.Vec2{1, 1}); got != want {
		t.Errorf("GetPixel(1,1) = %v, want %v", got, want)
	}
}

func TestEscapeShadeBanding(t *testing.T) {
	// The integer quotient truncates every escape index below the limit
	// to zero. That coarse banding is the rendering contract.
	for _, i := range []int32{0, 1, 500, 999} {
		if got := escapeShade(i, 1000); got != (mgl32.Vec4{0, 0, 0, 1}) {
			t.Errorf("escapeShade(%v, 1000) = %v, want black", i, got)
		}
	}
	if got := escapeShade(1000, 1000); got != white {
		t.Errorf("escapeShade(1000, 1000) = %v, want white", got)
	}
}

func TestJuliaEarlyEscape(t *testing.T) {
	p := testProgram(t, "julia")

	var u Uniforms
	u.DefaultValues()
	u.Zoom = 5

	// z0 = (5,5) blows past the escape radius on the first step.
	want := mgl32.Vec4{0, 0, 0, 1}
	if got := p.GetPixel(u, mgl32.Vec2{1, 1}); got != want {
		t.Errorf("GetPixel(1,1) = %v, want %v", got, want)
	}
}

func TestShadeIsBinary(t *testing.T) {
	// With the integer quotient formula every pixel is either black or
	// white at practical step limits.
	p := testProgram(t, "mandelbrot")

	var u Uniforms
	u.DefaultValues()
	u.Substeps = 50

	black := mgl32.Vec4{0, 0, 0, 1}
	for x := float32(-1); x <= 1; x += 0.25 {
		for y := float32(-1); y <= 1; y += 0.25 {
			got := p.GetPixel(u, mgl32.Vec2{x, y})
			if got != black && got != white {
				t.Errorf("GetPixel(%v,%v) = %v; want black or white", x, y, got)
			}
		}
	}
}
