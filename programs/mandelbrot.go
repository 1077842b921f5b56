package programs

import (
	_ "embed"

	"github.com/go-gl/mathgl/mgl32"
)

//go:embed shaders/mandelbrot.frag
var mandelbrotFragment string

func init() {
	Register(Program{
		Name:           "mandelbrot",
		VertexShader:   defaultVertexShader,
		FragmentShader: mandelbrotFragment,
		GetPixel: func(uniforms Uniforms, pos mgl32.Vec2) mgl32.Vec4 {
			c := pos.Mul(uniforms.Zoom).Add(uniforms.Offset)
			var z mgl32.Vec2

			for i := int32(0); i <= uniforms.Substeps; i++ {
				z = mgl32.Vec2{z[0]*z[0] - z[1]*z[1], 2 * z[0] * z[1]}.Add(c)
				if z.Len() > 4 {
					return escapeShade(i, uniforms.Substeps)
				}
			}
			return mgl32.Vec4{1, 1, 1, 1}
		},
	})
}

// escapeShade mirrors the shaders' float(i/substeps): the quotient is
// taken in integer arithmetic first, so escaped pixels stay black until
// i reaches substeps. Kept as-is to match the GPU output exactly.
func escapeShade(i, substeps int32) mgl32.Vec4 {
	var v float32
	if substeps > 0 {
		v = float32(i / substeps)
	}
	return mgl32.Vec4{v, v, v, 1}
}
