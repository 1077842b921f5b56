package programs

import (
	_ "embed"

	"github.com/go-gl/mathgl/mgl32"
)

//go:embed shaders/julia.frag
var juliaFragment string

// juliaC is the fixed julia-set constant. Must match shaders/julia.frag.
var juliaC = mgl32.Vec2{-0.835, 0.2321}

func init() {
	Register(Program{
		Name:           "julia",
		VertexShader:   defaultVertexShader,
		FragmentShader: juliaFragment,
		GetPixel: func(uniforms Uniforms, pos mgl32.Vec2) mgl32.Vec4 {
			z := pos.Mul(uniforms.Zoom).Add(uniforms.Offset)

			for i := int32(0); i <= uniforms.Substeps; i++ {
				z = mgl32.Vec2{z[0]*z[0] - z[1]*z[1], 2 * z[0] * z[1]}.Add(juliaC)
				if z.Len() > 4 {
					return escapeShade(i, uniforms.Substeps)
				}
			}
			return mgl32.Vec4{1, 1, 1, 1}
		},
	})
}
