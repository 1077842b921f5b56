package programs

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Uniforms is the per-frame view state. Field tags name the GLSL
// uniform each field uploads to; the names are a compatibility contract
// with the fragment shaders.
type Uniforms struct {
	Time     float32    `uniform:"time"`
	Zoom     float32    `uniform:"zoom"`
	Substeps int32      `uniform:"substeps"`
	Offset   mgl32.Vec2 `uniform:"offset"`
}

func (u *Uniforms) DefaultValues() {
	u.Time = 0
	u.Zoom = 1
	u.Substeps = 1000
	u.Offset = mgl32.Vec2{}
}
