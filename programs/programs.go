// Package programs holds the fractal programs the render window can
// display: GLSL sources for the GPU path and a matching pixel function
// for CPU rendering.
package programs

import (
	_ "embed"
	"errors"
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrNoCPUImplementation = errors.New("fractal does not have a CPU implementation")

//go:embed shaders/default.vert
var defaultVertexShader string

// PixelFunc evaluates a fractal on the CPU at a normalized quad
// position, producing RGBA exactly as the fragment shader would.
type PixelFunc func(uniforms Uniforms, pos mgl32.Vec2) mgl32.Vec4

type Program struct {
	Name           string
	VertexShader   string
	FragmentShader string
	GetPixel       PixelFunc
}

var registry []Program

func Register(p Program) {
	registry = append(registry, p)
}

func Count() int {
	return len(registry)
}

func Get(i int) Program {
	return registry[i]
}

// IndexOf returns the registry index of the named program, or -1.
// Registration order follows package init order, so lookups by name are
// the stable way to pick a program.
func IndexOf(name string) int {
	for i, p := range registry {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// GetImage returns a width×height CPU rendering of the program with the
// given view state. Bounds are centered on the origin so pixel
// coordinates divide directly into quad space.
func (p *Program) GetImage(uniforms Uniforms, width, height int) (Image, error) {
	if p.GetPixel == nil {
		return nil, ErrNoCPUImplementation
	}

	width = width / 2
	height = height / 2

	return &programImage{
		uniforms: uniforms,
		bounds: image.Rect(
			-width,
			-height,
			width,
			height,
		),
		pixelFunc: p.GetPixel,
	}, nil
}

type Image interface {
	GetPixel(mgl32.Vec2) mgl32.Vec4
	Bounds() image.Rectangle
}

type programImage struct {
	uniforms  Uniforms
	bounds    image.Rectangle
	pixelFunc PixelFunc
}

func (i *programImage) GetPixel(pos mgl32.Vec2) mgl32.Vec4 {
	return i.pixelFunc(i.uniforms, pos)
}

func (i *programImage) Bounds() image.Rectangle {
	return i.bounds
}
