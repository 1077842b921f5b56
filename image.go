package main

import (
	"context"
	"image"
	"image/color"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/glmandel/programs"
)

// AntiAlias9x samples 9 positions for each sampled position, returning
// the average colour.
//
// distance is the number of pixels apart the sampled locations are.
func AntiAlias9x(img programs.Image, distance float32) programs.Image {
	scale := float32(img.Bounds().Dx())
	if img.Bounds().Dy() > img.Bounds().Dx() {
		scale = float32(img.Bounds().Dy())
	}

	return &antialias9xImage{
		Image:  img,
		offset: distance / scale,
	}
}

type antialias9xImage struct {
	programs.Image
	offset float32
}

func (i *antialias9xImage) GetPixel(pos mgl32.Vec2) mgl32.Vec4 {
	var avg mgl32.Vec4
	for _, dx := range [3]float32{-i.offset, 0, i.offset} {
		for _, dy := range [3]float32{-i.offset, 0, i.offset} {
			avg = avg.Add(i.Image.GetPixel(mgl32.Vec2{pos[0] + dx, pos[1] + dy}))
		}
	}
	return avg.Mul(1.0 / 9)
}

// ToImage adapts a fractal image to the standard library's image.Image,
// mapping pixel coordinates back into normalized quad space.
func ToImage(img programs.Image) image.Image {
	scale := img.Bounds().Dx()
	if img.Bounds().Dy() > img.Bounds().Dx() {
		scale = img.Bounds().Dy()
	}

	return &fractalImage{
		Image: img,
		scale: float32(scale) / 2,
	}
}

type fractalImage struct {
	programs.Image
	scale float32
}

func (i *fractalImage) At(x, y int) color.Color {
	// image y grows downwards, quad y upwards.
	c := i.GetPixel(mgl32.Vec2{
		float32(x) / i.scale,
		float32(-y) / i.scale,
	})

	return color.NRGBA{
		R: uint8(c[0] * 255),
		G: uint8(c[1] * 255),
		B: uint8(c[2] * 255),
		A: 0xff,
	}
}

func (i *fractalImage) ColorModel() color.Model {
	return color.NRGBAModel
}

func (i *fractalImage) Opaque() bool {
	return true
}

// BufferImage wraps img so its pixels can be precomputed into memory,
// keeping encoders from re-evaluating every sample.
func BufferImage(img image.Image) *BufferedImage {
	return &BufferedImage{
		Image:  img,
		height: img.Bounds().Dy(),
	}
}

type BufferedImage struct {
	image.Image
	height int
	buff   []color.Color
}

func (b *BufferedImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Image.Bounds().Dx(), b.Image.Bounds().Dy())
}

func (b *BufferedImage) At(x, y int) color.Color {
	return b.buff[x*b.height+y]
}

// Buffer evaluates the wrapped image into the pixel buffer, working on
// column chunks concurrently. It must complete before At is used.
func (b *BufferedImage) Buffer(ctx context.Context) error {
	b.buff = make([]color.Color, b.Image.Bounds().Dx()*b.Image.Bounds().Dy())

	min, max := b.Image.Bounds().Min, b.Image.Bounds().Max
	const chunkSize = 50
	var wg sync.WaitGroup

	for chunkMin := min.X; chunkMin < max.X; chunkMin += chunkSize {
		chunkMax := chunkMin + chunkSize
		if chunkMax > max.X {
			chunkMax = max.X
		}

		wg.Add(1)
		go func(chunkMin, chunkMax int) {
			defer wg.Done()
			i := (chunkMin - min.X) * b.Image.Bounds().Dy()
			for x := chunkMin; x < chunkMax; x++ {
				if ctx.Err() != nil {
					return
				}

				for y := min.Y; y < max.Y; y++ {
					b.buff[i] = b.Image.At(x, y)
					i++
				}
			}
		}(chunkMin, chunkMax)
	}

	wg.Wait()

	return ctx.Err()
}

func (b *BufferedImage) Opaque() bool {
	return true
}
