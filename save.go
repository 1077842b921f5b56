package main

import (
	"fmt"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/stewi1014/glmandel/programs"
)

// snapshotAntialias is the sample distance passed to AntiAlias9x when
// exporting. The GPU view has no antialiasing; exports are worth the
// extra samples.
const snapshotAntialias = 1

// saveSnapshot renders the current view with the active program's CPU
// implementation and writes it to a timestamped PNG in the working
// directory. The heavy work happens in the background; the render loop
// never waits on it.
func (w *RenderWindow) saveSnapshot() {
	program := programs.Get(w.programIndex)
	uniforms := w.uniforms

	img, err := program.GetImage(uniforms, w.width, w.height)
	if err != nil {
		log.Println(err)
		return
	}

	name := fmt.Sprintf("%v-%v.png", program.Name, time.Now().Format("20060102-150405"))
	ctx := w.ctx

	go func() {
		buff := BufferImage(ToImage(AntiAlias9x(img, snapshotAntialias)))
		if err := buff.Buffer(ctx); err != nil {
			log.Println("snapshot abandoned:", err)
			return
		}

		file, err := os.Create(name)
		if err != nil {
			log.Println(err)
			return
		}
		defer file.Close()

		if err := png.Encode(file, buff); err != nil {
			log.Println(err)
			return
		}

		log.Println("saved", name)
	}()
}
