package main

import (
	"context"
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	windowWidth  = 600
	windowHeight = 600
	windowTitle  = "GLMandel"

	startProgram = "mandelbrot"

	debug = true
)

func init() {
	// GLFW event handling and all GL calls must happen on the same
	// OS thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		log.Fatalln(err)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw.Init failed: %w", err)
	}
	defer glfw.Terminate()

	window, err := NewRenderWindow(ctx, windowWidth, windowHeight)
	if err != nil {
		return err
	}

	window.Run()
	return nil
}
