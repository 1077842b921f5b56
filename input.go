package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/glmandel/programs"
)

// Navigation steps. Pan distance scales with zoom so movement feels the
// same at any magnification.
const (
	zoomFactor = 1.01
	panDivisor = 150
)

// keyFunc reports whether a key is currently held down.
type keyFunc func(glfw.Key) bool

// applyInput applies one frame's worth of key state to u. Keys act every
// frame they are held. It reports whether quit was requested.
func applyInput(key keyFunc, u *programs.Uniforms) (quit bool) {
	if key(glfw.KeyI) {
		u.Zoom /= zoomFactor
	}
	if key(glfw.KeyK) {
		u.Zoom *= zoomFactor
	}
	if key(glfw.KeyW) {
		u.Offset[1] += u.Zoom / panDivisor
	}
	if key(glfw.KeyS) {
		u.Offset[1] -= u.Zoom / panDivisor
	}
	if key(glfw.KeyD) {
		u.Offset[0] += u.Zoom / panDivisor
	}
	if key(glfw.KeyA) {
		u.Offset[0] -= u.Zoom / panDivisor
	}
	if key(glfw.KeyBackspace) {
		u.Offset = mgl32.Vec2{}
		u.Zoom = 1
	}
	if key(glfw.KeyUp) {
		u.Substeps++
	}
	if key(glfw.KeyDown) && u.Substeps > 0 {
		u.Substeps--
	}
	return key(glfw.KeyEscape)
}

// keyLatch turns a held key into a single event per press.
type keyLatch bool

// press reports whether held is a fresh press, updating the latch.
// Subsequent frames with the key still down report false until it is
// released.
func (l *keyLatch) press(held bool) bool {
	fired := held && !bool(*l)
	*l = keyLatch(held)
	return fired
}

// nextProgram returns the registry index following i, wrapping back to
// the first program at the end of the registry.
func nextProgram(i int) int {
	return (i + 1) % programs.Count()
}

// pollInput reads the keyboard and updates the view state. Program
// cycling and snapshots are edge-guarded so holding the key doesn't
// repeat them every frame.
func (w *RenderWindow) pollInput() {
	held := func(k glfw.Key) bool {
		return w.GetKey(k) == glfw.Press
	}

	if applyInput(held, &w.uniforms) {
		w.SetShouldClose(true)
	}

	if w.tabKey.press(held(glfw.KeyTab)) {
		w.programIndex = nextProgram(w.programIndex)
		w.loadProgram(programs.Get(w.programIndex))
	}

	if w.snapKey.press(held(glfw.KeyF2)) {
		w.saveSnapshot()
	}
}
