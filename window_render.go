package main

import (
	"context"
	"fmt"
	"log"
	"reflect"
	"runtime"
	"strings"
	"time"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/glmandel/programs"
)

func NewRenderWindow(ctx context.Context, width, height int) (*RenderWindow, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	window, err := glfw.CreateWindow(width, height, windowTitle, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}

	w := &RenderWindow{
		Window: window,
		ctx:    ctx,
		width:  width,
		height: height,
	}

	w.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl.Init failed: %w", err)
	}
	log.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	if debug {
		gl.Enable(gl.DEBUG_OUTPUT)
		gl.DebugMessageCallback(glDebugMessage, nil)
	}

	// Two triangles covering the viewport in NDC; the fragment shader
	// does everything else.
	vertices := []float32{
		-1, -1,
		1, -1,
		-1, 1,
		-1, 1,
		1, -1,
		1, 1,
	}

	gl.GenVertexArrays(1, &w.vao)
	gl.BindVertexArray(w.vao)

	gl.GenBuffers(1, &w.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	w.uniforms.DefaultValues()

	w.programIndex = programs.IndexOf(startProgram)
	if w.programIndex < 0 {
		w.programIndex = 0
	}
	w.loadProgram(programs.Get(w.programIndex))

	return w, nil
}

type RenderWindow struct {
	*glfw.Window

	ctx           context.Context
	width, height int

	vao              uint32
	vbo              uint32
	program          uint32
	vertexAttrib     uint32
	uniformLocations map[string]int32

	programIndex int
	uniforms     programs.Uniforms

	tabKey  keyLatch
	snapKey keyLatch
}

// Run drives the render loop. It returns when the window close flag is
// set, either by the quit key or by the window system.
func (w *RenderWindow) Run() {
	start := time.Now()
	for !w.ShouldClose() {
		glfw.PollEvents()
		w.pollInput()

		w.uniforms.Time = float32(time.Since(start).Seconds())
		w.render()
		w.SwapBuffers()
	}
}

func (w *RenderWindow) render() {
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(w.program)
	w.loadUniforms()
	gl.BindVertexArray(w.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// loadUniforms uploads every tagged field of the uniform state to the
// active program. Fields map to GLSL uniforms via their "uniform" tag.
func (w *RenderWindow) loadUniforms() {
	v := reflect.ValueOf(&w.uniforms).Elem()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)

		ptr := f.Addr().UnsafePointer()
		loc := w.uniformLocations[v.Type().Field(i).Tag.Get("uniform")]

		switch f.Type() {
		case reflect.TypeOf(float32(0)):
			gl.Uniform1fv(loc, 1, (*float32)(ptr))
		case reflect.TypeOf(int32(0)):
			gl.Uniform1iv(loc, 1, (*int32)(ptr))
		case reflect.TypeOf(mgl32.Vec2{}):
			gl.Uniform2fv(loc, 1, (*float32)(ptr))
		case reflect.TypeOf(mgl32.Vec3{}):
			gl.Uniform3fv(loc, 1, (*float32)(ptr))
		case reflect.TypeOf(mgl32.Vec4{}):
			gl.Uniform4fv(loc, 1, (*float32)(ptr))
		default:
			log.Printf("unsupported uniform type %v", f.Type())
		}
	}
}

// loadProgram compiles and links p and makes it the active program.
// Compile and link failures are reported but not fatal; the window keeps
// rendering with whatever program state resulted.
func (w *RenderWindow) loadProgram(p programs.Program) {
	vertexShader, err := compileShader(p.VertexShader+"\x00", gl.VERTEX_SHADER)
	if err != nil {
		log.Println(err)
	}

	fragmentShader, err := compileShader(p.FragmentShader+"\x00", gl.FRAGMENT_SHADER)
	if err != nil {
		log.Println(err)
	}

	if w.program != 0 {
		gl.DeleteProgram(w.program)
	}

	w.program = gl.CreateProgram()
	gl.AttachShader(w.program, vertexShader)
	gl.AttachShader(w.program, fragmentShader)
	gl.LinkProgram(w.program)
	gl.UseProgram(w.program)

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(w.program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetProgramiv(w.program, gl.INFO_LOG_LENGTH, &l)

		infoLog := strings.Repeat("\x00", int(l+1))
		gl.GetProgramInfoLog(w.program, l, nil, gl.Str(infoLog))
		log.Printf("failed to link %v: %v", p.Name, infoLog)
	}

	w.uniformLocations = make(map[string]int32)
	t := reflect.TypeOf(w.uniforms)
	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get("uniform")
		w.uniformLocations[name] = gl.GetUniformLocation(w.program, gl.Str(name+"\x00"))
	}

	gl.BindFragDataLocation(w.program, 0, gl.Str("FragColor\x00"))

	w.vertexAttrib = uint32(gl.GetAttribLocation(w.program, gl.Str("in_position\x00")))
	gl.EnableVertexAttribArray(w.vertexAttrib)
	gl.VertexAttribPointerWithOffset(w.vertexAttrib, 2, gl.FLOAT, false, 2*4, 0)
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	defer runtime.KeepAlive(source)
	cstring, free := gl.Strs(source)
	defer free()

	shader := gl.CreateShader(shaderType)
	gl.ShaderSource(shader, 1, cstring, nil)
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &l)

		infoLog := strings.Repeat("\x00", int(l+1))
		gl.GetShaderInfoLog(shader, l, nil, gl.Str(infoLog))
		return 0, fmt.Errorf("shader\n\"\n%v\n\"\nfailed to compile: %v", source, infoLog)
	}

	return shader, nil
}

func glDebugMessage(
	source,
	gltype,
	id,
	severity uint32,
	length int32,
	message string,
	user unsafe.Pointer,
) {
	severityStr := "unknown"
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		severityStr = "high"
	case gl.DEBUG_SEVERITY_MEDIUM:
		severityStr = "medium"
	case gl.DEBUG_SEVERITY_LOW:
		severityStr = "low"
	case gl.DEBUG_SEVERITY_NOTIFICATION:
		severityStr = "notification"
	}

	log.Printf("gl(%v): %v\n", severityStr, message)
}
