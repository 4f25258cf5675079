// Package glfwgl implements glimpse.Platform using GLFW 3.3 and an
// OpenGL 3.3 core profile context.
package glfwgl

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/mcraft/glimpse"
)

func init() {
	// GLFW and the GL context must stay on the main thread
	runtime.LockOSThread()
}

// Subsystem is the process wide GLFW subsystem.
var Subsystem = glimpse.NewSubsystem(Platform{})

// NewWindow creates a window on the process wide GLFW subsystem.
func NewWindow(width, height int, title string) (*glimpse.Window, error) {
	return glimpse.NewWindow(Subsystem, width, height, title)
}

type Platform struct{}

var _ glimpse.Platform = Platform{}

func (Platform) Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}

	return nil
}

func (Platform) Terminate() {
	keyNames.Purge()
	glfw.Terminate()
}

func (Platform) CreateSurface(width, height int, title string, hints glimpse.ContextHints) (glimpse.Surface, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, hints.VersionMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, hints.VersionMinor)
	glfw.WindowHint(glfw.Resizable, glfwBool(hints.Resizable))
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfwBool(hints.ForwardCompatible))

	if hints.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	return &surface{win: window}, nil
}

func (Platform) SwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

func (Platform) LoadExtensions() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("initialize gl: %w", err)
	}

	return nil
}

func (Platform) EnableDepthTest() {
	gl.Enable(gl.DEPTH_TEST)
}

func (Platform) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (Platform) PollEvents() {
	glfw.PollEvents()
}

func (Platform) Time() float64 {
	return glfw.GetTime()
}

type surface struct {
	win *glfw.Window
}

func (s *surface) MakeContextCurrent() {
	s.win.MakeContextCurrent()
}

func (s *surface) ShouldClose() bool {
	return s.win.ShouldClose()
}

func (s *surface) SetShouldClose(value bool) {
	s.win.SetShouldClose(value)
}

func (s *surface) KeyDown(key glimpse.Key) bool {
	return s.win.GetKey(glfw.Key(key)) == glfw.Press
}

func (s *surface) CursorPos() (x, y float64) {
	return s.win.GetCursorPos()
}

func (s *surface) SwapBuffers() {
	s.win.SwapBuffers()
}

func (s *surface) Destroy() {
	s.win.Destroy()
}

func glfwBool(value bool) int {
	if value {
		return glfw.True
	}

	return glfw.False
}
