package glimpse

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/mcraft/glm"
)

// Window is a native window with an OpenGL 3.3 core context. The window is
// not resizable, swaps with vertical sync and has depth testing enabled.
//
// Event handling and presentation are both done by NewFrame, which is
// expected to be called once per iteration of the callers frame loop.
// All methods must be called from the thread that constructed the window.
type Window struct {
	sys     *Subsystem
	surface Surface

	frameIndex       uint64
	previousTime     float64
	previousMousePos glm.Vec2f
}

// NewWindow creates a window and makes its context current on the calling
// thread. If construction fails, an *InitError naming the failed Stage is
// returned and no native resources are retained.
func NewWindow(sys *Subsystem, width, height int, title string) (*Window, error) {
	if width <= 0 || height <= 0 {
		err := fmt.Errorf("invalid window size %dx%d", width, height)
		return nil, initFailed(StageWindowCreation, err)
	}

	sys.mu.Lock()
	defer sys.mu.Unlock()

	if err := sys.initLocked(); err != nil {
		return nil, initFailed(StageSubsystemInit, err)
	}

	surface, err := createSurface(sys.platform, width, height, title)
	if err != nil {
		sys.abortLocked()
		return nil, err
	}

	sys.live += 1

	w := &Window{
		sys:     sys,
		surface: surface,
	}

	w.previousTime = sys.platform.Time()
	w.previousMousePos = w.MousePosition()

	slog.Info("Window created",
		slog.Int("width", width),
		slog.Int("height", height),
		slog.String("title", title),
	)

	return w, nil
}

func createSurface(platform Platform, width, height int, title string) (Surface, error) {
	surface, err := platform.CreateSurface(width, height, title, contextHints)
	if err == nil && surface == nil {
		err = errors.New("platform returned no window")
	}

	if err != nil {
		return nil, initFailed(StageWindowCreation, err)
	}

	surface.MakeContextCurrent()
	platform.SwapInterval(1)

	if err := platform.LoadExtensions(); err != nil {
		surface.Destroy()
		return nil, initFailed(StageExtensionLoading, err)
	}

	platform.EnableDepthTest()

	return surface, nil
}

// Destroy releases the native window. The windowing subsystem is terminated
// if this was the last live window. Calling Destroy more than once is a no-op.
func (w *Window) Destroy() {
	if w.surface == nil {
		return
	}

	surface := w.surface
	w.surface = nil

	w.sys.release(surface)
}

// IsOpen reports whether the window is still in use. It returns false
// once a close was requested or the window was destroyed.
func (w *Window) IsOpen() bool {
	return w.surface != nil && !w.surface.ShouldClose()
}

// Close requests the window to close. IsOpen returns false afterwards.
func (w *Window) Close() {
	if w.surface != nil {
		w.surface.SetShouldClose(true)
	}
}

// IsKeyDown reports whether the given key is currently pressed. This is
// the physical state at the last event poll. A key pressed and released
// between two polls is not observed.
func (w *Window) IsKeyDown(key Key) bool {
	return w.surface != nil && w.surface.KeyDown(key)
}

// MousePosition returns the current cursor position in screen coordinates.
func (w *Window) MousePosition() glm.Vec2f {
	if w.surface == nil {
		return w.previousMousePos
	}

	return glm.Vec2Of[float32](w.surface.CursorPos())
}

// NewFrame polls for events and presents the current frame, setting up a
// new one. It must be called after all drawing for the previous frame was
// issued, and before drawing of the next frame begins.
func (w *Window) NewFrame() Frame {
	if w.surface == nil {
		panic("glimpse: NewFrame called on a destroyed window")
	}

	platform := w.sys.platform

	platform.PollEvents()
	w.surface.SwapBuffers()
	platform.Clear()

	w.frameIndex += 1

	frame := Frame{
		Index:         w.frameIndex,
		Time:          platform.Time(),
		MousePosition: w.MousePosition(),
	}

	frame.DeltaTime = max(0, frame.Time-w.previousTime)
	frame.MouseDelta = frame.MousePosition.Sub(w.previousMousePos)

	w.previousTime = frame.Time
	w.previousMousePos = frame.MousePosition

	return frame
}
