package glimpse

import (
	"time"

	"github.com/oliverbestmann/mcraft/glm"
)

// Frame describes the timing and input state of a window at the start
// of a frame.
type Frame struct {
	// Number of the frame, starting at 1 for the first call to NewFrame.
	Index uint64

	// Seconds from subsystem initialization to the start of the frame.
	Time float64

	// Seconds from the start of the previous frame to the start of this
	// frame. For the first frame this is measured from window construction.
	DeltaTime float64

	// Mouse position within the window, in screen coordinates.
	MousePosition glm.Vec2f

	// Offset to the mouse position of the previous frame, in screen coordinates.
	MouseDelta glm.Vec2f
}

// Delta returns DeltaTime as a time.Duration.
func (f Frame) Delta() time.Duration {
	return time.Duration(f.DeltaTime * float64(time.Second))
}
