package orion

import (
	"time"

	"github.com/oliverbestmann/mcraft/glimpse"
)

type FrameTimes struct {
	FrameCount      uint64
	AverageDuration time.Duration
	MaxDuration     time.Duration

	// Delta time to previous frame
	Delta time.Duration
}

func (t *FrameTimes) update(d time.Duration) {
	const window = 64

	t.Delta = d
	t.MaxDuration = max(t.MaxDuration, d)

	// plain mean until the window is filled, exponential average afterwards
	n := time.Duration(min(t.FrameCount, window-1))
	t.AverageDuration = (n*t.AverageDuration + d) / (n + 1)
}

func (t *FrameTimes) FPS() float64 {
	if t.AverageDuration <= 0 {
		return 0
	}

	return 1.0 / t.AverageDuration.Seconds()
}

// Tick records the given frame. It returns true every 60 frames.
func (t *FrameTimes) Tick(frame glimpse.Frame) bool {
	t.update(frame.Delta())
	t.FrameCount += 1

	return t.FrameCount%60 == 0
}
