package orion

import (
	"testing"
	"time"

	"github.com/oliverbestmann/mcraft/glimpse"
)

func TestFrameTimes_ConstantFrameRate(t *testing.T) {
	var times FrameTimes

	var reports int
	for i := 0; i < 120; i++ {
		if times.Tick(glimpse.Frame{DeltaTime: 0.02}) {
			reports += 1
		}
	}

	if reports != 2 {
		t.Fatalf("expected 2 reports in 120 frames, got %d", reports)
	}

	if times.AverageDuration != 20*time.Millisecond {
		t.Fatalf("expected average of 20ms, got %s", times.AverageDuration)
	}

	if fps := times.FPS(); fps < 49.9 || fps > 50.1 {
		t.Fatalf("expected 50 fps, got %f", fps)
	}
}

func TestFrameTimes_TracksMaxAndDelta(t *testing.T) {
	var times FrameTimes

	times.Tick(glimpse.Frame{DeltaTime: 0.01})
	times.Tick(glimpse.Frame{DeltaTime: 0.1})
	times.Tick(glimpse.Frame{DeltaTime: 0.01})

	if times.MaxDuration != 100*time.Millisecond {
		t.Fatalf("expected max of 100ms, got %s", times.MaxDuration)
	}

	if times.Delta != 10*time.Millisecond {
		t.Fatalf("expected last delta of 10ms, got %s", times.Delta)
	}

	if times.AverageDuration != 40*time.Millisecond {
		t.Fatalf("expected mean of 40ms, got %s", times.AverageDuration)
	}
}

func TestFrameTimes_NoFramesNoFPS(t *testing.T) {
	var times FrameTimes
	if times.FPS() != 0 {
		t.Fatalf("expected 0 fps without frames")
	}
}
