package glimpse

import (
	"log/slog"
	"sync"
)

// Subsystem owns the process wide initialization of a Platform. The
// platform is initialized when the first Window is constructed and
// terminated once the last live Window is destroyed.
type Subsystem struct {
	platform Platform

	mu   sync.Mutex
	live int
}

func NewSubsystem(platform Platform) *Subsystem {
	return &Subsystem{platform: platform}
}

// Live returns the number of windows that were constructed and not yet destroyed.
func (s *Subsystem) Live() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.live
}

// initLocked initializes the platform if no window is currently live.
func (s *Subsystem) initLocked() error {
	if s.live > 0 {
		return nil
	}

	slog.Debug("Initialize windowing subsystem")
	return s.platform.Init()
}

// abortLocked undoes initLocked after a failed construction.
func (s *Subsystem) abortLocked() {
	if s.live > 0 {
		return
	}

	slog.Debug("Terminate windowing subsystem after failed window construction")
	s.platform.Terminate()
}

func (s *Subsystem) release(surface Surface) {
	s.mu.Lock()
	defer s.mu.Unlock()

	surface.Destroy()

	s.live -= 1
	if s.live < 1 {
		slog.Debug("Terminate windowing subsystem")
		s.live = 0
		s.platform.Terminate()
	}
}
