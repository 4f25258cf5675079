// Package glimpsetest provides an in-memory glimpse.Platform for tests.
package glimpsetest

import (
	"errors"

	"github.com/oliverbestmann/mcraft/glimpse"
)

var ErrInjected = errors.New("injected failure")

// Platform records every call made by a glimpse.Window. Failures can be
// injected per construction stage. Time and cursor positions are fully
// controlled by the test.
type Platform struct {
	// errors returned from the respective calls, if set
	InitErr       error
	CreateErr     error
	ExtensionsErr error

	// current value of the clock returned by Time
	Now float64

	// called during PollEvents, can be used to simulate input
	OnPoll func()

	Initialized bool
	InitCalls   int
	TermCalls   int
	ClearCalls  int
	PollCalls   int

	DepthTest bool
	Interval  int

	Surfaces []*Surface
	Current  *Surface

	// hints passed to the last call to CreateSurface
	Hints glimpse.ContextHints
}

var _ glimpse.Platform = (*Platform)(nil)

func (p *Platform) Init() error {
	p.InitCalls += 1
	if p.InitErr != nil {
		return p.InitErr
	}

	p.Initialized = true
	return nil
}

func (p *Platform) Terminate() {
	p.TermCalls += 1
	p.Initialized = false

	for _, surface := range p.Surfaces {
		surface.Destroyed = true
	}
}

func (p *Platform) CreateSurface(width, height int, title string, hints glimpse.ContextHints) (glimpse.Surface, error) {
	if !p.Initialized {
		return nil, errors.New("platform not initialized")
	}

	p.Hints = hints

	if p.CreateErr != nil {
		return nil, p.CreateErr
	}

	surface := &Surface{
		platform: p,
		Width:    width,
		Height:   height,
		Title:    title,
		Keys:     map[glimpse.Key]bool{},
	}

	p.Surfaces = append(p.Surfaces, surface)

	return surface, nil
}

func (p *Platform) SwapInterval(interval int) {
	p.Interval = interval
}

func (p *Platform) LoadExtensions() error {
	if p.Current == nil {
		return errors.New("no current context")
	}

	return p.ExtensionsErr
}

func (p *Platform) EnableDepthTest() {
	p.DepthTest = true
}

func (p *Platform) Clear() {
	p.ClearCalls += 1
}

func (p *Platform) PollEvents() {
	p.PollCalls += 1

	if p.OnPoll != nil {
		p.OnPoll()
	}
}

func (p *Platform) Time() float64 {
	return p.Now
}

// Live returns the surfaces that were not yet destroyed.
func (p *Platform) Live() []*Surface {
	var live []*Surface
	for _, surface := range p.Surfaces {
		if !surface.Destroyed {
			live = append(live, surface)
		}
	}

	return live
}

type Surface struct {
	platform *Platform

	Width, Height int
	Title         string

	CloseRequested bool
	Destroyed      bool
	Swaps          int

	CursorX, CursorY float64
	Keys             map[glimpse.Key]bool
}

var _ glimpse.Surface = (*Surface)(nil)

func (s *Surface) MakeContextCurrent() {
	s.platform.Current = s
}

func (s *Surface) ShouldClose() bool {
	return s.CloseRequested
}

func (s *Surface) SetShouldClose(value bool) {
	s.CloseRequested = value
}

func (s *Surface) KeyDown(key glimpse.Key) bool {
	return s.Keys[key]
}

func (s *Surface) CursorPos() (x, y float64) {
	return s.CursorX, s.CursorY
}

func (s *Surface) SwapBuffers() {
	s.Swaps += 1
}

func (s *Surface) Destroy() {
	s.Destroyed = true

	if s.platform.Current == s {
		s.platform.Current = nil
	}
}
