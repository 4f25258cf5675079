package orion

import "github.com/oliverbestmann/mcraft/glimpse"

type Game interface {
	// Initialize is called once, before the first call to Update.
	Initialize(win *glimpse.Window) error

	// Update is called once per frame with the timing and input
	// state of the new frame.
	Update(frame glimpse.Frame) error

	// Draw issues the drawing commands of the current frame. The result is
	// presented by the next call to glimpse.Window.NewFrame.
	Draw()
}

// DefaultGame can be embedded to only implement the methods of Game
// you are interested in.
type DefaultGame struct{}

func (DefaultGame) Initialize(*glimpse.Window) error {
	return nil
}

func (DefaultGame) Update(glimpse.Frame) error {
	return nil
}

func (DefaultGame) Draw() {}
