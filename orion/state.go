package orion

import (
	"github.com/oliverbestmann/mcraft/glimpse"
)

var currentWindow global[*glimpse.Window]
var currentFrame global[glimpse.Frame]
var currentKeys global[*KeysState]

type global[T any] struct {
	value    T
	hasValue bool
}

func (g *global[T]) set(value T) *global[T] {
	if g.hasValue {
		panic("value already set")
	}

	g.value = value
	g.hasValue = true
	return g
}

func (g *global[T]) reset() {
	var tZero T
	g.value = tZero
	g.hasValue = false
}

func (g *global[T]) Get() T {
	if !g.hasValue {
		panic("must only be called while RunGame is running")
	}

	return g.value
}

func resetGlobals() {
	currentWindow.reset()
	currentFrame.reset()
	currentKeys.reset()
}

// CurrentWindow exposes the window of the running game.
func CurrentWindow() *glimpse.Window {
	return currentWindow.Get()
}

// CurrentFrame returns the snapshot of the frame currently being updated.
func CurrentFrame() glimpse.Frame {
	return currentFrame.Get()
}
