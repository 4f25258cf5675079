package orion

import (
	"log/slog"

	"github.com/oliverbestmann/mcraft/glimpse"
	"github.com/oliverbestmann/mcraft/glm"
)

type KeyCode = glimpse.Key

// KeysState derives key transitions from the key states polled once per
// frame. Only watched keys are tracked. A key that is pressed and
// released between two frames is never seen.
type KeysState struct {
	Watched []KeyCode

	// the keys that are currently marked as "pressed"
	Pressed map[KeyCode]bool

	// keys that were pressed since the previous frame
	JustPressed map[KeyCode]bool

	// keys that were released since the previous frame
	JustReleased map[KeyCode]bool
}

func NewKeysState(watched ...KeyCode) *KeysState {
	return &KeysState{
		Watched:      watched,
		Pressed:      map[KeyCode]bool{},
		JustPressed:  map[KeyCode]bool{},
		JustReleased: map[KeyCode]bool{},
	}
}

func (k *KeysState) press(key KeyCode) {
	slog.Debug("Key just pressed", slog.String("key", key.String()))

	k.Pressed[key] = true
	k.JustPressed[key] = true
}

func (k *KeysState) release(key KeyCode) {
	k.Pressed[key] = false
	k.JustReleased[key] = true
}

func (k *KeysState) nextTick() {
	clear(k.JustPressed)
	clear(k.JustReleased)
}

// Update polls the watched keys of the window and records transitions
// relative to the previous call.
func (k *KeysState) Update(win *glimpse.Window) {
	k.nextTick()

	for _, key := range k.Watched {
		down := win.IsKeyDown(key)

		switch {
		case down && !k.Pressed[key]:
			k.press(key)

		case !down && k.Pressed[key]:
			k.release(key)
		}
	}
}

func MousePosition() glm.Vec2f {
	return currentFrame.Get().MousePosition
}

func MouseDelta() glm.Vec2f {
	return currentFrame.Get().MouseDelta
}

// IsKeyPressed returns the current physical state of any key.
func IsKeyPressed(key KeyCode) bool {
	return currentWindow.Get().IsKeyDown(key)
}

// IsKeyJustPressed reports whether a watched key went down since the previous frame.
func IsKeyJustPressed(key KeyCode) bool {
	return currentKeys.Get().JustPressed[key]
}

// IsKeyJustReleased reports whether a watched key went up since the previous frame.
func IsKeyJustReleased(key KeyCode) bool {
	return currentKeys.Get().JustReleased[key]
}
