package glfwgl

import (
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oliverbestmann/mcraft/glimpse"
)

// GLFW key codes for the keys used by the examples. Any other
// glfw.Key can be converted to a glimpse.Key directly.
const (
	KeyEscape    = glimpse.Key(glfw.KeyEscape)
	KeySpace     = glimpse.Key(glfw.KeySpace)
	KeyLeftShift = glimpse.Key(glfw.KeyLeftShift)
	KeyW         = glimpse.Key(glfw.KeyW)
	KeyA         = glimpse.Key(glfw.KeyA)
	KeyS         = glimpse.Key(glfw.KeyS)
	KeyD         = glimpse.Key(glfw.KeyD)
	KeyF3        = glimpse.Key(glfw.KeyF3)
)

var keyNames, _ = lru.New[glimpse.Key, string](64)

// KeyName returns the layout specific name of a printable key, or the
// numeric key code for all other keys. Must be called from the main thread
// while a window is live.
func KeyName(key glimpse.Key) string {
	if name, ok := keyNames.Get(key); ok {
		return name
	}

	name := glfw.GetKeyName(glfw.Key(key), 0)
	if name == "" {
		slog.Debug("Key has no printable name", slog.Int("key", int(key)))
		name = key.String()
	}

	keyNames.Add(key, name)

	return name
}
