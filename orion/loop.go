package orion

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/mcraft/glimpse"
)

type LoopState struct {
	Window      *glimpse.Window
	Game        Game
	Keys        *KeysState
	Times       FrameTimes
	Initialized bool
}

func loopOnce(loopState *LoopState) error {
	// present the previous frame and start the next one
	frame := loopState.Window.NewFrame()

	currentFrame.reset()
	currentFrame.set(frame)

	loopState.Keys.Update(loopState.Window)

	if loopState.Times.Tick(frame) {
		slog.Debug("Frame statistics",
			slog.Uint64("frames", loopState.Times.FrameCount),
			slog.Float64("fps", loopState.Times.FPS()),
			slog.Duration("max", loopState.Times.MaxDuration),
		)
	}

	// run game.Initialize and game.Update
	if err := performGameUpdate(loopState, frame); err != nil {
		return err
	}

	loopState.Game.Draw()

	return nil
}

func performGameUpdate(loopState *LoopState, frame glimpse.Frame) error {
	if !loopState.Initialized {
		loopState.Initialized = true

		if err := loopState.Game.Initialize(loopState.Window); err != nil {
			return fmt.Errorf("initialize game: %w", err)
		}
	}

	if err := loopState.Game.Update(frame); err != nil {
		return fmt.Errorf("update game: %w", err)
	}

	return nil
}
