package orion

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/mcraft/glimpse"
	"github.com/pkg/profile"
)

type RunGameOptions struct {
	// game to run
	Game Game

	// windowing subsystem the window is created on
	Subsystem *glimpse.Subsystem

	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	// keys for IsKeyJustPressed and IsKeyJustReleased
	WatchKeys []KeyCode

	// Profile enables profiling of the game loop. Supported
	// values are "cpu", "mem" and "trace".
	Profile     string
	ProfilePath string
}

func (opts RunGameOptions) withDefaults() RunGameOptions {
	if opts.WindowWidth == 0 {
		opts.WindowWidth = 1000
	}

	if opts.WindowHeight == 0 {
		opts.WindowHeight = 600
	}

	if opts.WindowTitle == "" {
		opts.WindowTitle = "mcraft"
	}

	if opts.ProfilePath == "" {
		opts.ProfilePath = "."
	}

	return opts
}

// RunGame creates a window and runs the game until the window is closed or
// the game returns an error. The window is destroyed before RunGame returns.
func RunGame(opts RunGameOptions) error {
	if opts.Game == nil {
		return errors.New("Game must not be nil")
	}

	if opts.Subsystem == nil {
		return errors.New("Subsystem must not be nil")
	}

	opts = opts.withDefaults()

	prof, err := startProfile(opts.Profile, opts.ProfilePath)
	if err != nil {
		return err
	}

	defer prof.Stop()

	// create a new window
	win, err := glimpse.NewWindow(
		opts.Subsystem,
		opts.WindowWidth,
		opts.WindowHeight,
		opts.WindowTitle,
	)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Destroy()

	loopState := &LoopState{
		Window: win,
		Game:   opts.Game,
		Keys:   NewKeysState(opts.WatchKeys...),
	}

	currentWindow.set(win)
	currentKeys.set(loopState.Keys)

	defer resetGlobals()

	for win.IsOpen() {
		if err := loopOnce(loopState); err != nil {
			return err
		}
	}

	slog.Info("Window closed",
		slog.Uint64("frames", loopState.Times.FrameCount),
		slog.Float64("fps", loopState.Times.FPS()),
	)

	return nil
}

type stopper interface{ Stop() }

type noProfile struct{}

func (noProfile) Stop() {}

func startProfile(mode, path string) (stopper, error) {
	var kind func(*profile.Profile)

	switch mode {
	case "":
		return noProfile{}, nil
	case "cpu":
		kind = profile.CPUProfile
	case "mem":
		kind = profile.MemProfile
	case "trace":
		kind = profile.TraceProfile
	default:
		return nil, fmt.Errorf("unknown profile %q", mode)
	}

	slog.Info("Start profiling", slog.String("profile", mode), slog.String("path", path))

	return profile.Start(kind, profile.ProfilePath(path), profile.NoShutdownHook, profile.Quiet), nil
}
