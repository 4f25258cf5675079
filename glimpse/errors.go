package glimpse

import "fmt"

//go:generate go tool stringer -type=Stage -linecomment

// Stage names the phase of window construction.
type Stage int

const (
	StageSubsystemInit    Stage = iota + 1 // subsystem-init
	StageWindowCreation                    // window-creation
	StageExtensionLoading                  // extension-loading
)

// InitError is returned by NewWindow if the window could not be constructed.
type InitError struct {
	Stage Stage
	Err   error
}

func (e *InitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("window initialization failed during: %s", e.Stage)
	}

	return fmt.Sprintf("window initialization failed during: %s: %s", e.Stage, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

func initFailed(stage Stage, err error) *InitError {
	return &InitError{Stage: stage, Err: err}
}
