package run

import "errors"

// Domain errors for controller transitions.
var (
	// ErrNotIdle indicates a grid edit attempted while a run is live.
	ErrNotIdle = errors.New("run: grid edits require an idle controller")

	// ErrAlreadyRunning indicates an algorithm switch during a live run.
	ErrAlreadyRunning = errors.New("run: algorithm locked while running")

	// ErrNotRunning indicates a tick or pause with no live run.
	ErrNotRunning = errors.New("run: no run in progress")

	// ErrUnknownCommand indicates a command kind the interpreter cannot map.
	ErrUnknownCommand = errors.New("run: unknown command")
)
