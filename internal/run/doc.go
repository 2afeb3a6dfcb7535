// Package run owns the lifecycle of a search run.
//
// A [Controller] wires one [grid.Grid] to one live [search.Stepper] and
// walks the phase machine Idle -> Running -> Found/Unreachable, with an
// optional Paused detour. The host animation loop calls [Controller.Tick]
// once per frame; each tick performs exactly one engine step, paints the
// resulting cell roles onto the grid, and records the events in the run
// trace. The controller is the only writer of grid search roles while a
// run is live.
//
// User input reaches the controller as [Command] values through
// [Controller.Apply]. Grid edits are rejected while a run is live, and
// every failure is a recoverable command outcome rather than a halt.
package run
