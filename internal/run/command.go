package run

import (
	"fmt"

	"github.com/NumanAsghar901/AI-Path-Finder/internal/grid"
)

// CommandKind enumerates the discrete user actions the core accepts.
type CommandKind uint8

const (
	CmdPlaceWall CommandKind = iota
	CmdRemoveWall
	CmdToggleWall
	CmdSetStart
	CmdSetTarget
	CmdSelectAlgorithm
	CmdStart
	CmdPause
	CmdReset
	CmdClear
)

// Command is one discrete user action. The Cell and Algorithm fields are
// meaningful only for the kinds that use them.
type Command struct {
	Kind      CommandKind
	Cell      grid.Coord
	Algorithm string
}

func PlaceWall(c grid.Coord) Command  { return Command{Kind: CmdPlaceWall, Cell: c} }
func RemoveWall(c grid.Coord) Command { return Command{Kind: CmdRemoveWall, Cell: c} }
func ToggleWall(c grid.Coord) Command { return Command{Kind: CmdToggleWall, Cell: c} }
func SetStart(c grid.Coord) Command   { return Command{Kind: CmdSetStart, Cell: c} }
func SetTarget(c grid.Coord) Command  { return Command{Kind: CmdSetTarget, Cell: c} }
func StartRun() Command               { return Command{Kind: CmdStart} }
func Pause() Command                  { return Command{Kind: CmdPause} }
func Reset() Command                  { return Command{Kind: CmdReset} }
func Clear() Command                  { return Command{Kind: CmdClear} }

func SelectAlgorithm(name string) Command {
	return Command{Kind: CmdSelectAlgorithm, Algorithm: name}
}

// Apply interprets one command against the controller. Every error is a
// rejected command, never a broken controller: callers may ignore the
// result or surface it as UI feedback, and the tick loop keeps going.
func (c *Controller) Apply(cmd Command) error {
	switch cmd.Kind {
	case CmdPlaceWall, CmdRemoveWall, CmdToggleWall, CmdSetStart, CmdSetTarget:
		if c.phase == PhaseRunning || c.phase == PhasePaused {
			return ErrNotIdle
		}
		return c.applyEdit(cmd)
	case CmdSelectAlgorithm:
		return c.SelectAlgorithm(cmd.Algorithm)
	case CmdStart:
		return c.Start()
	case CmdPause:
		// Pause is a toggle, like the original's pause button.
		if c.phase == PhasePaused {
			return c.Resume()
		}
		return c.Pause()
	case CmdReset:
		c.Reset()
		return nil
	case CmdClear:
		c.Clear()
		return nil
	default:
		return fmt.Errorf("%w: kind %d", ErrUnknownCommand, cmd.Kind)
	}
}

func (c *Controller) applyEdit(cmd Command) error {
	switch cmd.Kind {
	case CmdPlaceWall:
		return c.g.SetRole(cmd.Cell, grid.RoleWall)
	case CmdRemoveWall:
		if !c.g.InBounds(cmd.Cell) {
			return fmt.Errorf("%w: %v", grid.ErrInvalidCoordinate, cmd.Cell)
		}
		if c.g.At(cmd.Cell) != grid.RoleWall {
			return nil
		}
		return c.g.SetRole(cmd.Cell, grid.RoleEmpty)
	case CmdToggleWall:
		return c.g.ToggleWall(cmd.Cell)
	case CmdSetStart:
		return c.g.SetRole(cmd.Cell, grid.RoleStart)
	case CmdSetTarget:
		return c.g.SetRole(cmd.Cell, grid.RoleTarget)
	}
	return nil
}
