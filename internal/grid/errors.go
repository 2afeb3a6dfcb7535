package grid

import "errors"

// Domain errors for grid operations.
var (
	// ErrInvalidCoordinate indicates a coordinate outside the grid bounds.
	ErrInvalidCoordinate = errors.New("grid: coordinate out of bounds")

	// ErrInvalidRoleTransition indicates a role assignment that would break
	// a grid invariant, such as drawing a wall over the start cell.
	ErrInvalidRoleTransition = errors.New("grid: invalid role transition")

	// ErrBadDimensions indicates construction with unusable dimensions.
	ErrBadDimensions = errors.New("grid: dimensions too small")
)
