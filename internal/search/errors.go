package search

import "errors"

// Domain errors for starting a search.
var (
	// ErrNoStart indicates a run was requested before a start cell exists.
	ErrNoStart = errors.New("search: no start cell placed")

	// ErrNoTarget indicates a run was requested before a target cell exists.
	ErrNoTarget = errors.New("search: no target cell placed")

	// ErrUnknownAlgorithm indicates an unregistered variant name.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)
