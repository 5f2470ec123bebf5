package greenred

import "errors"

var (
	// ErrInvalidDimensions reports a grid whose shape disagrees with the
	// declared rows and columns, or non-positive dimensions.
	ErrInvalidDimensions = errors.New("greenred: invalid grid dimensions")
	// ErrOutOfBoundsTarget reports a target cell outside the grid.
	ErrOutOfBoundsTarget = errors.New("greenred: target cell out of bounds")
	// ErrInvalidTurnCount reports a negative number of turns.
	ErrInvalidTurnCount = errors.New("greenred: invalid turn count")
	// ErrInvalidCell reports a cell value other than 0 (red) or 1 (green).
	ErrInvalidCell = errors.New("greenred: invalid cell value")
)
