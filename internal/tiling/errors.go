package tiling

import "errors"

var (
	// ErrEmptyPiece indicates a piece string was empty after trimming.
	ErrEmptyPiece = errors.New("tiling: piece string is empty")
	// ErrRaggedPiece indicates a piece's lines are not all the same width.
	ErrRaggedPiece = errors.New("tiling: piece lines must all be the same width")
	// ErrInvalidDimensions indicates a non-positive board width or height.
	ErrInvalidDimensions = errors.New("tiling: board width and height must be positive")
	// ErrPieceDoesNotFit indicates a piece has no orientation that fits the
	// board at all, making the instance unsatisfiable before a single row is
	// ever emitted.
	ErrPieceDoesNotFit = errors.New("tiling: piece does not fit the board in any orientation")
)
