package dlx

import "errors"

var (
	// ErrEmptyMatrix indicates the input matrix has zero rows or zero columns.
	ErrEmptyMatrix = errors.New("dlx: matrix must have at least one row and one column")
	// ErrRaggedMatrix indicates the input matrix's rows are not all the same length.
	ErrRaggedMatrix = errors.New("dlx: all rows of the matrix must have the same length")
)
