package tiling

import "fmt"

// Game reduces a tiling puzzle to an exact-cover matrix: a W x H board and a
// bag of pieces (§ piece-string grammar in ReadGame). Each returned row
// corresponds 1:1 with the returned Placement at the same index. The matrix
// has len(pieces)+W*H columns: the first len(pieces) enforce that each piece
// is used exactly once, the remaining W*H enforce that each board cell is
// covered exactly once.
func Game(w, h int, pieces []string) ([][]bool, []Placement, error) {
	if w <= 0 || h <= 0 {
		return nil, nil, ErrInvalidDimensions
	}

	shapes := make([]shape, len(pieces))
	for i, raw := range pieces {
		s, err := parsePiece(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("piece %d: %w", i, err)
		}
		shapes[i] = s
	}

	var rows [][]bool
	var placements []Placement
	for p, s := range shapes {
		fits := false
		for o, ori := range orientations(s) {
			if ori.w > w || ori.h > h {
				continue
			}
			fits = true
			r, pl := emitRows(w, h, ori, p, o)
			rows = append(rows, r...)
			placements = append(placements, pl...)
		}
		if !fits {
			return nil, nil, fmt.Errorf("piece %d: %w", p, ErrPieceDoesNotFit)
		}
	}

	numPieces := len(shapes)
	matrix := make([][]bool, len(rows))
	for i, row := range rows {
		full := make([]bool, numPieces+w*h)
		full[placements[i].Piece] = true
		copy(full[numPieces:], row)
		matrix[i] = full
	}

	return matrix, placements, nil
}
