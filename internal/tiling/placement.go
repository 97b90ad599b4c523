package tiling

// Placement identifies one row of a tiling matrix: orientation o of piece
// Piece, shifted so its top-left corner sits at board cell (X, Y).
type Placement struct {
	Piece       int
	Orientation int
	X, Y        int
}

// emitRows enumerates every legal placement of orientation ori on a W x H
// board, row-major, bit (y*W+x) true iff (x,y) falls inside the shifted
// shape and that shape cell is filled.
func emitRows(w, h int, ori shape, piece, orientation int) (rows [][]bool, placements []Placement) {
	for shiftY := 0; shiftY <= h-ori.h; shiftY++ {
		for shiftX := 0; shiftX <= w-ori.w; shiftX++ {
			bits := make([]bool, w*h)
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					inside := x >= shiftX && x < shiftX+ori.w && y >= shiftY && y < shiftY+ori.h
					if inside && ori.cells[y-shiftY][x-shiftX] {
						bits[y*w+x] = true
					}
				}
			}
			rows = append(rows, bits)
			placements = append(placements, Placement{Piece: piece, Orientation: orientation, X: shiftX, Y: shiftY})
		}
	}
	return rows, placements
}
