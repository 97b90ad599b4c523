package tiling

import (
	"fmt"
	"strings"
)

// shape is a boolean rectangle: a piece's cells, or one of its rotated or
// flipped forms. cells is indexed [y][x].
type shape struct {
	w, h  int
	cells [][]bool
}

// parsePiece parses one piece per the grammar in ReadGame's doc comment:
// lines separated by newlines, '.' for empty, any other rune for filled.
// Leading/trailing whitespace is stripped from the whole string and from
// each line.
func parsePiece(s string) (shape, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return shape{}, ErrEmptyPiece
	}

	lines := strings.Split(trimmed, "\n")
	cells := make([][]bool, len(lines))
	width := -1
	for i, line := range lines {
		line = strings.TrimSpace(line)
		runes := []rune(line)
		row := make([]bool, len(runes))
		for j, ch := range runes {
			row[j] = ch != '.'
		}
		if width == -1 {
			width = len(row)
		} else if len(row) != width {
			return shape{}, ErrRaggedPiece
		}
		cells[i] = row
	}
	if width == 0 {
		return shape{}, ErrEmptyPiece
	}

	return shape{w: width, h: len(lines), cells: cells}, nil
}

// rotate returns the 90-degree-clockwise rotation of s: rot(M)[x][y] =
// M[h-1-y][x], swapping width and height.
func (s shape) rotate() shape {
	out := shape{w: s.h, h: s.w, cells: make([][]bool, s.w)}
	for y := 0; y < s.w; y++ {
		row := make([]bool, s.h)
		for x := 0; x < s.h; x++ {
			row[x] = s.cells[s.h-1-x][y]
		}
		out.cells[y] = row
	}
	return out
}

// flip returns s with its rows reversed (a horizontal mirror axis).
func (s shape) flip() shape {
	out := shape{w: s.w, h: s.h, cells: make([][]bool, s.h)}
	for y := 0; y < s.h; y++ {
		out.cells[y] = s.cells[s.h-1-y]
	}
	return out
}

// key returns a value suitable for deduplicating shapes by dimensions and
// filled pattern.
func (s shape) key() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d,%d:", s.h, s.w)
	for _, row := range s.cells {
		for _, filled := range row {
			if filled {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
	}
	return b.String()
}

// area returns the number of filled cells in s.
func (s shape) area() int {
	n := 0
	for _, row := range s.cells {
		for _, filled := range row {
			if filled {
				n++
			}
		}
	}
	return n
}
