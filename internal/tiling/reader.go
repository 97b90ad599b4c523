package tiling

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadGame reads a tiling instance from r in the line-oriented format the
// CLI front-ends accept: a first line "W H" giving the board dimensions,
// followed by one or more pieces separated by blank lines. Within a piece,
// '.' denotes an empty cell and any other non-whitespace rune denotes a
// filled one; see the piece-string grammar this mirrors:
//
//	S := line ("\n" line)*
//	line := ("." | NON_DOT)+
func ReadGame(r io.Reader) (w, h int, pieces []string, err error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return 0, 0, nil, fmt.Errorf("tiling: missing board dimensions line")
	}
	if _, err := fmt.Sscanf(strings.TrimSpace(scanner.Text()), "%d %d", &w, &h); err != nil {
		return 0, 0, nil, fmt.Errorf("tiling: invalid board dimensions: %w", err)
	}

	var cur []string
	flush := func() {
		if len(cur) > 0 {
			pieces = append(pieces, strings.Join(cur, "\n"))
			cur = nil
		}
	}
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return 0, 0, nil, fmt.Errorf("tiling: reading input: %w", err)
	}
	return w, h, pieces, nil
}
