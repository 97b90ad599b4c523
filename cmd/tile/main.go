package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/avbrooks/dlxcover/internal/dlx"
	"github.com/avbrooks/dlxcover/internal/tiling"
)

func main() {
	if isStdinTTY() {
		fmt.Println("Enter board dimensions as \"W H\", then one piece per blank-line-separated block.")
		fmt.Println("Use '.' for empty cells, any other character for filled cells.")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	w, h, pieces, err := tiling.ReadGame(os.Stdin)
	if err != nil {
		fatalError("reading input", err.Error())
	}

	matrix, placements, err := tiling.Game(w, h, pieces)
	if err != nil {
		fatalError("building tiling matrix", err.Error())
	}

	solution, ok, err := dlx.SolveOnce(matrix)
	if err != nil {
		fatalError("solving", err.Error())
	}

	if !ok {
		color.HiRed("No tiling exists for this board and piece set.")
		os.Exit(1)
	}

	color.HiWhite("Solution:")
	for _, row := range solution {
		p := placements[row]
		fmt.Printf("piece=%d orientation=%d x=%d y=%d\n", p.Piece, p.Orientation, p.X, p.Y)
	}
}

func isStdinTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

func fatalError(msgs ...string) {
	msg := msgs[0]
	for _, m := range msgs[1:] {
		msg += ": " + m
	}
	fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	os.Exit(1)
}
