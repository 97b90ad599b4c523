package main

import (
	"flag"
	"fmt"

	"github.com/fatih/color"

	"github.com/avbrooks/dlxcover/internal/dlx"
	"github.com/avbrooks/dlxcover/internal/tiling"
)

func main() {
	which := flag.String("matrix", "knuth", "which demo matrix to solve: \"knuth\" or \"tiling\"")
	flag.Parse()

	fmt.Println("Dancing Links Algorithm Demonstration")
	fmt.Println("=====================================")

	switch *which {
	case "tiling":
		demoTiling()
	default:
		demoKnuth()
	}
}

// demoKnuth solves the canonical 6x7 exact-cover matrix from Knuth's
// Dancing Links paper and reports search statistics.
func demoKnuth() {
	matrix := [][]bool{
		{false, false, true, false, true, true, false},
		{true, false, false, true, false, false, true},
		{false, true, true, false, false, true, false},
		{true, false, false, true, false, false, false},
		{false, true, false, false, false, false, true},
		{false, false, false, true, true, false, true},
	}

	fmt.Printf("\n%s\n", color.HiBlueString("Knuth's canonical 6x7 matrix"))
	run(matrix)
}

// demoTiling solves a small polyomino tiling instance: an L-tromino, a
// domino, and a monomino exactly covering a 3x2 board.
func demoTiling() {
	fmt.Printf("\n%s\n", color.HiBlueString("Tiling: L-tromino + domino + monomino on a 3x2 board"))

	matrix, placements, err := tiling.Game(3, 2, []string{"##\n.#", "##", "#"})
	if err != nil {
		fmt.Println(color.HiRedString("✗ failed to build matrix: %v", err))
		return
	}

	solutions, stats, err := dlx.SolveAllWithOptions(matrix, dlx.DefaultOptions())
	if err != nil {
		fmt.Println(color.HiRedString("✗ solve error: %v", err))
		return
	}

	printStats(stats)
	fmt.Printf("%s %d\n", color.HiGreenString("Solutions found:"), len(solutions))
	if len(solutions) > 0 {
		fmt.Println(color.HiYellowString("First solution:"))
		for _, row := range solutions[0] {
			p := placements[row]
			fmt.Printf("  piece=%d orientation=%d x=%d y=%d\n", p.Piece, p.Orientation, p.X, p.Y)
		}
	}
}

func run(matrix [][]bool) {
	solutions, stats, err := dlx.SolveAllWithOptions(matrix, dlx.DefaultOptions())
	if err != nil {
		fmt.Println(color.HiRedString("✗ solve error: %v", err))
		return
	}

	printStats(stats)
	fmt.Printf("%s %d\n", color.HiGreenString("Solutions found:"), len(solutions))
	for i, sol := range solutions {
		fmt.Printf("  solution %d: rows %v\n", i, sol)
	}
}

func printStats(stats *dlx.Stats) {
	fmt.Println(color.HiCyanString("Matrix info:"))
	fmt.Printf("  columns=%d rows=%d nodes=%d density=%.1f%%\n",
		stats.MatrixSize.Columns, stats.MatrixSize.Rows, stats.MatrixSize.TotalNodes, stats.MatrixSize.Density)
	fmt.Printf("  nodes visited=%d backtracks=%d elapsed=%s\n",
		stats.NodesVisited, stats.BacktrackCount, stats.TimeElapsed)
}
