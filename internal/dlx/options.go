package dlx

import "time"

// Options configures SolveAllWithOptions. It is the engine's cooperative
// cancellation extension point: the core SolveAll/SolveOnce contract has no
// notion of a time limit or a solution cap, but pathological instances are
// common enough in the tiling front-end (a board with too many copies of a
// tiny piece) that a caller may want to bound the search without abandoning
// the process.
type Options struct {
	// TimeLimit stops the search once exceeded, returning whatever solutions
	// were found so far. The limit is checked only each time a solution is
	// found, so a search that finds no further solution runs to completion
	// regardless of it. Zero means unbounded.
	TimeLimit time.Duration
	// MaxSolutions stops the search once this many solutions are collected.
	// Zero means unbounded.
	MaxSolutions int
}

// DefaultOptions returns an Options with no time limit and no solution cap.
func DefaultOptions() *Options {
	return &Options{}
}

// Stats reports what a bounded search actually did, mirroring the
// introspection the teacher's Sudoku solver exposed for its own Dancing
// Links engine.
type Stats struct {
	NodesVisited   int
	BacktrackCount int
	SolutionsFound int
	TimeElapsed    time.Duration
	MatrixSize     MatrixInfo
}

// MatrixInfo describes the shape of a built matrix.
type MatrixInfo struct {
	Columns    int
	Rows       int
	TotalNodes int
	Density    float64 // percentage of cells that are 1-cells
}

// SolveAllWithOptions behaves like SolveAll but honors opts.TimeLimit and
// opts.MaxSolutions, and reports search statistics alongside the solutions
// found. A timed-out or capped search returns its partial results with a nil
// error: truncation under a caller-chosen bound is not a malformed-input
// error.
func SolveAllWithOptions(m [][]bool, opts *Options) ([][]int, *Stats, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	mat, err := build(m)
	if err != nil {
		return nil, nil, err
	}

	stats := &Stats{MatrixSize: mat.info()}
	start := time.Now()
	defer func() { stats.TimeElapsed = time.Since(start) }()

	var deadline time.Time
	if opts.TimeLimit > 0 {
		deadline = start.Add(opts.TimeLimit)
	}

	var solutions [][]int
	var partial []int
	mat.searchWithStats(&partial, stats, func() bool {
		solutions = append(solutions, append([]int(nil), partial...))
		stats.SolutionsFound++
		if opts.MaxSolutions > 0 && len(solutions) >= opts.MaxSolutions {
			return true
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			return true
		}
		return false
	})

	return solutions, stats, nil
}

// searchWithStats is search instrumented with node/backtrack counters. It is
// kept as a separate traversal (rather than threading optional stats through
// search) so the hot, uninstrumented SolveAll/SolveOnce path pays no
// bookkeeping cost.
func (m *Matrix) searchWithStats(partial *[]int, stats *Stats, onSolution func() bool) bool {
	stats.NodesVisited++

	if m.root.right == m.root {
		return onSolution()
	}

	col := m.chooseColumn()
	if col.payload == 0 {
		return false
	}

	m.cover(col)
	defer m.uncover(col)

	for r := col.down; r != col; r = r.down {
		*partial = append(*partial, r.payload)

		for j := r.right; j != r; j = j.right {
			m.cover(j.column)
		}

		stop := m.searchWithStats(partial, stats, onSolution)

		for j := r.left; j != r; j = j.left {
			m.uncover(j.column)
		}

		*partial = (*partial)[:len(*partial)-1]
		stats.BacktrackCount++

		if stop {
			return true
		}
	}

	return false
}

// info computes the MatrixInfo for a built matrix.
func (m *Matrix) info() MatrixInfo {
	info := MatrixInfo{Rows: len(m.rows)}
	for c := m.root.right; c != m.root; c = c.right {
		info.Columns++
	}
	for _, row := range m.rows {
		if row == nil {
			continue
		}
		count := 1
		for n := row.right; n != row; n = n.right {
			count++
		}
		info.TotalNodes += count
	}
	if info.Columns > 0 && info.Rows > 0 {
		info.Density = float64(info.TotalNodes) / float64(info.Columns*info.Rows) * 100.0
	}
	return info
}
