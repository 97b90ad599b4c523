package dlx

// Matrix is a built toroidal sparse matrix ready to search. A Matrix is
// owned exclusively by whichever goroutine built it — there is no internal
// locking, because cover/uncover/search are never run concurrently against
// the same Matrix.
type Matrix struct {
	root *node
	// rows holds the first node of each input row, indexed by row number, or
	// nil for rows that contributed no columns. It anchors every row so the
	// graph is reachable without walking from root, which search never
	// actually needs — see the "lifetime anchor" design note.
	rows []*node
}

// build constructs the toroidal matrix described by m. It validates the
// input shape but never fails because some column happens to be empty: an
// empty column makes the instance infeasible, not malformed, and is simply
// spliced out of the header row so search terminates immediately instead of
// exploring a doomed branch.
func build(m [][]bool) (*Matrix, error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return nil, ErrEmptyMatrix
	}
	cols := len(m[0])
	for _, row := range m {
		if len(row) != cols {
			return nil, ErrRaggedMatrix
		}
	}

	root := newNode()
	headers := make([]*node, cols)
	for j := range cols {
		h := newNode()
		h.column = h
		insertRowTail(h, root)
		headers[j] = h
	}

	rows := make([]*node, len(m))
	for i, row := range m {
		var first *node
		for j, filled := range row {
			if !filled {
				continue
			}
			header := headers[j]
			n := &node{column: header, payload: i, id: nextNodeID.Add(1)}
			insertColumnTail(n, header)
			header.payload++

			if first == nil {
				first = n
				n.left, n.right = n, n
			} else {
				insertRowTail(n, first)
			}
		}
		rows[i] = first
	}

	for _, h := range headers {
		if h.payload == 0 {
			unlinkLR(h)
		}
	}

	return &Matrix{root: root, rows: rows}, nil
}

// cover removes column c from the header row, then removes every row that
// has a node in c from all of the other columns those rows intersect. It is
// the inverse of uncover, and the pair form the basis of the engine's O(1)
// backtracking.
func (m *Matrix) cover(c *node) {
	unlinkLR(c)
	for i := c.down; i != c; i = i.down {
		for j := i.right; j != i; j = j.right {
			unlinkUD(j)
			j.column.payload--
		}
	}
}

// uncover restores column c and every row removed by the matching cover,
// walking both rings in reverse order so each node's own still-valid
// up/down/left/right pointers splice it back exactly where it came from.
func (m *Matrix) uncover(c *node) {
	for i := c.up; i != c; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.column.payload++
			relinkUD(j)
		}
	}
	relinkLR(c)
}

func unlinkLR(n *node) {
	n.left.right = n.right
	n.right.left = n.left
}

func relinkLR(n *node) {
	n.left.right = n
	n.right.left = n
}

func unlinkUD(n *node) {
	n.up.down = n.down
	n.down.up = n.up
}

func relinkUD(n *node) {
	n.up.down = n
	n.down.up = n
}
