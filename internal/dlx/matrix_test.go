package dlx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRejectsEmptyMatrix(t *testing.T) {
	_, err := build(nil)
	assert.ErrorIs(t, err, ErrEmptyMatrix)

	_, err = build([][]bool{{}})
	assert.ErrorIs(t, err, ErrEmptyMatrix)
}

func TestBuildRejectsRaggedMatrix(t *testing.T) {
	_, err := build([][]bool{
		{true, false},
		{true},
	})
	assert.ErrorIs(t, err, ErrRaggedMatrix)
}

func TestBuildElidesEmptyColumns(t *testing.T) {
	m, err := build([][]bool{
		{true, false},
		{true, false},
	})
	require.NoError(t, err)

	active := 0
	for c := m.root.right; c != m.root; c = c.right {
		active++
	}
	assert.Equal(t, 1, active, "the all-zero column must be spliced out of the header row")
}

func TestCoverUncoverRoundTrip(t *testing.T) {
	m, err := build([][]bool{
		{true, false, true},
		{false, true, true},
		{true, true, false},
	})
	require.NoError(t, err)

	snapshot := snapshotLinks(m)

	col := m.root.right
	m.cover(col)
	m.uncover(col)

	assert.Equal(t, snapshot, snapshotLinks(m), "cover followed by uncover must restore the exact prior state")
}

func TestCoverUncoverRoundTripNested(t *testing.T) {
	m, err := build([][]bool{
		{true, false, true, false},
		{false, true, true, false},
		{true, true, false, true},
		{false, false, true, true},
	})
	require.NoError(t, err)

	snapshot := snapshotLinks(m)

	var covered []*node
	for c := m.root.right; c != m.root; c = c.right {
		covered = append(covered, c)
	}
	for _, c := range covered {
		m.cover(c)
	}
	for i := len(covered) - 1; i >= 0; i-- {
		m.uncover(covered[i])
	}

	assert.Equal(t, snapshot, snapshotLinks(m))
}

// linkSnapshot captures everything cover/uncover is allowed to mutate, keyed
// by stable node id so it survives re-walking the rings in a different order.
type linkSnapshot struct {
	up, down, left, right uint64
	payload               int
}

func snapshotLinks(m *Matrix) map[uint64]linkSnapshot {
	out := make(map[uint64]linkSnapshot)
	var walk func(n *node)
	seen := make(map[uint64]bool)
	walk = func(n *node) {
		if seen[n.id] {
			return
		}
		seen[n.id] = true
		out[n.id] = linkSnapshot{n.up.id, n.down.id, n.left.id, n.right.id, n.payload}
		walk(n.right)
		walk(n.down)
	}
	walk(m.root)
	for _, row := range m.rows {
		if row != nil {
			walk(row)
		}
	}
	return out
}
