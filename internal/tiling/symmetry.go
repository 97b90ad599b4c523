package tiling

import "github.com/avbrooks/dlxcover/internal/set"

// orientations returns the distinct shapes produced by applying the eight D4
// symmetries to s: the four rotations, and the same four again after a
// horizontal flip. Shapes that coincide under value-equality (pieces with
// internal symmetry) are deduplicated, so a piece with full D4 symmetry
// yields a single orientation.
func orientations(s shape) []shape {
	seen := set.NewSet[string]()
	var out []shape

	cur := s
	for flip := 0; flip < 2; flip++ {
		for rot := 0; rot < 4; rot++ {
			k := cur.key()
			if !seen.Contains(k) {
				seen.Add(k)
				out = append(out, cur)
			}
			cur = cur.rotate()
		}
		cur = cur.flip()
	}
	return out
}
