package poset

// Covering is the covering relation (Hasse edges) of a poset: the unique
// minimal set of non-reflexive pairs whose reflexive-transitive closure
// equals the poset.
//
// A Covering value is only produced by [Poset.Reduce] and is immutable.
type Covering[E comparable] struct {
	elems []E
	index map[E]int
	edges []Pair[E]   // ordered by (index of A, index of B)
	out   map[int][]int
	in    map[int][]int
}

// Reduce computes the covering relation of the poset.
//
// A strict pair (u, v) is a covering edge exactly when no third element w
// satisfies u < w and w < v. Because the poset is transitively closed,
// testing a single intermediate element detects every longer implied
// path, so the scan is a straight O(n³) triple loop with O(1) pair
// lookups. The edge order follows element first-appearance order, making
// the output deterministic.
func (p Poset[E]) Reduce() Covering[E] {
	c := p.closed
	n := len(c.elems)

	cov := Covering[E]{
		elems: c.Elements(),
		index: make(map[E]int, n),
		out:   make(map[int][]int),
		in:    make(map[int][]int),
	}
	for i, e := range cov.elems {
		cov.index[e] = i
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || !c.reach[i][j] {
				continue
			}
			covered := true
			for k := 0; k < n; k++ {
				if k == i || k == j {
					continue
				}
				if c.reach[i][k] && c.reach[k][j] {
					covered = false
					break
				}
			}
			if covered {
				cov.edges = append(cov.edges, Pair[E]{A: c.elems[i], B: c.elems[j]})
				cov.out[i] = append(cov.out[i], j)
				cov.in[j] = append(cov.in[j], i)
			}
		}
	}

	return cov
}

// Edges returns the covering edges in deterministic order.
// The returned slice is a copy.
func (c Covering[E]) Edges() []Pair[E] {
	out := make([]Pair[E], len(c.edges))
	copy(out, c.edges)
	return out
}

// Elements returns the universe in first-appearance order.
func (c Covering[E]) Elements() []E {
	out := make([]E, len(c.elems))
	copy(out, c.elems)
	return out
}

// Covers reports whether (u, v) is a covering edge.
func (c Covering[E]) Covers(u, v E) bool {
	i, ok := c.index[u]
	if !ok {
		return false
	}
	j, ok := c.index[v]
	if !ok {
		return false
	}
	for _, t := range c.out[i] {
		if t == j {
			return true
		}
	}
	return false
}

// Predecessors returns the elements covered by e (its direct lower
// neighbours), in first-appearance order.
func (c Covering[E]) Predecessors(e E) []E {
	i, ok := c.index[e]
	if !ok {
		return nil
	}
	var out []E
	for _, p := range c.in[i] {
		out = append(out, c.elems[p])
	}
	return out
}

// Successors returns the elements covering e (its direct upper
// neighbours), in first-appearance order.
func (c Covering[E]) Successors(e E) []E {
	i, ok := c.index[e]
	if !ok {
		return nil
	}
	var out []E
	for _, s := range c.out[i] {
		out = append(out, c.elems[s])
	}
	return out
}

// EdgeCount returns the number of covering edges.
func (c Covering[E]) EdgeCount() int { return len(c.edges) }

// ElementCount returns the number of distinct elements.
func (c Covering[E]) ElementCount() int { return len(c.elems) }
