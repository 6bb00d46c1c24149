package poset

// Closed is the reflexive-transitive closure of a Relation.
//
// A Closed value is only produced by [Relation.Close] and is immutable.
// It guarantees reflexivity and transitivity by construction; antisymmetry
// is not guaranteed until [Closed.Validate] succeeds.
type Closed[E comparable] struct {
	elems []E
	index map[E]int
	reach [][]bool // reach[i][j] reports elems[i] ≤ elems[j]
}

// Close computes the smallest reflexive and transitive superset of the
// relation.
//
// The closure is computed with a Warshall pass over a boolean reachability
// matrix indexed by element position, so the result is exactly the set of
// pairs (a, b) where b is reachable from a via zero or more input pairs.
// Elements with no pairs still receive their reflexive pair.
//
// Close is a pure function; the receiver is not modified. Closing an
// already-closed relation yields the same closure.
func (r *Relation[E]) Close() Closed[E] {
	n := len(r.elems)
	reach := make([][]bool, n)
	for i := range reach {
		reach[i] = make([]bool, n)
		reach[i][i] = true
	}
	for p := range r.pairs {
		reach[r.index[p.A]][r.index[p.B]] = true
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if !reach[i][k] {
				continue
			}
			for j := 0; j < n; j++ {
				if reach[k][j] {
					reach[i][j] = true
				}
			}
		}
	}

	elems := make([]E, n)
	copy(elems, r.elems)
	index := make(map[E]int, n)
	for i, e := range elems {
		index[e] = i
	}
	return Closed[E]{elems: elems, index: index, reach: reach}
}

// Has reports whether a ≤ b in the closure.
// Unknown elements are related to nothing.
func (c Closed[E]) Has(a, b E) bool {
	i, ok := c.index[a]
	if !ok {
		return false
	}
	j, ok := c.index[b]
	if !ok {
		return false
	}
	return c.reach[i][j]
}

// Elements returns the universe in first-appearance order.
func (c Closed[E]) Elements() []E {
	out := make([]E, len(c.elems))
	copy(out, c.elems)
	return out
}

// Pairs returns every pair of the closure, including reflexive pairs,
// ordered by (first appearance of A, first appearance of B).
func (c Closed[E]) Pairs() []Pair[E] {
	var out []Pair[E]
	for i, a := range c.elems {
		for j, b := range c.elems {
			if c.reach[i][j] {
				out = append(out, Pair[E]{A: a, B: b})
			}
		}
	}
	return out
}

// PairCount returns the number of pairs in the closure.
func (c Closed[E]) PairCount() int {
	count := 0
	for i := range c.reach {
		for j := range c.reach[i] {
			if c.reach[i][j] {
				count++
			}
		}
	}
	return count
}

// ElementCount returns the number of distinct elements.
func (c Closed[E]) ElementCount() int { return len(c.elems) }
