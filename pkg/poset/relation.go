// Package poset computes the structural skeleton of finite partially
// ordered sets.
//
// The package is organized as a linear pipeline of typed stages:
//
//	Relation → Closed → Poset → Covering → levels
//
// Each stage returns a type that encodes the invariant it establishes, so
// a caller cannot reach the covering relation without going through
// validation first. All stages are pure: inputs are never mutated, and
// every artifact is immutable once constructed.
//
// Elements are an opaque generic type constrained to comparable. Iteration
// order throughout the package is the order in which elements first appear
// in the input relation, which makes every derived artifact deterministic
// for a given input.
package poset

// Pair is an ordered pair (A, B) asserting A ≤ B.
type Pair[E comparable] struct {
	A E
	B E
}

// Relation is a finite binary relation over an element universe.
//
// The universe is inferred from the pairs as they are added; isolated
// elements can be registered explicitly with AddElement. Reflexive pairs
// are accepted but not required - Close adds them implicitly.
//
// The zero value is not usable; use NewRelation.
type Relation[E comparable] struct {
	elems []E            // first-appearance order
	index map[E]int      // element -> position in elems
	pairs map[Pair[E]]struct{}
	order []Pair[E] // insertion order, duplicates skipped
}

// NewRelation creates a relation from the given pairs.
// Elements are registered in first-appearance order (A before B per pair).
func NewRelation[E comparable](pairs []Pair[E]) *Relation[E] {
	r := &Relation[E]{
		index: make(map[E]int),
		pairs: make(map[Pair[E]]struct{}, len(pairs)),
	}
	for _, p := range pairs {
		r.Add(p.A, p.B)
	}
	return r
}

// Add records the pair (a, b), registering both elements if new.
// Duplicate pairs are ignored.
func (r *Relation[E]) Add(a, b E) {
	r.AddElement(a)
	r.AddElement(b)
	p := Pair[E]{A: a, B: b}
	if _, ok := r.pairs[p]; ok {
		return
	}
	r.pairs[p] = struct{}{}
	r.order = append(r.order, p)
}

// AddElement registers an element without relating it to anything.
// Isolated elements still receive their reflexive pair during closure.
func (r *Relation[E]) AddElement(e E) {
	if _, ok := r.index[e]; ok {
		return
	}
	r.index[e] = len(r.elems)
	r.elems = append(r.elems, e)
}

// Elements returns the universe in first-appearance order.
// The returned slice is a copy.
func (r *Relation[E]) Elements() []E {
	out := make([]E, len(r.elems))
	copy(out, r.elems)
	return out
}

// Pairs returns the distinct pairs in insertion order.
// The returned slice is a copy.
func (r *Relation[E]) Pairs() []Pair[E] {
	out := make([]Pair[E], len(r.order))
	copy(out, r.order)
	return out
}

// Has reports whether the pair (a, b) was recorded.
func (r *Relation[E]) Has(a, b E) bool {
	_, ok := r.pairs[Pair[E]{A: a, B: b}]
	return ok
}

// ElementCount returns the number of distinct elements.
func (r *Relation[E]) ElementCount() int { return len(r.elems) }

// PairCount returns the number of distinct pairs.
func (r *Relation[E]) PairCount() int { return len(r.order) }
