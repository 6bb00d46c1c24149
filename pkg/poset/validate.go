package poset

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAPoset is the sentinel wrapped by every validation error.
	// Use errors.Is(err, ErrNotAPoset) to distinguish bad input from
	// internal faults such as [ErrCycle].
	ErrNotAPoset = errors.New("relation is not a partial order")

	// ErrCycle is returned by [Covering.Levels] when the covering relation
	// is not acyclic. A validated poset always yields an acyclic covering
	// relation, so this signals an internal invariant breach rather than
	// bad user input.
	ErrCycle = errors.New("covering relation contains a cycle")
)

// ReflexivityError reports a missing reflexive pair in a closure.
// [Relation.Close] always produces reflexive closures, so this error is a
// contract check and should be unreachable.
type ReflexivityError[E comparable] struct {
	Element E
}

func (e *ReflexivityError[E]) Error() string {
	return fmt.Sprintf("missing reflexive pair (%v, %v)", e.Element, e.Element)
}

func (e *ReflexivityError[E]) Unwrap() error { return ErrNotAPoset }

// AntisymmetryError reports two distinct elements related in both
// directions: A ≤ B and B ≤ A.
type AntisymmetryError[E comparable] struct {
	A E
	B E
}

func (e *AntisymmetryError[E]) Error() string {
	return fmt.Sprintf("antisymmetry violated: both %v ≤ %v and %v ≤ %v", e.A, e.B, e.B, e.A)
}

func (e *AntisymmetryError[E]) Unwrap() error { return ErrNotAPoset }

// TransitivityError reports A ≤ B and B ≤ C without A ≤ C.
// A correct closure computation cannot produce this; the check is kept
// because transitivity is the axiom that gives the relation poset status.
type TransitivityError[E comparable] struct {
	A E
	B E
	C E
}

func (e *TransitivityError[E]) Error() string {
	return fmt.Sprintf("transitivity violated: %v ≤ %v and %v ≤ %v but not %v ≤ %v", e.A, e.B, e.B, e.C, e.A, e.C)
}

func (e *TransitivityError[E]) Unwrap() error { return ErrNotAPoset }

// Poset is a closure that passed validation. It is immutable and shares
// no mutable state with the Closed value it was derived from.
type Poset[E comparable] struct {
	closed Closed[E]
}

// Validate confirms the poset axioms on the closure and wraps it in a
// typed Poset.
//
// Checks run in order - reflexivity, antisymmetry, transitivity - and stop
// at the first violation. On failure no partial result is returned; the
// error identifies the offending pair or triple and unwraps to
// [ErrNotAPoset].
func (c Closed[E]) Validate() (Poset[E], error) {
	n := len(c.elems)

	for i := 0; i < n; i++ {
		if !c.reach[i][i] {
			return Poset[E]{}, &ReflexivityError[E]{Element: c.elems[i]}
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if c.reach[i][j] && c.reach[j][i] {
				return Poset[E]{}, &AntisymmetryError[E]{A: c.elems[i], B: c.elems[j]}
			}
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !c.reach[i][j] {
				continue
			}
			for k := 0; k < n; k++ {
				if c.reach[j][k] && !c.reach[i][k] {
					return Poset[E]{}, &TransitivityError[E]{A: c.elems[i], B: c.elems[j], C: c.elems[k]}
				}
			}
		}
	}

	return Poset[E]{closed: c}, nil
}

// Has reports whether a ≤ b.
func (p Poset[E]) Has(a, b E) bool { return p.closed.Has(a, b) }

// Elements returns the universe in first-appearance order.
func (p Poset[E]) Elements() []E { return p.closed.Elements() }

// Pairs returns every pair of the poset, including reflexive pairs.
func (p Poset[E]) Pairs() []Pair[E] { return p.closed.Pairs() }

// ElementCount returns the number of distinct elements.
func (p Poset[E]) ElementCount() int { return p.closed.ElementCount() }
