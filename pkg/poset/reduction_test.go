package poset

import "testing"

// divisorRelation builds the divisibility relation over the divisors of n.
func divisorRelation(n int) *Relation[int] {
	var divisors []int
	for d := 1; d <= n; d++ {
		if n%d == 0 {
			divisors = append(divisors, d)
		}
	}
	r := NewRelation[int](nil)
	for _, a := range divisors {
		for _, b := range divisors {
			if b%a == 0 {
				r.Add(a, b)
			}
		}
	}
	return r
}

func mustPoset[E comparable](t *testing.T, r *Relation[E]) Poset[E] {
	t.Helper()
	p, err := r.Close().Validate()
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	return p
}

func TestReduce_Chain(t *testing.T) {
	r := NewRelation([]Pair[int]{{1, 2}, {2, 3}, {1, 3}, {3, 4}, {4, 4}})
	cov := mustPoset(t, r).Reduce()

	want := []Pair[int]{{1, 2}, {2, 3}, {3, 4}}
	got := cov.Edges()
	if len(got) != len(want) {
		t.Fatalf("Edges() = %v, want %v", got, want)
	}
	for i, e := range want {
		if got[i] != e {
			t.Errorf("Edges()[%d] = %v, want %v", i, got[i], e)
		}
	}
	if cov.Covers(1, 3) {
		t.Error("transitive pair (1, 3) kept as covering edge")
	}
}

func TestReduce_Diamond(t *testing.T) {
	//   1
	//  / \
	// 2   3
	//  \ /
	//   4
	r := NewRelation([]Pair[int]{{1, 2}, {1, 3}, {2, 4}, {3, 4}, {1, 4}})
	cov := mustPoset(t, r).Reduce()

	if cov.EdgeCount() != 4 {
		t.Fatalf("EdgeCount() = %d, want 4", cov.EdgeCount())
	}
	if cov.Covers(1, 4) {
		t.Error("diagonal (1, 4) survived reduction")
	}
	for _, e := range []Pair[int]{{1, 2}, {1, 3}, {2, 4}, {3, 4}} {
		if !cov.Covers(e.A, e.B) {
			t.Errorf("Covers(%d, %d) = false, want true", e.A, e.B)
		}
	}
}

func TestReduce_DivisorsOf60(t *testing.T) {
	cov := mustPoset(t, divisorRelation(60)).Reduce()

	// An edge a→b is a covering edge exactly when b/a is prime.
	isPrime := func(n int) bool {
		if n < 2 {
			return false
		}
		for d := 2; d*d <= n; d++ {
			if n%d == 0 {
				return false
			}
		}
		return true
	}

	for _, e := range cov.Edges() {
		if e.B%e.A != 0 || !isPrime(e.B/e.A) {
			t.Errorf("edge (%d, %d): quotient %d is not prime", e.A, e.B, e.B/e.A)
		}
	}
	if cov.EdgeCount() != 20 {
		t.Errorf("EdgeCount() = %d, want 20", cov.EdgeCount())
	}
	if cov.Covers(1, 60) {
		t.Error("(1, 60) kept despite 1|2|60")
	}
	if !cov.Covers(1, 2) || !cov.Covers(2, 4) || !cov.Covers(30, 60) {
		t.Error("expected immediate-divisor edges missing")
	}
}

func TestReduce_ReachabilityEquivalence(t *testing.T) {
	// The closure of the covering relation must reproduce the poset.
	relations := map[string]*Relation[int]{
		"chain":    NewRelation([]Pair[int]{{1, 2}, {2, 3}, {1, 3}, {3, 4}}),
		"diamond":  NewRelation([]Pair[int]{{1, 2}, {1, 3}, {2, 4}, {3, 4}, {1, 4}}),
		"div60":    divisorRelation(60),
		"isolated": NewRelation([]Pair[int]{{1, 2}}),
	}
	relations["isolated"].AddElement(99)

	for name, r := range relations {
		p := mustPoset(t, r)
		cov := p.Reduce()

		rebuilt := NewRelation(cov.Edges())
		for _, e := range cov.Elements() {
			rebuilt.AddElement(e)
		}
		reclosed := rebuilt.Close()

		for _, a := range p.Elements() {
			for _, b := range p.Elements() {
				if p.Has(a, b) != reclosed.Has(a, b) {
					t.Errorf("%s: pair (%v, %v): poset %v, reclosed covering %v",
						name, a, b, p.Has(a, b), reclosed.Has(a, b))
				}
			}
		}
	}
}

func TestReduce_Minimality(t *testing.T) {
	// Dropping any single covering edge must change the closure.
	p := mustPoset(t, divisorRelation(30))
	cov := p.Reduce()
	edges := cov.Edges()

	for skip := range edges {
		partial := NewRelation[int](nil)
		for _, e := range cov.Elements() {
			partial.AddElement(e)
		}
		for i, e := range edges {
			if i != skip {
				partial.Add(e.A, e.B)
			}
		}
		dropped := edges[skip]
		if partial.Close().Has(dropped.A, dropped.B) {
			t.Errorf("edge (%d, %d) is redundant: closure unchanged without it", dropped.A, dropped.B)
		}
	}
}

func TestReduce_Deterministic(t *testing.T) {
	build := func() []Pair[int] {
		return mustPoset(t, divisorRelation(60)).Reduce().Edges()
	}
	first := build()
	for run := 0; run < 5; run++ {
		next := build()
		if len(next) != len(first) {
			t.Fatalf("run %d: edge count %d, want %d", run, len(next), len(first))
		}
		for i := range first {
			if next[i] != first[i] {
				t.Fatalf("run %d: edge order diverged at %d: %v vs %v", run, i, next[i], first[i])
			}
		}
	}
}
