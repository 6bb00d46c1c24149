package poset

import "testing"

func TestClose_AddsReflexivePairs(t *testing.T) {
	r := NewRelation([]Pair[int]{{1, 2}, {2, 3}})
	c := r.Close()

	for _, e := range []int{1, 2, 3} {
		if !c.Has(e, e) {
			t.Errorf("Has(%d, %d) = false, want true", e, e)
		}
	}
}

func TestClose_Transitive(t *testing.T) {
	r := NewRelation([]Pair[int]{{1, 2}, {2, 3}, {3, 4}})
	c := r.Close()

	tests := []struct {
		a, b int
		want bool
	}{
		{1, 3, true},
		{1, 4, true},
		{2, 4, true},
		{4, 1, false},
		{3, 2, false},
	}
	for _, tt := range tests {
		if got := c.Has(tt.a, tt.b); got != tt.want {
			t.Errorf("Has(%d, %d) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestClose_IsolatedElement(t *testing.T) {
	r := NewRelation([]Pair[string]{{"a", "b"}})
	r.AddElement("lonely")
	c := r.Close()

	if !c.Has("lonely", "lonely") {
		t.Error("isolated element lost its reflexive pair")
	}
	if c.Has("lonely", "a") || c.Has("a", "lonely") {
		t.Error("isolated element must not be related to anything else")
	}
	if c.ElementCount() != 3 {
		t.Errorf("ElementCount() = %d, want 3", c.ElementCount())
	}
}

func TestClose_Idempotent(t *testing.T) {
	r := NewRelation([]Pair[int]{{1, 2}, {2, 3}, {1, 3}, {3, 4}, {4, 4}})
	first := r.Close()

	again := NewRelation(first.Pairs()).Close()
	if first.PairCount() != again.PairCount() {
		t.Fatalf("re-closing changed pair count: %d -> %d", first.PairCount(), again.PairCount())
	}
	for _, p := range first.Pairs() {
		if !again.Has(p.A, p.B) {
			t.Errorf("pair (%v, %v) lost on re-close", p.A, p.B)
		}
	}
}

func TestClose_EmptyRelation(t *testing.T) {
	r := NewRelation[int](nil)
	c := r.Close()

	if c.ElementCount() != 0 {
		t.Errorf("ElementCount() = %d, want 0", c.ElementCount())
	}
	if c.PairCount() != 0 {
		t.Errorf("PairCount() = %d, want 0", c.PairCount())
	}
}

func TestClose_SingleElementNoPairs(t *testing.T) {
	r := NewRelation[string](nil)
	r.AddElement("x")
	c := r.Close()

	if !c.Has("x", "x") {
		t.Error("Has(x, x) = false, want true")
	}
	if c.PairCount() != 1 {
		t.Errorf("PairCount() = %d, want 1", c.PairCount())
	}
}

func TestClose_DoesNotMutateInput(t *testing.T) {
	r := NewRelation([]Pair[int]{{1, 2}, {2, 3}})
	before := r.PairCount()
	r.Close()

	if r.PairCount() != before {
		t.Errorf("Close mutated the relation: %d pairs -> %d", before, r.PairCount())
	}
	if r.Has(1, 3) {
		t.Error("Close leaked transitive pair into the input relation")
	}
}

func TestRelation_FirstAppearanceOrder(t *testing.T) {
	r := NewRelation([]Pair[string]{{"c", "a"}, {"a", "b"}, {"c", "b"}})
	got := r.Elements()
	want := []string{"c", "a", "b"}

	if len(got) != len(want) {
		t.Fatalf("Elements() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Elements()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRelation_DuplicatePairsIgnored(t *testing.T) {
	r := NewRelation([]Pair[int]{{1, 2}, {1, 2}, {1, 2}})
	if r.PairCount() != 1 {
		t.Errorf("PairCount() = %d, want 1", r.PairCount())
	}
}
