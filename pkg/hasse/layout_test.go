package hasse

import (
	"testing"

	"github.com/matzehuels/hasseviz/pkg/poset"
)

func buildCovering(t *testing.T, pairs []poset.Pair[string]) (poset.Covering[string], map[string]int) {
	t.Helper()
	cov, levels, err := poset.Build(poset.NewRelation(pairs))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return cov, levels
}

func TestBuild_ChainIsVerticalLine(t *testing.T) {
	cov, levels := buildCovering(t, []poset.Pair[string]{{A: "a", B: "b"}, {A: "b", B: "c"}})
	l := Build(cov, levels, Options{})

	if l.Height() != 3 {
		t.Fatalf("Height() = %d, want 3", l.Height())
	}
	for _, e := range []string{"a", "b", "c"} {
		if l.Positions[e].X != 0 {
			t.Errorf("X(%s) = %v, want 0", e, l.Positions[e].X)
		}
	}
	if l.Positions["a"].Y != 0 || l.Positions["b"].Y != 1 || l.Positions["c"].Y != 2 {
		t.Errorf("Y positions = %v, %v, %v, want 0, 1, 2",
			l.Positions["a"].Y, l.Positions["b"].Y, l.Positions["c"].Y)
	}
}

func TestBuild_RowCentering(t *testing.T) {
	// One minimal element with three covers: middle row spans -1, 0, 1.
	cov, levels := buildCovering(t, []poset.Pair[string]{
		{A: "root", B: "x"}, {A: "root", B: "y"}, {A: "root", B: "z"},
	})
	l := Build(cov, levels, Options{})

	if got := l.Positions["x"].X; got != -1 {
		t.Errorf("X(x) = %v, want -1", got)
	}
	if got := l.Positions["y"].X; got != 0 {
		t.Errorf("X(y) = %v, want 0", got)
	}
	if got := l.Positions["z"].X; got != 1 {
		t.Errorf("X(z) = %v, want 1", got)
	}
}

func TestBuild_SpacingOptions(t *testing.T) {
	cov, levels := buildCovering(t, []poset.Pair[string]{{A: "a", B: "b"}, {A: "a", B: "c"}})
	l := Build(cov, levels, Options{NodeSpacing: 2.5, LevelSpacing: 10})

	if got := l.Positions["b"].X; got != -1.25 {
		t.Errorf("X(b) = %v, want -1.25", got)
	}
	if got := l.Positions["c"].X; got != 1.25 {
		t.Errorf("X(c) = %v, want 1.25", got)
	}
	if got := l.Positions["b"].Y; got != 10 {
		t.Errorf("Y(b) = %v, want 10", got)
	}
}

func TestBuild_RowsKeepFirstAppearanceOrder(t *testing.T) {
	cov, levels := buildCovering(t, []poset.Pair[string]{
		{A: "root", B: "zebra"}, {A: "root", B: "apple"},
	})
	l := Build(cov, levels, Options{})

	row := l.Rows[1]
	if len(row) != 2 || row[0] != "zebra" || row[1] != "apple" {
		t.Errorf("Rows[1] = %v, want [zebra apple]", row)
	}
}

func TestBuild_EmptyCovering(t *testing.T) {
	var cov poset.Covering[string]
	l := Build(cov, map[string]int{}, Options{})

	if l.Height() != 0 {
		t.Errorf("Height() = %d, want 0", l.Height())
	}
	if len(l.Positions) != 0 {
		t.Errorf("len(Positions) = %d, want 0", len(l.Positions))
	}
}

func TestBuild_Width(t *testing.T) {
	cov, levels := buildCovering(t, []poset.Pair[string]{
		{A: "a", B: "p"}, {A: "a", B: "q"}, {A: "a", B: "r"}, {A: "p", B: "top"},
	})
	l := Build(cov, levels, Options{})

	if l.Width() != 3 {
		t.Errorf("Width() = %d, want 3", l.Width())
	}
}
