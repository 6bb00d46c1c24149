package poset_test

import (
	"fmt"

	"github.com/matzehuels/hasseviz/pkg/poset"
)

func ExampleBuild() {
	// Task prerequisites: 0 before 1 and 2, both before 3.
	r := poset.NewRelation([]poset.Pair[int]{
		{A: 0, B: 1},
		{A: 0, B: 2},
		{A: 1, B: 3},
		{A: 2, B: 3},
		{A: 0, B: 3}, // implied; removed by reduction
	})

	cov, levels, err := poset.Build(r)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, e := range cov.Edges() {
		fmt.Printf("%d covers %d\n", e.B, e.A)
	}
	fmt.Println("level of 3:", levels[3])
	// Output:
	// 1 covers 0
	// 2 covers 0
	// 3 covers 1
	// 3 covers 2
	// level of 3: 2
}

func ExampleClosed_Validate() {
	r := poset.NewRelation([]poset.Pair[string]{
		{A: "draft", B: "review"},
		{A: "review", B: "draft"},
	})

	_, err := r.Close().Validate()
	fmt.Println(err)
	// Output:
	// antisymmetry violated: both draft ≤ review and review ≤ draft
}
