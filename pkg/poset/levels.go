package poset

import "fmt"

// CycleError reports that level assignment could not complete because the
// covering relation is not acyclic. It unwraps to [ErrCycle] and carries
// the number of elements left without a level when the traversal stalled.
type CycleError struct {
	Remaining int
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("covering relation contains a cycle: %d elements unreachable", e.Remaining)
}

func (e *CycleError) Unwrap() error { return ErrCycle }

// Levels assigns each element an integer depth in the covering-relation
// DAG.
//
// Elements with no covering predecessor sit at level 0; every other
// element sits at one plus the maximum level of its predecessors. The
// assignment is computed with a topological pass (Kahn's algorithm), and
// because a level depends only on predecessor levels the result is
// invariant to the particular topological order chosen.
//
// The covering relation of a validated poset is acyclic by construction;
// if the traversal nevertheless stalls, Levels returns a [CycleError],
// which callers should treat as an internal fault rather than a user
// input error.
func (c Covering[E]) Levels() (map[E]int, error) {
	n := len(c.elems)
	inDegree := make([]int, n)
	levels := make([]int, n)
	queue := make([]int, 0, n)

	for i := 0; i < n; i++ {
		inDegree[i] = len(c.in[i])
		if inDegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	processed := 0
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		processed++

		for _, child := range c.out[curr] {
			if lvl := levels[curr] + 1; lvl > levels[child] {
				levels[child] = lvl
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	if processed != n {
		return nil, &CycleError{Remaining: n - processed}
	}

	out := make(map[E]int, n)
	for i, e := range c.elems {
		out[e] = levels[i]
	}
	return out, nil
}
