package poset

// Build runs the full pipeline on a relation: close, validate, reduce,
// and assign levels.
//
// It exists as a convenience for callers that want the final skeleton
// without touching the intermediate artifacts. Errors from validation
// unwrap to [ErrNotAPoset]; a [CycleError] from level assignment unwraps
// to [ErrCycle] and indicates an internal fault.
func Build[E comparable](r *Relation[E]) (Covering[E], map[E]int, error) {
	p, err := r.Close().Validate()
	if err != nil {
		return Covering[E]{}, nil, err
	}
	cov := p.Reduce()
	levels, err := cov.Levels()
	if err != nil {
		return Covering[E]{}, nil, err
	}
	return cov, levels, nil
}
