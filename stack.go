package scalp

// atNode is the Go stand-in for the original's compile-time
// heterogeneous tuple combinator At<(P0,...,Pn)> (spec.md §9,
// "Heterogeneous compile-time tuples"): a type-erased, runtime-typed
// vector of child parsers, one per declared child position, fed
// through a caller-supplied finalizer rather than a generated tuple
// type. maxChildren bounds its arity the same way the packed index
// scheme bounds fan-out per Node (spec.md §3).
type atNode struct {
	children []node
	combine  func([]any) (any, error)
}

// newAt builds an atNode over children, applying combine to the
// finalized per-slot values (nil slots included) to produce the
// node's declared value. combine is supplied by the builder layer —
// typically a finalizer constructing the caller's tuple/struct type
// (spec.md §9: "the build returns a function producing a value of
// the caller's choice through a builder-supplied finalizer").
func newAt(combine func([]any) (any, error), children ...node) (*atNode, error) {
	if len(children) > maxChildren {
		return nil, &TooManyChildren{}
	}
	return &atNode{children: children, combine: combine}, nil
}

func (a *atNode) initialize(st *state) (any, error) {
	accs := make([]any, len(a.children))
	for i, c := range a.children {
		acc, err := c.initialize(st)
		if err != nil {
			return nil, err
		}
		accs[i] = acc
	}
	return accs, nil
}

// parse routes to exactly one child, selected by the packed index
// bound in st.index for this dispatch step (spec.md §4.4 "Index
// Table"). spec.md §4.3 distinguishes the two ways that binding can be
// wrong: MissingIndex when the dispatch step never bound st.index at
// all, InvalidIndex when it bound one but the low slot exceeds this
// tuple's own arity — the latter is a driver bug, not a user error,
// since it can only arise from a stale Indices table.
func (a *atNode) parse(acc any, st *state) (any, error) {
	accs := acc.([]any)
	if st.index == nil {
		return nil, &MissingIndex{}
	}
	i := st.currentIndexSlot()
	if i < 0 || i >= len(a.children) {
		return nil, &InvalidIndex{Index: i}
	}
	updated, err := a.children[i].parse(accs[i], st)
	if err != nil {
		return nil, err
	}
	accs[i] = updated
	return accs, nil
}

// finalize converts every child's accumulator into its declared value
// and hands the full row to combine. Group children have already been
// flattened into this same slot list at build time (scope.go
// nodeGroup), so no splicing is needed here.
func (a *atNode) finalize(acc any, st *state) (any, error) {
	accs := acc.([]any)
	values := make([]any, len(a.children))
	for i, c := range a.children {
		v, err := c.finalize(accs[i], st)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return a.combine(values)
}
