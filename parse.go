package scalp

import "regexp"

// node is the three-phase contract every parse combinator implements
// (spec.md §3 "Parse Nodes"): initialize seeds a fresh accumulator for
// one parse, parse folds one routed token into it, finalize converts
// the accumulator into the node's declared value. Option<T> in the
// original is represented directly by a nil/non-nil `any`: nil means
// None, any other boxed value (including a boxed zero value, e.g.
// false or "") means Some. This only works because no leaf value type
// in this library is itself a nil interface, which holds for every
// primitive, string, slice, and struct the builder can produce.
type node interface {
	initialize(st *state) (any, error)
	parse(acc any, st *state) (any, error)
	finalize(acc any, st *state) (any, error)
}

// validSet compiles an option's Valid(pattern) entries (spec.md §4.2,
// design note "Regex validation set") into one anchored alternation,
// matching the original's "compile all patterns into one alternation
// with anchored entries" note exactly rather than looping over
// separately-compiled patterns.
type validSet struct {
	re *regexp.Regexp
}

func newValidSet(patterns []string) (*validSet, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	alternation := "^(?:"
	for i, p := range patterns {
		if i > 0 {
			alternation += "|"
		}
		alternation += "(?:" + p + ")"
	}
	alternation += ")$"
	re, err := regexp.Compile(alternation)
	if err != nil {
		return nil, err
	}
	return &validSet{re: re}, nil
}

func (v *validSet) matches(s string) bool {
	if v == nil {
		return true
	}
	return v.re.MatchString(s)
}

// valueNode is the Value<T> leaf (spec.md §4.2): it consumes exactly
// one token per call, converting it with convert. tag, when non-nil,
// is the literal substituted when no token is available or the
// popped token fails to convert — the mechanism swizzle-bundled
// boolean flags rely on to mean "present" without an explicit "true"
// argument.
type valueNode[T any] struct {
	convert   func(string) (T, error)
	typeLabel string
	tag       *string
}

func (v *valueNode[T]) initialize(st *state) (any, error) { return nil, nil }

func (v *valueNode[T]) parse(acc any, st *state) (any, error) {
	if acc != nil {
		return nil, st.duplicateOption()
	}
	token, popped := st.arguments.popFront()
	if !popped {
		if v.tag != nil {
			val, err := v.convert(*v.tag)
			if err != nil {
				return nil, st.failedParse(*v.tag)
			}
			return val, nil
		}
		return nil, st.missingOption()
	}
	if st.set != nil && !st.set.matches(token) {
		return nil, st.invalidOption(token)
	}
	val, err := v.convert(token)
	if err == nil {
		return val, nil
	}
	if v.tag != nil {
		st.arguments.pushFront(token)
		tagVal, tagErr := v.convert(*v.tag)
		if tagErr != nil {
			return nil, st.failedParse(*v.tag)
		}
		return tagVal, nil
	}
	return nil, st.failedParse(token)
}

func (v *valueNode[T]) finalize(acc any, st *state) (any, error) { return acc, nil }

// requireNode turns a missing Option<T> into MissingRequiredValue at
// finalize time, the Require<P> decorator (spec.md §4.2).
type requireNode[T any] struct{ child node }

func (r *requireNode[T]) initialize(st *state) (any, error) { return r.child.initialize(st) }
func (r *requireNode[T]) parse(acc any, st *state) (any, error) {
	return r.child.parse(acc, st)
}
func (r *requireNode[T]) finalize(acc any, st *state) (any, error) {
	v, err := r.child.finalize(acc, st)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, st.missingRequired()
	}
	return v, nil
}

// defaultNode substitutes make() for a missing Option<T> at finalize
// time, the Default<P> decorator.
type defaultNode[T any] struct {
	child node
	make  func() T
}

func (d *defaultNode[T]) initialize(st *state) (any, error) { return d.child.initialize(st) }
func (d *defaultNode[T]) parse(acc any, st *state) (any, error) {
	return d.child.parse(acc, st)
}
func (d *defaultNode[T]) finalize(acc any, st *state) (any, error) {
	v, err := d.child.finalize(acc, st)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return d.make(), nil
	}
	return v, nil
}

// environmentNode substitutes a converted environment variable for a
// missing Option<T> at finalize time, the Environment<P> decorator.
// CLI wins over the variable (spec.md §8 "Environment fallback").
type environmentNode[T any] struct {
	child    node
	variable string
	convert  func(string) (T, error)
}

func (e *environmentNode[T]) initialize(st *state) (any, error) { return e.child.initialize(st) }
func (e *environmentNode[T]) parse(acc any, st *state) (any, error) {
	return e.child.parse(acc, st)
}
func (e *environmentNode[T]) finalize(acc any, st *state) (any, error) {
	v, err := e.child.finalize(acc, st)
	if err != nil {
		return nil, err
	}
	if v != nil {
		return v, nil
	}
	raw, set := st.environment[e.variable]
	if !set {
		return nil, nil
	}
	val, cerr := e.convert(raw)
	if cerr != nil {
		return nil, &FailedToParseEnvironmentVariable{
			Variable: e.variable,
			Value:    raw,
			Type:     st.typeName(),
			Key:      st.currentKey(),
		}
	}
	return val, nil
}

// manyNode repeatedly drives child across an invocation, stopping on
// cap, on the next recognized key, on an empty queue, or on the
// child's own error (spec.md §4.2 Many<P,I,New,Add> and §8's
// "many(cap=None) accumulates exactly the tokens supplied per
// invocation"). Accumulation persists across separate invocations of
// the same slot (acc carries the running []T between routing hits),
// but the zero-new-items check is per invocation: a CLI occurrence of
// the flag that yields nothing new is still an error even if a prior
// occurrence already contributed items.
type manyNode[T any] struct {
	child *valueNode[T]
	cap   *int
}

func (m *manyNode[T]) initialize(st *state) (any, error) { return nil, nil }

func (m *manyNode[T]) parse(acc any, st *state) (any, error) {
	items, _ := acc.([]T)
	added := 0
	var pendingErr error
	for m.cap == nil || added < *m.cap {
		token, ok := st.arguments.peekFront()
		if !ok {
			break
		}
		if st.isRecognizedKey(token) {
			break
		}
		childAcc, err := m.child.initialize(st)
		if err == nil {
			childAcc, err = m.child.parse(childAcc, st)
		}
		var finalized any
		if err == nil {
			finalized, err = m.child.finalize(childAcc, st)
		}
		if err != nil {
			pendingErr = err
			break
		}
		if finalized == nil {
			break
		}
		items = append(items, finalized.(T))
		added++
	}
	if added == 0 {
		if pendingErr != nil {
			return nil, pendingErr
		}
		return nil, st.missingOption()
	}
	return items, nil
}

func (m *manyNode[T]) finalize(acc any, st *state) (any, error) { return acc, nil }

// mapNode post-processes a finalized value, the Map<P,F> decorator.
// f operates on the erased value directly; the generic wrapper
// exposed to callers (builder.go's Map[T, U]) supplies a type-safe f.
type mapNode struct {
	child node
	f     func(any) (any, error)
}

func (n *mapNode) initialize(st *state) (any, error) { return n.child.initialize(st) }
func (n *mapNode) parse(acc any, st *state) (any, error) {
	return n.child.parse(acc, st)
}
func (n *mapNode) finalize(acc any, st *state) (any, error) {
	v, err := n.child.finalize(acc, st)
	if err != nil {
		return nil, err
	}
	return n.f(v)
}

// filterNode turns a value failing pred into None, the Filter<P>
// decorator (spec.md §9 open question: filter's None path is left to
// a downstream decorator, which is exactly how this is composed —
// typically wrapped again in Default or Require).
type filterNode struct {
	child node
	pred  func(any) bool
}

func (n *filterNode) initialize(st *state) (any, error) { return n.child.initialize(st) }
func (n *filterNode) parse(acc any, st *state) (any, error) {
	return n.child.parse(acc, st)
}
func (n *filterNode) finalize(acc any, st *state) (any, error) {
	v, err := n.child.finalize(acc, st)
	if err != nil {
		return nil, err
	}
	if v == nil || !n.pred(v) {
		return nil, nil
	}
	return v, nil
}

// orNode substitutes a second parser's result when the first yields
// None at finalize, without consulting either parser's error: Or<P,
// Q> tries p fully (including its own parse-phase token consumption)
// then falls back to q only if p finalized empty.
type orNode struct {
	first, second node
}

func (n *orNode) initialize(st *state) (any, error) {
	a, err := n.first.initialize(st)
	if err != nil {
		return nil, err
	}
	b, err := n.second.initialize(st)
	if err != nil {
		return nil, err
	}
	return [2]any{a, b}, nil
}

func (n *orNode) parse(acc any, st *state) (any, error) {
	pair := acc.([2]any)
	a, err := n.first.parse(pair[0], st)
	if err != nil {
		return nil, err
	}
	pair[0] = a
	return pair, nil
}

func (n *orNode) finalize(acc any, st *state) (any, error) {
	pair := acc.([2]any)
	a, err := n.first.finalize(pair[0], st)
	if err != nil {
		return nil, err
	}
	if a != nil {
		return a, nil
	}
	b, err := n.second.finalize(pair[1], st)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *state) currentIndexSlot() int {
	if s.index == nil {
		return -1
	}
	return *s.index
}
