package scalp

import (
	"fmt"
	"os"
)

// dispatchNode is the executable Node routing frame (spec.md §4.4):
// one per Root or Verb (Group is flattened away at build time, see
// scope.go nodeGroup). initialize/parse/finalize run exactly once each
// per call site — parse owns the entire scanning loop over every token
// that belongs to this node's own level, the same "Node.parse owns the
// whole loop in one call" contract Many uses for its own per-invocation
// loop.
//
// nested is false only for the tree's single outermost Root dispatch.
// A Verb's own dispatch is always nested: when it can't resolve a
// token against its own keys or positions, it pushes the token back
// and returns control to whichever loop invoked it (scenario 2's
// `["-a","1","c","-b","2"]` relies on this — "-b" is declared on the
// root, not verb "c", and must bubble back out to be resolved there).
// Only the genuinely outermost frame has nobody left to hand an
// unresolved token to, so only it raises UnrecognizedArgument.
type dispatchNode struct {
	meta     *Meta
	ix       *indices
	tuple    *atNode
	nested   bool
	prefixes prefixes
}

// buildDispatch assembles a dispatchNode from a sealed scope: metas is
// the scope's full Meta list (for Options placeholders and help
// rendering), children/childMetas are index-aligned (one pair per
// Option/Verb built in this scope; Group contents are already
// flattened in by the time a scope closes).
func buildDispatch(metas []Meta, children []node, childMetas []Meta, nested bool, prefixes prefixes, combine func([]any) (any, error)) (*dispatchNode, error) {
	ix := newIndices()
	for i, cm := range childMetas {
		switch cm.Kind {
		case MetaOption:
			for _, n := range cm.Children {
				if n.Kind != MetaName {
					continue
				}
				if err := ix.insert(prefixed(n, prefixes), i); err != nil {
					return nil, err
				}
			}
			if hasPosition(cm.Children) {
				ix.addPosition(i)
			}
			if hasSwizzle(cm.Children) {
				for _, n := range cm.Children {
					if n.Kind == MetaName && n.NameKind == Short {
						ix.addSwizzle([]rune(n.Text)[0])
					}
				}
			}
		case MetaVerb:
			for _, n := range cm.names() {
				if err := ix.insert(n, i); err != nil {
					return nil, err
				}
			}
		}
	}

	for _, m := range metas {
		if m.Kind != MetaOptionsPlaceholder {
			continue
		}
		if err := registerOptionsPlaceholder(ix, prefixes, m.Options); err != nil {
			return nil, err
		}
	}
	if hasVisibleControlFlow(metas) {
		// The long prefix alone forces scan termination once a visible
		// Help/Version/Usage/Note or Options placeholder is declared at
		// this level, per spec.md §4.2 descend's note.
		ix.byKey[prefixes.long] = sentinelBreak
	}

	nameMeta := &Meta{Kind: MetaRoot, Children: metas}

	tuple, err := newAt(combine, children...)
	if err != nil {
		return nil, err
	}
	return &dispatchNode{meta: nameMeta, ix: ix, tuple: tuple, nested: nested, prefixes: prefixes}, nil
}

// prefixed renders a Name meta's raw text the way it appears on the
// command line: a Short name gets the configured short prefix, a Long
// name gets the configured long prefix (spec.md §4.2 "name(s)"; §4.2/
// §6 "short and long prefix strings" — defaulted to "-"/"--" by
// defaultPrefixes, overridable via Root.Prefixes — verb names are
// Plain and never prefixed, handled separately in buildDispatch's
// MetaVerb case).
func prefixed(n Meta, p prefixes) string {
	switch n.NameKind {
	case Short:
		return p.short + n.Text
	case Long:
		return p.long + n.Text
	default:
		return n.Text
	}
}

// hasVisibleControlFlow reports whether metas declares a Help/Version/
// Usage/Note or Options placeholder while the Hide/Show counter is
// zero (spec.md §3 "Hide/Show... bump a visibility counter during
// traversal"; §4.2 descend's "if any Version/Help/Usage/Note was seen
// at the visible level, a BREAK sentinel is also registered"),
// tracking the same running counter as visibilityAfter (meta.go).
func hasVisibleControlFlow(metas []Meta) bool {
	counter := 0
	for _, m := range metas {
		switch m.Kind {
		case MetaHide:
			counter++
		case MetaShow:
			if counter > 0 {
				counter--
			}
		case MetaHelp, MetaVersion, MetaUsage, MetaNote, MetaOptionsPlaceholder:
			if counter == 0 {
				return true
			}
		}
	}
	return false
}

func registerOptionsPlaceholder(ix *indices, p prefixes, o Options) error {
	var short, long string
	var sentinel int
	switch o.Kind {
	case OptionsHelp:
		short, long, sentinel = "h", "help", sentinelHelp
	case OptionsVersion:
		short, long, sentinel = "V", "version", sentinelVersion
	case OptionsLicense:
		short, long, sentinel = "L", "license", sentinelLicense
	case OptionsAuthor:
		short, long, sentinel = "A", "author", sentinelAuthor
	}
	if o.Short {
		if err := ix.insert(p.short+short, sentinel); err != nil {
			return err
		}
		ix.addSwizzle([]rune(short)[0])
	}
	if o.Long {
		if err := ix.insert(p.long+long, sentinel); err != nil {
			return err
		}
	}
	return nil
}

func (d *dispatchNode) initialize(st *state) (any, error) { return d.tuple.initialize(st) }

func (d *dispatchNode) parse(acc any, st *state) (any, error) {
	local := st.with(d.meta, nil, nil, nil)
	local.recognized = make(map[string]bool, len(d.ix.byKey))
	for k := range d.ix.byKey {
		local.recognized[k] = true
	}
	position := 0
	broken := false
	for {
		var key string
		var popped bool
		var err error
		if broken {
			key, popped = local.arguments.popFront()
		} else {
			key, popped, err = local.nextKey(d.ix.swizzles)
			if err != nil {
				return nil, err
			}
		}
		if !popped {
			return acc, nil
		}

		if !broken {
			if idx, found := d.ix.lookup(key); found {
				if idx == sentinelBreak {
					broken = true
					continue
				}
				if sentinelErr := d.sentinelFor(idx); sentinelErr != nil {
					return nil, sentinelErr
				}
				dispatchState := local.with(nil, nil, &key, &idx)
				acc, err = d.tuple.parse(acc, &dispatchState)
				if err != nil {
					return nil, err
				}
				continue
			}
		}

		if position < len(d.ix.positions) {
			idx := d.ix.positions[position]
			position++
			local.restore(key)
			dispatchState := local.with(nil, nil, nil, &idx)
			acc, err = d.tuple.parse(acc, &dispatchState)
			if err != nil {
				return nil, err
			}
			continue
		}

		if broken || d.nested {
			local.restore(key)
			return acc, nil
		}

		return nil, &UnrecognizedArgument{Name: key, Suggestions: suggest(key, d.ix.keys(), suggestionBudget(key))}
	}
}

func (d *dispatchNode) finalize(acc any, st *state) (any, error) {
	local := st.with(d.meta, nil, nil, nil)
	return d.tuple.finalize(acc, &local)
}

func (d *dispatchNode) sentinelFor(idx int) error {
	switch idx {
	case sentinelHelp:
		return &Help{Rendered: renderHelp(d.meta, d.prefixes)}
	case sentinelVersion:
		return &Version{Rendered: renderVersion(d.meta)}
	case sentinelLicense:
		return &License{Rendered: renderLicense(d.meta)}
	case sentinelAuthor:
		return &Author{Rendered: renderAuthor(d.meta)}
	default:
		return nil
	}
}

// verbNode wraps a Verb's own dispatchNode so it behaves, from its
// parent's point of view, like any other Option<T> slot: nil until
// the verb's name is matched, at which point this single parse call
// drives the verb's entire nested scan and finalize immediately. A
// token the verb cannot resolve is handed back to the parent's scan
// (see dispatchNode.nested), but the verb's own value is already final
// by then. Routing into the same verb a second time is DuplicateNode.
type verbNode struct {
	inner *dispatchNode
}

func (v *verbNode) initialize(st *state) (any, error) { return nil, nil }

func (v *verbNode) parse(acc any, st *state) (any, error) {
	if acc != nil {
		return nil, &DuplicateNode{}
	}
	innerAcc, err := v.inner.initialize(st)
	if err != nil {
		return nil, err
	}
	innerAcc, err = v.inner.parse(innerAcc, st)
	if err != nil {
		return nil, err
	}
	result, err := v.inner.finalize(innerAcc, st)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (v *verbNode) finalize(acc any, st *state) (any, error) { return acc, nil }

// Parser is the built, reusable entry point returned by Build
// (spec.md §5 "a built Parser is safe to reuse concurrently"): it
// holds no mutable state of its own, only the assembled dispatch tree
// and a finalizer translating the root's raw value row into T.
type Parser[T any] struct {
	root     *dispatchNode
	combine  func([]any) (T, error)
	prefixes prefixes
}

// ParseWith runs exactly one initialize+parse+finalize pass over
// arguments against environment (spec.md §5 "Driver"), returning the
// caller's T or one of the errors in errors.go. A non-empty argument
// queue left over after a full, error-free pass is ExcessArguments.
func (p *Parser[T]) ParseWith(arguments []string, environment map[string]string) (T, error) {
	var zero T
	st := &state{
		arguments:   newDeque(append([]string{}, arguments...)),
		environment: environment,
		short:       p.prefixes.short,
		long:        p.prefixes.long,
	}
	acc, err := p.root.initialize(st)
	if err != nil {
		return zero, err
	}
	acc, err = p.root.parse(acc, st)
	if err != nil {
		return zero, err
	}
	if st.arguments.len() > 0 {
		return zero, &ExcessArguments{Remaining: st.arguments.snapshot()}
	}
	result, err := p.root.finalize(acc, st)
	if err != nil {
		return zero, err
	}
	row, ok := result.([]any)
	if !ok {
		return zero, fmt.Errorf("scalp: internal error: root finalize produced %T, want []any", result)
	}
	return p.combine(row)
}

// Parse runs ParseWith against os.Args[1:] and the process environment,
// the convenience entry point most CLI mains use.
func (p *Parser[T]) Parse() (T, error) {
	return p.ParseWith(os.Args[1:], OSEnvironment())
}

// Build seals r into a reusable Parser[T]. combine receives the
// finalized value of every child in declaration order (Group children
// spliced in, per spec.md GLOSSARY) and is responsible for asserting
// each slot to its expected type and assembling the caller's result
// type — the "builder-supplied finalizer" spec.md §9 describes as the
// language-neutral substitute for a generated tuple type.
func Build[T any](r *Root, combine func([]any) (T, error)) (*Parser[T], error) {
	if r.err != nil {
		return nil, r.err
	}
	dispatch, err := buildDispatch(r.metas, r.children, r.childMetas, false, r.prefixes, func(values []any) (any, error) {
		return values, nil
	})
	if err != nil {
		return nil, err
	}
	return &Parser[T]{root: dispatch, combine: combine, prefixes: r.prefixes}, nil
}
