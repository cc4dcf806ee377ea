package scalp

import "strings"

// deque is a minimal double-ended string queue, standing in for the
// VecDeque<Cow<str>> the original crate threads through parsing. A
// plain slice is sufficient here: the work queue is never longer than
// the input argument count plus swizzle expansions, and push-front is
// only used to restore a rejected token or to queue the single-flag
// tokens a swizzle bundle expands into.
type deque struct {
	items []string
}

func newDeque(items []string) *deque {
	return &deque{items: items}
}

func (d *deque) popFront() (string, bool) {
	if len(d.items) == 0 {
		return "", false
	}
	v := d.items[0]
	d.items = d.items[1:]
	return v, true
}

func (d *deque) peekFront() (string, bool) {
	if len(d.items) == 0 {
		return "", false
	}
	return d.items[0], true
}

func (d *deque) pushFront(v string) {
	d.items = append([]string{v}, d.items...)
}

func (d *deque) len() int { return len(d.items) }

func (d *deque) snapshot() []string {
	out := make([]string, len(d.items))
	copy(out, d.items)
	return out
}

// state is the transient, per-parse context threaded through every
// node's initialize/parse/finalize call (spec.md §3 "Lifecycles").
// Nothing here survives past one ParseWith call; the parser itself
// never mutates it between calls, which is what makes the built
// Parser safe to reuse concurrently (spec.md §5).
type state struct {
	arguments   *deque
	environment map[string]string
	short, long string
	set         *validSet       // current option's compiled validation pattern set, if any
	key         *string         // the key that routed to the current frame, if any
	meta        *Meta           // the innermost With/Node's own Meta, if any
	index       *int            // the routing index bound for the current dispatch step
	recognized  map[string]bool // keys registered on the enclosing Node, consulted by Many to stop greedy consumption
}

// own returns a shallow copy sharing the same queue/environment
// pointers (they are the only genuinely mutable parts of state).
func (s *state) own() state {
	return *s
}

// with returns a copy of s with any non-nil override applied, mirroring
// the original State::with: only the fields a caller actually wants to
// change are touched, everything else carries over from the parent frame.
func (s *state) with(meta *Meta, set *validSet, key *string, index *int) state {
	next := s.own()
	if meta != nil {
		next.meta = meta
	}
	if set != nil {
		next.set = set
	}
	if key != nil {
		next.key = key
	}
	if index != nil {
		next.index = index
	}
	return next
}

// nextKey pops the next routing key off the front of the argument
// queue, recursively expanding short-flag swizzle bundles as it goes
// (spec.md §4.3 "Key lookup with swizzling"). A token such as "-abc"
// bundling flags not present in swizzles is an error; one present in
// swizzles is unbundled into "-a", "-b", "-c" pushed back in order.
func (s *state) nextKey(swizzles map[rune]bool) (string, bool, error) {
	token, ok := s.arguments.popFront()
	if !ok {
		return "", false, nil
	}

	if len(token) > len(s.short)+1 && strings.HasPrefix(token, s.short) && !strings.HasPrefix(token, s.long) {
		bundled := []rune(token[len(s.short):])
		// Push back to front in reverse order so the first bundled
		// character is the next one popped.
		for i := len(bundled) - 1; i >= 0; i-- {
			c := bundled[i]
			if !swizzles[c] {
				return "", false, &InvalidSwizzleOption{Char: c}
			}
			s.arguments.pushFront(s.short + string(c))
		}
		return s.nextKey(swizzles)
	}
	return token, true, nil
}

func (s *state) restore(token string) {
	s.arguments.pushFront(token)
}

// isRecognizedKey reports whether token names a key on the enclosing
// Node, the signal Many uses to stop greedily consuming plain values
// without needing to look inside the Node's own Indices (spec.md §8
// "many(cap=None) accumulates exactly the tokens supplied per
// invocation" — an invocation ends at the next key it would itself
// have routed on).
func (s *state) isRecognizedKey(token string) bool {
	return s.recognized[token]
}

func (s *state) typeName() string {
	if s.meta == nil {
		return ""
	}
	t, _ := s.meta.findText(MetaType)
	return t
}

func (s *state) currentKey() string {
	if s.key == nil {
		return ""
	}
	return *s.key
}

func (s *state) missingOption() error {
	return &MissingOptionValue{Type: s.typeName(), Key: s.currentKey()}
}

func (s *state) missingRequired() error {
	return &MissingRequiredValue{Key: s.currentKey()}
}

func (s *state) duplicateOption() error {
	return &DuplicateOption{Key: s.currentKey()}
}

func (s *state) invalidOption(value string) error {
	return &InvalidOptionValue{Value: value, Key: s.currentKey()}
}

func (s *state) failedParse(value string) error {
	return &FailedToParseOptionValue{Value: value, Type: s.typeName(), Key: s.currentKey()}
}
