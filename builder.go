package scalp

import (
	"fmt"
	"strconv"
	"time"
)

// ValueHandle is the typed handle returned by Parse and threaded
// through every post-processor (spec.md §4.2 "each returns a new
// typed builder with parse-node changed accordingly"). It stands in
// for the original's refined Option<Scope, Value<T>> type: the
// wrapping methods below (Default, Require, Environment, ...) replace
// option.result with a new wrapping node, Valid/Swizzle/Position only
// add Meta, and all of them return a handle over the same type
// parameter. Map, TryMap and Many change T and so must be free functions
// (spec.md §9 "Phantom type markers" — Go enforces the same "only
// call this once the value type is known" contract by construction,
// since a ValueHandle[T] only exists once Parse[T] produced one).
type ValueHandle[T any] struct {
	option  *Option
	convert func(string) (T, error)
	node    node
}

// Parse refines o into a typed Value[T] (spec.md §4.2 "parse<T>()"),
// recording typeLabel as the option's Meta::Type for help/error text.
func Parse[T any](o *Option, typeLabel string, convert func(string) (T, error)) *ValueHandle[T] {
	o.push(metaType(typeLabel))
	leaf := &valueNode[T]{convert: convert, typeLabel: typeLabel}
	o.result = leaf
	return &ValueHandle[T]{option: o, convert: convert, node: leaf}
}

// Flag is the common case of Parse[bool]: a bare option with no
// argument means true, matching spec.md §4.2's "a tag value (\"true\")
// only for boolean-typed options" rule.
func Flag(o *Option) *ValueHandle[bool] {
	o.push(metaType("bool"))
	o.hasTag = true
	tag := "true"
	leaf := &valueNode[bool]{convert: parseBool, typeLabel: "bool", tag: &tag}
	o.result = leaf
	return &ValueHandle[bool]{option: o, convert: parseBool, node: leaf}
}

func parseBool(s string) (bool, error)          { return strconv.ParseBool(s) }
func parseInt(s string) (int, error)            { return strconv.Atoi(s) }
func parseFloat(s string) (float64, error)      { return strconv.ParseFloat(s, 64) }
func parseString(s string) (string, error)      { return s, nil }
func parseDuration(s string) (time.Duration, error) { return time.ParseDuration(s) }

// String, Int, Float, and Duration are the ready-made Parse[T] calls
// for the conversions every grammar needs, mirroring the original
// crate's blanket FromStr-based parse::<T>() with concrete stand-ins
// since Go has no FromStr trait to dispatch on generically.
func String(o *Option) *ValueHandle[string]           { return Parse(o, "string", parseString) }
func Int(o *Option) *ValueHandle[int]                 { return Parse(o, "int", parseInt) }
func Float(o *Option) *ValueHandle[float64]           { return Parse(o, "float", parseFloat) }
func Duration(o *Option) *ValueHandle[time.Duration]  { return Parse(o, "duration", parseDuration) }

func (h *ValueHandle[T]) seal(n node) *ValueHandle[T] {
	h.node = n
	h.option.result = n
	return h
}

// Default wraps h with Default (spec.md §4.2 "default(v)"), adding a
// Meta::Default(label) built from fmt.Sprint of the zero-argument
// constructor's own result so help text shows a concrete value rather
// than a function pointer.
func (h *ValueHandle[T]) Default(make func() T) *ValueHandle[T] {
	h.option.push(metaDefault(fmt.Sprint(make())))
	return h.seal(&defaultNode[T]{child: h.node, make: make})
}

// DefaultWith is default_with(fn, label): the same wrapping with an
// explicit label instead of one derived from the value.
func (h *ValueHandle[T]) DefaultWith(make func() T, label string) *ValueHandle[T] {
	h.option.push(metaDefault(label))
	return h.seal(&defaultNode[T]{child: h.node, make: make})
}

// Require wraps h with Require (spec.md §4.2 "require()").
func (h *ValueHandle[T]) Require() *ValueHandle[T] {
	h.option.push(metaRequire())
	return h.seal(&requireNode[T]{child: h.node})
}

// Environment wraps h with Environment using h's own converter
// (spec.md §4.2 "environment(var)").
func (h *ValueHandle[T]) Environment(variable string) *ValueHandle[T] {
	h.option.push(metaEnvironment(variable))
	return h.seal(&environmentNode[T]{child: h.node, variable: variable, convert: h.convert})
}

// EnvironmentWith is environment_with(var, parse): the same wrapping
// with an explicit conversion instead of h's own.
func (h *ValueHandle[T]) EnvironmentWith(variable string, convert func(string) (T, error)) *ValueHandle[T] {
	h.option.push(metaEnvironment(variable))
	return h.seal(&environmentNode[T]{child: h.node, variable: variable, convert: convert})
}

// Valid adds a Valid(pattern) Meta (spec.md §4.2 "valid(pattern)").
// The pattern is recorded as metadata only: neither the builder nor
// Build compiles it (newValidSet is not called), and tokens routed to
// this option are not checked against it.
func (h *ValueHandle[T]) Valid(pattern string) *ValueHandle[T] {
	h.option.push(metaValid(pattern))
	return h
}

// Swizzle marks the option eligible for short-flag bundling (spec.md
// §4.2 "swizzle()"); when the enclosing Option scope closes (scope.go
// nodeOption) the builder checks that the option has a short name. The
// option's value type is not checked.
func (h *ValueHandle[T]) Swizzle() *ValueHandle[T] {
	h.option.push(metaSwizzle())
	return h
}

// Position marks the option as a positional slot (spec.md §4.2
// "position()"): it is filled by the next token descend's scan
// couldn't match to any key, in declaration order.
func (h *ValueHandle[T]) Position() *ValueHandle[T] {
	h.option.push(metaPosition())
	return h
}

// Or falls back to second's own result when h finalizes empty,
// without ever inspecting either side's error — the Or<P, Q>
// combinator (spec.md §4.2 "or").
func Or[T any](h, second *ValueHandle[T]) *ValueHandle[T] {
	return h.seal(&orNode{first: h.node, second: second.node})
}

// Any is the At-tuple-level collapse spec.md §4.2 calls "any": the
// original's Any<T> trait is implemented directly on a tuple of
// Option<T> values, `impl<T, P0..Pn: Into<T>> Any<T> for
// (Option<P0>,...,Option<Pn>)` (original_source/src/parse.rs), picking
// the first Some across several *separately-routed* slots — not a
// decorator over one Option's own token. docker.rs's
// `.map(|(attach, kill)| attach.or(kill))` is the original's own
// worked example of exactly this: two independent verbs ("attach",
// "kill"), each finalizing to an Option<Command>, folded into one
// Command by first-Some. Any is the Go equivalent operating directly
// on a Build combine callback's row: pass it row entries (each nil or
// a boxed T) from two or more separately declared Option/Verb
// children, in priority order.
func Any[T any](candidates ...any) *T {
	for _, c := range candidates {
		if c == nil {
			continue
		}
		v := c.(T)
		return &v
	}
	return nil
}

// AnyOr is any_or: Any immediately composed with a fallback value,
// sparing the caller a separate nil check.
func AnyOr[T any](fallback func() T, candidates ...any) T {
	if v := Any[T](candidates...); v != nil {
		return *v
	}
	return fallback()
}

// Filter turns a value failing pred into None (spec.md §4.2 "filter");
// per spec.md §9's open question, the None path is left for a
// subsequent Default/Require to handle.
func Filter[T any](h *ValueHandle[T], pred func(T) bool) *ValueHandle[T] {
	return h.seal(&filterNode{child: h.node, pred: func(v any) bool { return pred(v.(T)) }})
}

// FilterOr is filter_or: Filter immediately composed with a fallback
// value, sparing the caller a separate Default call.
func FilterOr[T any](h *ValueHandle[T], pred func(T) bool, fallback func() T) *ValueHandle[T] {
	return Filter(h, pred).Default(fallback)
}

// Map transforms a finalized T into a U (spec.md §4.2 "map(f)"). It
// must be a free function: Go methods cannot introduce a second type
// parameter distinct from the receiver's.
func Map[T, U any](h *ValueHandle[T], f func(T) U) *ValueHandle[U] {
	n := &mapNode{child: h.node, f: func(v any) (any, error) {
		if v == nil {
			return nil, nil
		}
		return f(v.(T)), nil
	}}
	h.option.result = n
	return &ValueHandle[U]{option: h.option, node: n}
}

// TryMap is try_map(f): like Map but f can itself fail; f's error is
// returned unchanged from finalize.
func TryMap[T, U any](h *ValueHandle[T], f func(T) (U, error)) *ValueHandle[U] {
	n := &mapNode{child: h.node, f: func(v any) (any, error) {
		if v == nil {
			return nil, nil
		}
		u, err := f(v.(T))
		if err != nil {
			return nil, err
		}
		return u, nil
	}}
	h.option.result = n
	return &ValueHandle[U]{option: h.option, node: n}
}

// Many wraps h's own leaf with Many (spec.md §4.2 "many(cap?)"); it
// must be a free function since the result type becomes []T. h must
// be a bare Parse/Flag result (not yet Default/Require/etc wrapped) —
// the original composes Many directly over the leaf Value<T> too.
func Many[T any](h *ValueHandle[T], cap *int) *ValueHandle[[]T] {
	leaf, ok := h.node.(*valueNode[T])
	if !ok {
		h.option.fail(&MissingOptionNameOrPosition{})
		return &ValueHandle[[]T]{option: h.option}
	}
	h.option.push(metaMany(capLabel(cap)))
	m := &manyNode[T]{child: leaf, cap: cap}
	h.option.result = m
	return &ValueHandle[[]T]{option: h.option, node: m}
}

// Pipe applies f to h and returns its result (spec.md §4.2 "pipe";
// original_source/src/build.rs:51 `fn pipe`), letting a caller factor
// a reusable chain of post-processors (Default+Environment+Valid, say)
// into one function shared by several Option declarations instead of
// repeating the chain inline at every call site.
func Pipe[T any](h *ValueHandle[T], f func(*ValueHandle[T]) *ValueHandle[T]) *ValueHandle[T] {
	return f(h)
}

// Boxed is boxed() (original_source/src/build.rs:432): in the original
// it erases P's concrete parse-node type behind a Box<dyn Parse<...>>
// so a Builder's type parameter doesn't balloon across many
// combinators. ValueHandle.node is already stored as the node
// interface rather than a concrete generic type, so there is nothing
// left to erase; Boxed is kept as an identity so a grammar built the
// same shape as the original still reads the same way.
func Boxed[T any](h *ValueHandle[T]) *ValueHandle[T] {
	return h
}

func capLabel(cap *int) string {
	if cap == nil {
		return ""
	}
	return strconv.Itoa(*cap)
}
