package scalp

import (
	"fmt"
	"strings"
)

// Every user-facing failure is a concrete struct implementing error,
// the way the teacher represents failures as a typed CLIError rather
// than opaque strings (internal/core.CLIError in termfx-morfx). The
// four control-flow sentinels are not failures: they are requests,
// made by Node.parse when a routing key resolves to a reserved
// sentinel index, for the caller to render Rendered and show it.

// Help is returned when a help option or the implicit --help/-h was
// matched. Rendered carries the help text of the node whose key was
// matched (depth 1 only), rendered by that node when the key is hit.
type Help struct{ Rendered string }

func (e *Help) Error() string { return "help requested" }

// Version is returned when a version option was matched.
type Version struct{ Rendered string }

func (e *Version) Error() string { return "version requested" }

// License is returned when a license option was matched.
type License struct{ Rendered string }

func (e *License) Error() string { return "license requested" }

// Author is returned when an author option was matched.
type Author struct{ Rendered string }

func (e *Author) Error() string { return "author requested" }

// MissingOptionValue is returned when an option's value slot could not
// be filled from the argument stream and it had no implicit tag.
type MissingOptionValue struct {
	Type string // type label, e.g. "int"; empty if unknown
	Key  string // e.g. "--config"; empty if unknown
}

func (e *MissingOptionValue) Error() string {
	return fmt.Sprintf("missing value for option %s%s", e.keyOrBlank(), e.typeSuffix())
}

func (e *MissingOptionValue) keyOrBlank() string {
	if e.Key == "" {
		return "<unknown>"
	}
	return e.Key
}

func (e *MissingOptionValue) typeSuffix() string {
	if e.Type == "" {
		return ""
	}
	return fmt.Sprintf(" (%s)", e.Type)
}

// MissingRequiredValue is returned by Require's finalize when the
// wrapped option never produced a value.
type MissingRequiredValue struct{ Key string }

func (e *MissingRequiredValue) Error() string {
	return fmt.Sprintf("missing required value for %s", orUnknown(e.Key))
}

// DuplicateOption is returned when a Value<T> slot receives a second
// token across two separate routing hits within one parse.
type DuplicateOption struct{ Key string }

func (e *DuplicateOption) Error() string {
	return fmt.Sprintf("duplicate value for option %s", orUnknown(e.Key))
}

// DuplicateNode is returned when a Node slot is routed into twice
// within a single parse (e.g. the same verb named on the line twice).
type DuplicateNode struct{}

func (e *DuplicateNode) Error() string { return "duplicate node" }

// InvalidOptionValue is returned when a token was popped for an
// option but failed its attached validation pattern set.
type InvalidOptionValue struct {
	Value string
	Key   string
}

func (e *InvalidOptionValue) Error() string {
	return fmt.Sprintf("invalid value %q for %s", e.Value, orUnknown(e.Key))
}

// FailedToParseOptionValue is returned when a token matched validation
// (or no validation was attached) but the string-to-T conversion failed.
type FailedToParseOptionValue struct {
	Value string
	Type  string
	Key   string
}

func (e *FailedToParseOptionValue) Error() string {
	return fmt.Sprintf("failed to parse %q as %s for %s", e.Value, orUnknown(e.Type), orUnknown(e.Key))
}

// FailedToParseEnvironmentVariable is returned when an Environment
// decorator fell back to a set variable, but the conversion failed.
type FailedToParseEnvironmentVariable struct {
	Variable string
	Value    string
	Type     string
	Key      string
}

func (e *FailedToParseEnvironmentVariable) Error() string {
	return fmt.Sprintf("failed to parse environment variable %s=%q as %s for %s",
		e.Variable, e.Value, orUnknown(e.Type), orUnknown(e.Key))
}

// UnrecognizedArgument is returned when a popped key resolves to
// neither an index-table entry nor a remaining positional slot.
type UnrecognizedArgument struct {
	Name        string
	Suggestions []string
}

func (e *UnrecognizedArgument) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unrecognized argument %q", e.Name)
	}
	return fmt.Sprintf("unrecognized argument %q, did you mean: %s?", e.Name, strings.Join(e.Suggestions, ", "))
}

// InvalidSwizzleOption is returned when a bundled short-flag character
// (e.g. the 'x' in "-abx") is not in the enclosing node's swizzle set.
type InvalidSwizzleOption struct{ Char rune }

func (e *InvalidSwizzleOption) Error() string {
	return fmt.Sprintf("invalid swizzle option %q", e.Char)
}

// ExcessArguments is returned when tokens remain in the queue after
// the root node's parse has returned.
type ExcessArguments struct{ Remaining []string }

func (e *ExcessArguments) Error() string {
	return fmt.Sprintf("excess arguments: %s", strings.Join(e.Remaining, " "))
}

// FailedToParseArguments is returned when the root Node produced no
// value at all (its internal Option was None).
type FailedToParseArguments struct{}

func (e *FailedToParseArguments) Error() string { return "failed to parse arguments" }

// MissingIndex and InvalidIndex are raised by the At tuple combinator;
// they indicate a builder/internal bug rather than bad user input.
type MissingIndex struct{}

func (e *MissingIndex) Error() string { return "missing routing index" }

type InvalidIndex struct{ Index int }

func (e *InvalidIndex) Error() string { return fmt.Sprintf("invalid routing index %d", e.Index) }

// MissingVerb is a user-composition error: the application declared a
// verb-shaped grammar but the value it expected to receive from a verb
// slot was never populated.
type MissingVerb struct{}

func (e *MissingVerb) Error() string { return "missing verb" }

// --- configuration (build-time) errors ---

// DuplicateName is raised by descend when two names in the same Node
// resolve to the same normalized key.
type DuplicateName struct{ Name string }

func (e *DuplicateName) Error() string { return fmt.Sprintf("duplicate name %q", e.Name) }

// MissingVerbName is raised when a Verb scope closes without any Name.
type MissingVerbName struct{}

func (e *MissingVerbName) Error() string { return "verb is missing a name" }

// MissingOptionNameOrPosition is raised when an Option scope closes
// with neither a Name nor a Position marker.
type MissingOptionNameOrPosition struct{}

func (e *MissingOptionNameOrPosition) Error() string {
	return "option is missing a name or a position marker"
}

// MissingShortOptionNameForSwizzling is raised when swizzle() is
// called on an option with no short name.
type MissingShortOptionNameForSwizzling struct{}

func (e *MissingShortOptionNameForSwizzling) Error() string {
	return "option marked swizzle has no short name"
}

// GroupNestingLimitOverflow is raised when descend would exceed the
// maximum Group nesting depth (see index.go maxDepth).
type GroupNestingLimitOverflow struct{}

func (e *GroupNestingLimitOverflow) Error() string { return "group nesting limit exceeded" }

// InvalidPrefix is raised when the short/long prefixes supplied to the
// builder are empty, equal, or contain alphanumeric characters.
type InvalidPrefix struct{ Prefix string }

func (e *InvalidPrefix) Error() string { return fmt.Sprintf("invalid prefix %q", e.Prefix) }

// InvalidOptionName and InvalidVerbName are raised when name() is
// called with whitespace or non-ASCII content.
type InvalidOptionName struct{ Name string }

func (e *InvalidOptionName) Error() string { return fmt.Sprintf("invalid option name %q", e.Name) }

type InvalidVerbName struct{ Name string }

func (e *InvalidVerbName) Error() string { return fmt.Sprintf("invalid verb name %q", e.Name) }

// TooManyChildren is raised when a single scope accumulates more than
// maxChildren (32) group/verb/option children (spec.md §4.2, the
// "overflow stack" bound translated to a runtime arity check).
type TooManyChildren struct{}

func (e *TooManyChildren) Error() string { return "too many children declared on one node" }

func orUnknown(s string) string {
	if s == "" {
		return "<unknown>"
	}
	return s
}
