// Package scalp builds argument parsers from a fluent, typed
// description of a command-line grammar rather than from a struct of
// annotated fields: a Root scope collects names, help text, nested
// groups, verbs and options, each option refining itself from a bare
// scope into a typed ValueHandle[T] through Parse/Default/Require/
// Environment/Many/Map and friends, and Build seals the whole tree
// into a Parser[T] that can be run repeatedly against any argument
// slice and environment map.
//
// A parser built this way owns no global state: the same *Parser[T]
// can be driven concurrently from multiple goroutines, and nothing it
// does depends on os.Args or the process environment unless Parse is
// called instead of ParseWith.
package scalp

// Root starts a new top-level grammar (spec.md §4.2 "the current scope
// object holding an ordered list of Meta nodes"). Chain Name/Help/
// Group/Verb/Option calls on the returned *Root, then pass it to
// Build once the grammar is complete.
func Root() *Root {
	return &Root{frame: frame{prefixes: defaultPrefixes()}}
}
