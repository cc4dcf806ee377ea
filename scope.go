package scalp

// frame is the shared accumulator behind every scope capability
// (spec.md §5 "Scope capabilities"). The original represents Root,
// Group, Verb and Option as four newtypes over Vec<Meta> gated by
// marker traits (original_source/src/scope.rs); Go has no trait-gated
// method sets, so each capability is instead a distinct named struct
// embedding frame, and the "only available in option scope" rule
// (spec.md §9 "Phantom type markers for scope") is enforced simply by
// which methods a given struct exposes, checked at compile time by
// the Go compiler instead of a phantom type parameter.
type frame struct {
	metas      []Meta
	children   []node
	childMetas []Meta // parallel to children, the container Meta each child was built from
	err        error
	depth      int      // nesting depth from the nearest Root/Verb, enforced against maxDepth on Group
	prefixes   prefixes // inherited from the enclosing scope at construction time; only Root.Prefixes ever changes it
	caseStyle  Case     // inherited the same way; only Root.Case ever changes it, defaults to Kebab (the zero value)
}

func (f *frame) push(m Meta) {
	f.metas = append(f.metas, m)
}

// addChild registers a fully-built child (an Option's leaf node or a
// Verb's dispatch frame; Group children are appended by nodeGroup
// instead) alongside its own container Meta, keeping children and
// childMetas index-aligned for buildDispatch (driver.go) to walk.
func (f *frame) addChild(meta Meta, n node) {
	f.push(meta)
	f.children = append(f.children, n)
	f.childMetas = append(f.childMetas, meta)
}

// fail records the first build-time error seen in this scope; later
// calls are no-ops once an error is set, so a caller can keep chaining
// without checking every intermediate call (the error surfaces at the
// enclosing Build/Verb/Group/Option call instead).
func (f *frame) fail(err error) {
	if f.err == nil {
		f.err = err
	}
}

func (f *frame) ok() bool { return f.err == nil }

// Root is the top-level scope capability: Node (usage/group/verb/
// option/options) and Version (version/summary), plus the leaf meta
// methods shared by every scope.
type Root struct {
	frame
}

// Group is a metadata-only Node-capability scope: it has no Indices
// of its own; its children's names are registered in the enclosing
// root/verb's table and their values are spliced directly into the
// enclosing tuple rather than appearing as one sub-value (spec.md
// GLOSSARY "Group"). Only its nesting depth is counted.
type Group struct{ frame }

// Verb is a named subcommand scope: Node and Version capability, same
// as Root, but closes into a single Option<VerbValue> slot in its
// parent rather than being the tree's root.
type Verb struct {
	frame
	name string
}

// Option is the leaf scope capability: parse/position/swizzle/
// default/environment/require/many/valid, plus additional name calls.
// Parse (or Flag and the other typed helpers) populates result;
// everything else only attaches Meta and/or wraps result.
type Option struct {
	frame
	result  node
	hasName bool
	hasTag  bool // set by Flag, whose value carries an implicit "true" tag
}

// prefixes holds the short/long argument prefixes a Root declares
// (spec.md §4.3 "short"/"long" on state); defaulted to "-"/"--" and
// overridable via Root.Prefixes, kept here rather than as package
// globals so multiple built parsers never share mutable configuration
// (spec.md §5 "a built Parser is safe to reuse concurrently").
type prefixes struct {
	short, long string
}

func defaultPrefixes() prefixes { return prefixes{short: "-", long: "--"} }

// Prefixes overrides the default "-"/"--" short/long argument prefixes
// (spec.md §4.2 "short and long prefix strings... must differ,
// non-empty, and contain no alphanumeric characters"; §6 "Prefix
// convention"). Call it before declaring any Group/Verb/Option: every
// nested scope inherits the prefixes in effect on its enclosing frame
// at the moment it is created (nodeGroup/nodeVerb/nodeOption below),
// so a Prefixes call after children already exist only affects scopes
// declared afterward.
func (r *Root) Prefixes(short, long string) *Root {
	if err := validatePrefixes(short, long); err != nil {
		r.fail(err)
		return r
	}
	r.frame.prefixes = prefixes{short: short, long: long}
	return r
}

// validatePrefixes enforces spec.md §4.2/§6's prefix constraints,
// raising InvalidPrefix (errors.go) against whichever of the two
// offending prefixes actually violates a rule.
func validatePrefixes(short, long string) error {
	if short == "" {
		return &InvalidPrefix{Prefix: short}
	}
	if long == "" {
		return &InvalidPrefix{Prefix: long}
	}
	if short == long {
		return &InvalidPrefix{Prefix: long}
	}
	for _, r := range short {
		if isAlphanumeric(r) {
			return &InvalidPrefix{Prefix: short}
		}
	}
	for _, r := range long {
		if isAlphanumeric(r) {
			return &InvalidPrefix{Prefix: long}
		}
	}
	return nil
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// Case sets the case style applied to every Name declared from this
// point on in the tree (spec.md §4.2 "name(s): ...a case style (e.g.
// kebab/snake/pascal) used to normalize names"). Like Prefixes, it
// only affects scopes declared after the call, since nested frames
// copy it at construction time (nodeGroup/nodeVerb/nodeOption below).
func (r *Root) Case(c Case) *Root {
	r.frame.caseStyle = c
	return r
}

// --- leaf meta methods shared by every scope ---

func (r *Root) Name(value string) *Root   { pushName(&r.frame, value, nil); return r }
func (r *Root) Help(value string) *Root   { r.push(metaHelp(value)); return r }
func (r *Root) Note(value string) *Root   { r.push(metaNote(value)); return r }
func (r *Root) Line() *Root               { r.push(metaLine()); return r }
func (r *Root) Hide() *Root               { r.push(metaHide()); return r }
func (r *Root) Show() *Root               { r.push(metaShow()); return r }
func (r *Root) Repository(v string) *Root { r.push(metaRepository(v)); return r }
func (r *Root) Home(v string) *Root       { r.push(metaHome(v)); return r }
func (r *Root) Version(v string) *Root    { r.push(metaVersion(v)); return r }
func (r *Root) Summary(v string) *Root    { r.push(metaSummary(v)); return r }
func (r *Root) License(name, body string) *Root {
	r.push(metaLicense(name, body))
	return r
}
func (r *Root) Author(v string) *Root { r.push(metaAuthor(v)); return r }

func (g *Group) Name(value string) *Group { pushName(&g.frame, value, nil); return g }
func (g *Group) Help(value string) *Group { g.push(metaHelp(value)); return g }
func (g *Group) Note(value string) *Group { g.push(metaNote(value)); return g }
func (g *Group) Line() *Group             { g.push(metaLine()); return g }
func (g *Group) Hide() *Group             { g.push(metaHide()); return g }
func (g *Group) Show() *Group             { g.push(metaShow()); return g }

func (v *Verb) Name(value string) *Verb {
	pushName(&v.frame, value, func(n string) error { return &InvalidVerbName{Name: n} })
	return v
}
func (v *Verb) Help(value string) *Verb   { v.push(metaHelp(value)); return v }
func (v *Verb) Note(value string) *Verb   { v.push(metaNote(value)); return v }
func (v *Verb) Line() *Verb               { v.push(metaLine()); return v }
func (v *Verb) Hide() *Verb               { v.push(metaHide()); return v }
func (v *Verb) Show() *Verb               { v.push(metaShow()); return v }
func (v *Verb) Version(val string) *Verb  { v.push(metaVersion(val)); return v }
func (v *Verb) Summary(val string) *Verb  { v.push(metaSummary(val)); return v }
func (v *Verb) Repository(val string) *Verb {
	v.push(metaRepository(val))
	return v
}
func (v *Verb) Home(val string) *Verb { v.push(metaHome(val)); return v }
func (v *Verb) License(name, body string) *Verb {
	v.push(metaLicense(name, body))
	return v
}
func (v *Verb) Author(val string) *Verb { v.push(metaAuthor(val)); return v }

func (o *Option) Name(value string) *Option {
	pushName(&o.frame, value, func(n string) error { return &InvalidOptionName{Name: n} })
	o.hasName = true
	return o
}
func (o *Option) Help(value string) *Option { o.push(metaHelp(value)); return o }
func (o *Option) Note(value string) *Option { o.push(metaNote(value)); return o }
func (o *Option) Line() *Option             { o.push(metaLine()); return o }
func (o *Option) Hide() *Option             { o.push(metaHide()); return o }
func (o *Option) Show() *Option             { o.push(metaShow()); return o }

// pushName classifies value the way the original builder does: a
// single rune becomes a Short name, anything longer a Long name
// (spec.md §4.2 "name(s)"). The case style applies to multi-rune names
// only; a single-rune name keeps its case, so "H" stays "-H". onInvalid
// builds the scope-specific rejection error (InvalidOptionName/
// InvalidVerbName); Root and Group pass nil since neither has a
// dedicated name-rejection error.
func pushName(f *frame, value string, onInvalid func(string) error) {
	if !isValidName(value) {
		if onInvalid != nil {
			f.fail(onInvalid(value))
		}
		return
	}
	if len([]rune(value)) > 1 {
		value = f.caseStyle.apply(value)
	}
	runes := []rune(value)
	if len(runes) == 1 {
		f.push(metaName(Short, value))
	} else {
		f.push(metaName(Long, value))
	}
}

// isValidName reports whether value contains no whitespace and only
// ASCII, the constraint spec.md §4.2 "name(s)" states.
func isValidName(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r > 127 {
			return false
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return false
		}
	}
	return true
}

// --- Node capability: group/verb/option/options ---

func (r *Root) Group(build func(*Group)) *Root  { nodeGroup(&r.frame, build); return r }
func (r *Root) Verb(name string, build func(*Verb)) *Root {
	nodeVerb(&r.frame, name, build)
	return r
}
func (r *Root) Option(build func(*Option)) *Root { nodeOption(&r.frame, build); return r }
func (r *Root) Options(o Options) *Root          { r.push(metaOptions(o)); return r }
func (r *Root) Usage(value string) *Root         { r.push(metaUsage(value)); return r }

func (g *Group) Group(build func(*Group)) *Group { nodeGroup(&g.frame, build); return g }
func (g *Group) Verb(name string, build func(*Verb)) *Group {
	nodeVerb(&g.frame, name, build)
	return g
}
func (g *Group) Option(build func(*Option)) *Group { nodeOption(&g.frame, build); return g }
func (g *Group) Options(o Options) *Group          { g.push(metaOptions(o)); return g }
func (g *Group) Usage(value string) *Group         { g.push(metaUsage(value)); return g }

func (v *Verb) Group(build func(*Group)) *Verb { nodeGroup(&v.frame, build); return v }
func (v *Verb) Verb(name string, build func(*Verb)) *Verb {
	nodeVerb(&v.frame, name, build)
	return v
}
func (v *Verb) Option(build func(*Option)) *Verb { nodeOption(&v.frame, build); return v }
func (v *Verb) Options(o Options) *Verb          { v.push(metaOptions(o)); return v }
func (v *Verb) Usage(value string) *Verb         { v.push(metaUsage(value)); return v }

// nodeGroup runs build over a fresh Group, then flattens its children
// directly into parent's own routing table and value tuple (spec.md §3
// "groups are metadata-only and contribute no routing depth beyond
// their packed-index contribution" — a named option nested in a group
// must still resolve against the enclosing root/verb's own key map, so
// a group cannot own an independent scanning loop the way a verb does;
// only the Meta tree keeps the nested MetaGroup container, for help
// rendering). depth is tracked purely as a build-time nesting counter.
func nodeGroup(parent *frame, build func(*Group)) {
	if parent.depth >= maxDepth {
		parent.fail(&GroupNestingLimitOverflow{})
		return
	}
	g := &Group{}
	g.depth = parent.depth + 1
	g.prefixes = parent.prefixes
	g.caseStyle = parent.caseStyle
	build(g)
	if !g.ok() {
		parent.fail(g.err)
		return
	}
	parent.push(metaContainer(MetaGroup, g.metas))
	for i, child := range g.children {
		parent.children = append(parent.children, child)
		parent.childMetas = append(parent.childMetas, g.childMetas[i])
	}
}

func nodeVerb(parent *frame, name string, build func(*Verb)) {
	if name == "" {
		parent.fail(&MissingVerbName{})
		return
	}
	v := &Verb{name: name}
	v.prefixes = parent.prefixes
	v.caseStyle = parent.caseStyle
	v.push(metaName(Plain, name))
	build(v)
	if !v.ok() {
		parent.fail(v.err)
		return
	}
	dispatch, err := buildDispatch(v.metas, v.children, v.childMetas, true, v.prefixes, identityCombine)
	if err != nil {
		parent.fail(err)
		return
	}
	parent.addChild(metaContainer(MetaVerb, v.metas), &verbNode{inner: dispatch})
}

func identityCombine(values []any) (any, error) { return values, nil }

func nodeOption(parent *frame, build func(*Option)) {
	o := &Option{}
	o.prefixes = parent.prefixes
	o.caseStyle = parent.caseStyle
	build(o)
	if !o.ok() {
		parent.fail(o.err)
		return
	}
	if !o.hasName && !hasPosition(o.metas) {
		parent.fail(&MissingOptionNameOrPosition{})
		return
	}
	if hasSwizzle(o.metas) && !hasShortName(o.metas) {
		parent.fail(&MissingShortOptionNameForSwizzling{})
		return
	}
	if o.result == nil {
		parent.fail(&MissingOptionNameOrPosition{})
		return
	}
	parent.addChild(metaContainer(MetaOption, o.metas), o.result)
}

func hasPosition(metas []Meta) bool {
	for _, m := range metas {
		if m.Kind == MetaPosition {
			return true
		}
	}
	return false
}

func hasSwizzle(metas []Meta) bool {
	for _, m := range metas {
		if m.Kind == MetaSwizzle {
			return true
		}
	}
	return false
}

func hasShortName(metas []Meta) bool {
	for _, m := range metas {
		if m.Kind == MetaName && m.NameKind == Short {
			return true
		}
	}
	return false
}
