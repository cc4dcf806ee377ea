package scalp

// NameKind distinguishes how a Name meta node was classified by the
// builder: a single ASCII character becomes a Short name, anything
// longer becomes a Long name, and a bare positional carries no name
// at all (Plain is reserved for names that skip prefixing, e.g. verb
// names, which are never prefixed).
type NameKind int

const (
	Plain NameKind = iota
	Short
	Long
)

// Options requests auto-insertion of standard help/version/license/author
// options on the node it is attached to. buildDispatch registers its
// keys in the node's index table; the placeholder Meta itself stays in
// the node's Meta list.
type Options struct {
	Kind  OptionsKind
	Short bool
	Long  bool
}

type OptionsKind int

const (
	OptionsHelp OptionsKind = iota
	OptionsVersion
	OptionsLicense
	OptionsAuthor
)

// Meta is a node of the metadata tree described in spec.md §3. Leaf
// kinds carry Text (and, for Name, Kind); container kinds carry
// Children. Exactly one of the two groups is meaningful for any given
// Kind value, enforced by construction helpers below rather than by
// the type system, matching the teacher's preference for small
// explicit structs over sealed interfaces (c.f. internal/model.Result).
type Meta struct {
	Kind     MetaKind
	Text     string
	Name     string // second payload for License(name, body)
	NameKind NameKind
	Options  Options
	Children []Meta
}

type MetaKind int

const (
	MetaName MetaKind = iota
	MetaHelp
	MetaUsage
	MetaNote
	MetaSummary
	MetaVersion
	MetaLicense
	MetaAuthor
	MetaRepository
	MetaHome
	MetaType
	MetaDefault
	MetaEnvironment
	MetaValid
	MetaMany
	MetaRequire
	MetaPosition
	MetaSwizzle
	MetaHide
	MetaShow
	MetaLine
	MetaOptionsPlaceholder

	MetaRoot
	MetaGroup
	MetaVerb
	MetaOption
)

func metaName(kind NameKind, value string) Meta { return Meta{Kind: MetaName, NameKind: kind, Text: value} }
func metaHelp(value string) Meta                { return Meta{Kind: MetaHelp, Text: value} }
func metaUsage(value string) Meta               { return Meta{Kind: MetaUsage, Text: value} }
func metaNote(value string) Meta                { return Meta{Kind: MetaNote, Text: value} }
func metaSummary(value string) Meta             { return Meta{Kind: MetaSummary, Text: value} }
func metaVersion(value string) Meta             { return Meta{Kind: MetaVersion, Text: value} }
func metaLicense(name, body string) Meta        { return Meta{Kind: MetaLicense, Name: name, Text: body} }
func metaAuthor(value string) Meta              { return Meta{Kind: MetaAuthor, Text: value} }
func metaRepository(value string) Meta          { return Meta{Kind: MetaRepository, Text: value} }
func metaHome(value string) Meta                { return Meta{Kind: MetaHome, Text: value} }
func metaType(label string) Meta                { return Meta{Kind: MetaType, Text: label} }
func metaDefault(label string) Meta             { return Meta{Kind: MetaDefault, Text: label} }
func metaEnvironment(v string) Meta             { return Meta{Kind: MetaEnvironment, Text: v} }
func metaValid(pattern string) Meta             { return Meta{Kind: MetaValid, Text: pattern} }
func metaMany(cap string) Meta                  { return Meta{Kind: MetaMany, Text: cap} }
func metaRequire() Meta                         { return Meta{Kind: MetaRequire} }
func metaPosition() Meta                        { return Meta{Kind: MetaPosition} }
func metaSwizzle() Meta                         { return Meta{Kind: MetaSwizzle} }
func metaHide() Meta                            { return Meta{Kind: MetaHide} }
func metaShow() Meta                            { return Meta{Kind: MetaShow} }
func metaLine() Meta                            { return Meta{Kind: MetaLine} }
func metaOptions(o Options) Meta                { return Meta{Kind: MetaOptionsPlaceholder, Options: o} }

func metaContainer(kind MetaKind, children []Meta) Meta {
	return Meta{Kind: kind, Children: children}
}

// clone returns a copy of m truncated at depth: container children
// beyond depth are dropped rather than recursed into, matching the
// original crate's Meta::clone(depth) used to embed a node's own
// metadata into help output without duplicating its descendants.
func (m Meta) clone(depth int) Meta {
	switch m.Kind {
	case MetaRoot, MetaGroup, MetaVerb, MetaOption:
		if depth <= 0 {
			return metaContainer(m.Kind, nil)
		}
		children := make([]Meta, len(m.Children))
		for i, child := range m.Children {
			children[i] = child.clone(depth - 1)
		}
		return metaContainer(m.Kind, children)
	default:
		return m
	}
}

// names returns every Name child's declared text, unprefixed, in
// declaration order.
func (m Meta) names() []string {
	var out []string
	for _, child := range m.Children {
		if child.Kind == MetaName {
			out = append(out, child.Text)
		}
	}
	return out
}

// findText returns the Text of the first direct child of kind k, at
// the current level only (no recursion into further containers).
func (m Meta) findText(k MetaKind) (string, bool) {
	for _, child := range m.Children {
		if child.Kind == k {
			return child.Text, true
		}
	}
	return "", false
}

// visibilityAfter returns counter advanced over metas: each Hide adds
// one and each Show removes one (never below zero); a non-zero result
// means later siblings are hidden. Hide/Show never affect routing, only
// visibility of help text.
func visibilityAfter(counter int, metas []Meta) int {
	for _, m := range metas {
		switch m.Kind {
		case MetaHide:
			counter++
		case MetaShow:
			if counter > 0 {
				counter--
			}
		}
	}
	return counter
}
