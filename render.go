package scalp

import "strings"

// renderedNames is a child's declared names the way they appear on the
// command line (see driver.go's prefixed), for help listings.
func renderedNames(m Meta, p prefixes) []string {
	var out []string
	for _, child := range m.Children {
		if child.Kind == MetaName {
			out = append(out, prefixed(child, p))
		}
	}
	return out
}

// renderHelp builds a plain-text help listing from a node's own Meta,
// walking only the entries at this level (spec.md §9 "clone(depth)
// intentionally truncates descendants"): summary, usage, the declared
// names of each direct child, and notes. The node's own name is not
// printed.
//
// renderHelp builds meta's help listing using p's configured prefixes
// to render each child's declared names (defaultPrefixes() when the
// caller, such as a direct unit test, has no built Parser to draw
// prefixes from).
func renderHelp(meta *Meta, p prefixes) string {
	var b strings.Builder
	if meta == nil {
		return ""
	}
	if summary, ok := meta.findText(MetaSummary); ok {
		b.WriteString(summary)
		b.WriteString("\n\n")
	}
	if usage, ok := meta.findText(MetaUsage); ok {
		b.WriteString("Usage: ")
		b.WriteString(usage)
		b.WriteString("\n\n")
	}
	var names []string
	for _, child := range meta.Children {
		switch child.Kind {
		case MetaOption, MetaVerb, MetaGroup:
			if n := renderedNames(child, p); len(n) > 0 {
				names = append(names, strings.Join(n, ", "))
			}
		}
	}
	if len(names) > 0 {
		b.WriteString("Options:\n")
		for _, n := range names {
			b.WriteString("  ")
			b.WriteString(n)
			b.WriteString("\n")
		}
	}
	for _, child := range meta.Children {
		if child.Kind == MetaNote {
			b.WriteString("\n")
			b.WriteString(child.Text)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderVersion(meta *Meta) string {
	if meta == nil {
		return ""
	}
	if v, ok := meta.findText(MetaVersion); ok {
		return v
	}
	return ""
}

func renderLicense(meta *Meta) string {
	if meta == nil {
		return ""
	}
	for _, child := range meta.Children {
		if child.Kind == MetaLicense {
			if child.Name != "" {
				return child.Name + "\n\n" + child.Text
			}
			return child.Text
		}
	}
	return ""
}

func renderAuthor(meta *Meta) string {
	if meta == nil {
		return ""
	}
	if v, ok := meta.findText(MetaAuthor); ok {
		return v
	}
	return ""
}
