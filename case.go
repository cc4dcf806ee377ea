package scalp

import "strings"

// Case selects how the builder normalizes a declared name before it is
// registered in an Indices table. Case conversion itself is treated as
// an external collaborator by spec.md §1 ("pure string transform"); this
// file is the minimal internal substitute the builder calls into, not a
// general-purpose text-casing library.
type Case int

const (
	// Kebab leaves names as-is except for lower-casing (the default):
	// "dryRun" -> "dryrun". Most CLI grammars already declare
	// kebab-cased names directly, so this is mostly a no-op.
	Kebab Case = iota
	// Snake rewrites camel/Pascal boundaries to underscores: "dryRun" -> "dry_run".
	Snake
	// Pascal upper-cases the first letter of each camel boundary: "dry-run" -> "DryRun".
	Pascal
)

func (c Case) apply(name string) string {
	switch c {
	case Snake:
		return toSnake(name)
	case Pascal:
		return toPascal(name)
	default:
		return strings.ToLower(name)
	}
}

// splitWords breaks name on '-', '_', and camelCase boundaries.
func splitWords(name string) []string {
	var words []string
	var current []rune
	runes := []rune(name)
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = nil
		}
	}
	for i, r := range runes {
		switch {
		case r == '-' || r == '_':
			flush()
		case i > 0 && isUpper(r) && !isUpper(runes[i-1]):
			flush()
			current = append(current, r)
		case i > 0 && isUpper(r) && i+1 < len(runes) && !isUpper(runes[i+1]) && isUpper(runes[i-1]):
			flush()
			current = append(current, r)
		default:
			current = append(current, r)
		}
	}
	flush()
	return words
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

func toSnake(name string) string {
	words := splitWords(name)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}

func toPascal(name string) string {
	words := splitWords(name)
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, "")
}
