package scalp

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// suggest scores every candidate key against name and returns the ones
// within the edit-distance-ish budget described in spec.md §4.3
// ("bounded by min(len/3, 3) edit distance"), closest first. The
// teacher already depends on pmezard/go-difflib for unified diffs
// (internal/util/util.go); this reuses the same dependency's
// SequenceMatcher.Ratio() as a closeness metric instead of hand-rolling
// a Levenshtein table, since the spell suggester itself is an external
// collaborator out of this core's scope (spec.md §1) and only needs a
// "close enough" signal here, not a full distance matrix.
func suggest(name string, candidates []string, budget int) []string {
	if budget < 0 {
		budget = 0
	}
	type scored struct {
		key   string
		ratio float64
	}
	var matches []scored
	for _, candidate := range candidates {
		ratio := closeness(name, candidate)
		distance := approximateDistance(name, candidate, ratio)
		if distance <= budget {
			matches = append(matches, scored{candidate, ratio})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].ratio > matches[j].ratio })
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.key
	}
	return out
}

// closeness returns go-difflib's ratio (0..1, 1 = identical) between
// the two strings, treated as sequences of single characters.
func closeness(a, b string) float64 {
	matcher := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return matcher.Ratio()
}

// approximateDistance turns a similarity ratio back into an edit-distance-
// like integer so it can be compared against the len/3-capped budget
// spec.md §4.3 specifies: distance ~= longer_len * (1 - ratio).
func approximateDistance(a, b string, ratio float64) int {
	longer := len(a)
	if len(b) > longer {
		longer = len(b)
	}
	return int(float64(longer) * (1 - ratio))
}

func suggestionBudget(name string) int {
	budget := len(name) / 3
	if budget > 3 {
		budget = 3
	}
	return budget
}
