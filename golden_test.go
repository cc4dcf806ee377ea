package scalp

import (
	"strings"
	"testing"

	"github.com/Magicolo/scalp/internal/testfixtures"
)

// golden fixtures live under testdata/render/*.golden.txt and are
// discovered the same way the teacher's core/filewalker.go recursively
// walks a tree looking for matching files, rather than a fixed list of
// path literals. Each discovered *.golden.txt must have a scenario of
// the same name registered in renderScenarios below, and each
// registered scenario must have a fixture on disk; the test fails
// otherwise.
var renderScenarios = map[string]func() *Meta{
	"basic": func() *Meta {
		return &Meta{Kind: MetaRoot, Children: []Meta{
			metaSummary("a tiny tool"),
			metaUsage("tool [options]"),
			metaContainer(MetaOption, []Meta{metaName(Long, "verbose")}),
			metaNote("see also: docs"),
		}}
	},
	"verbs": func() *Meta {
		return &Meta{Kind: MetaRoot, Children: []Meta{
			metaSummary("container runtime"),
			metaUsage("crate [options] <verb>"),
			metaContainer(MetaOption, []Meta{metaName(Short, "d"), metaName(Long, "debug")}),
			metaContainer(MetaVerb, []Meta{metaName(Plain, "run")}),
			metaContainer(MetaVerb, []Meta{metaName(Plain, "show")}),
		}}
	},
}

func TestRenderHelpMatchesGoldenFixtures(t *testing.T) {
	scenarios, err := testfixtures.Find("testdata/render", "*.golden.txt")
	if err != nil {
		t.Fatalf("testfixtures.Find: %v", err)
	}
	if len(scenarios) == 0 {
		t.Fatal("expected at least one golden fixture under testdata/render")
	}

	seen := make(map[string]bool, len(scenarios))
	for _, sc := range scenarios {
		name := strings.TrimSuffix(sc.Path[strings.LastIndex(sc.Path, "/")+1:], ".golden.txt")
		seen[name] = true
		build, ok := renderScenarios[name]
		if !ok {
			t.Fatalf("golden fixture %q has no matching render scenario registered in golden_test.go", name)
		}
		got := renderHelp(build(), defaultPrefixes())
		want := string(sc.Data)
		if strings.TrimRight(got, "\n") != strings.TrimRight(want, "\n") {
			t.Fatalf("renderHelp for %q =\n%q\nwant\n%q", name, got, want)
		}
	}
	for name := range renderScenarios {
		if !seen[name] {
			t.Fatalf("render scenario %q has no golden fixture on disk", name)
		}
	}
}
