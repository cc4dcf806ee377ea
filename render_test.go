package scalp

import "testing"

func TestRenderHelpIncludesSummaryAndUsage(t *testing.T) {
	meta := &Meta{Kind: MetaRoot, Children: []Meta{
		metaSummary("a tiny tool"),
		metaUsage("tool [options]"),
		metaContainer(MetaOption, []Meta{metaName(Long, "verbose")}),
		metaNote("see also: docs"),
	}}
	out := renderHelp(meta, defaultPrefixes())
	if !contains(out, "a tiny tool") || !contains(out, "tool [options]") || !contains(out, "verbose") || !contains(out, "see also: docs") {
		t.Fatalf("renderHelp missing expected content: %q", out)
	}
}

func TestRenderHelpNilMeta(t *testing.T) {
	if out := renderHelp(nil, defaultPrefixes()); out != "" {
		t.Fatalf("renderHelp(nil) = %q, want empty", out)
	}
}

func TestRenderVersion(t *testing.T) {
	meta := &Meta{Kind: MetaRoot, Children: []Meta{metaVersion("1.2.3")}}
	if out := renderVersion(meta); out != "1.2.3" {
		t.Fatalf("renderVersion = %q, want 1.2.3", out)
	}
}

func TestRenderLicenseIncludesNameAndBody(t *testing.T) {
	meta := &Meta{Kind: MetaRoot, Children: []Meta{metaLicense("MIT", "permission is hereby granted")}}
	out := renderLicense(meta)
	if !contains(out, "MIT") || !contains(out, "permission is hereby granted") {
		t.Fatalf("renderLicense = %q", out)
	}
}

func TestRenderAuthor(t *testing.T) {
	meta := &Meta{Kind: MetaRoot, Children: []Meta{metaAuthor("Magicolo")}}
	if out := renderAuthor(meta); out != "Magicolo" {
		t.Fatalf("renderAuthor = %q, want Magicolo", out)
	}
}

func contains(haystack, needle string) bool {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}
