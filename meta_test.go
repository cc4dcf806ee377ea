package scalp

import "testing"

func TestMetaNames(t *testing.T) {
	m := metaContainer(MetaOption, []Meta{
		metaName(Long, "config"),
		metaName(Short, "c"),
		metaHelp("the config file"),
	})

	names := m.names()
	if len(names) != 2 || names[0] != "config" || names[1] != "c" {
		t.Fatalf("names() = %v, want [config c]", names)
	}
}

func TestMetaFindText(t *testing.T) {
	m := metaContainer(MetaOption, []Meta{metaType("int"), metaDefault("0")})

	if v, ok := m.findText(MetaType); !ok || v != "int" {
		t.Fatalf("findText(MetaType) = %q, %v", v, ok)
	}
	if _, ok := m.findText(MetaRequire); ok {
		t.Fatal("findText(MetaRequire) should not be found")
	}
}

func TestMetaCloneTruncatesDescendants(t *testing.T) {
	leaf := metaContainer(MetaOption, []Meta{metaName(Long, "x")})
	root := metaContainer(MetaRoot, []Meta{metaContainer(MetaGroup, []Meta{leaf})})

	shallow := root.clone(1)
	if len(shallow.Children) != 1 {
		t.Fatalf("clone(1) children = %d, want 1", len(shallow.Children))
	}
	group := shallow.Children[0]
	if len(group.Children) != 0 {
		t.Fatalf("clone(1) should truncate the group's own children, got %d", len(group.Children))
	}

	deep := root.clone(2)
	group = deep.Children[0]
	if len(group.Children) != 1 {
		t.Fatalf("clone(2) should preserve one more level, got %d children", len(group.Children))
	}
}

func TestVisibilityAfterHideShow(t *testing.T) {
	counter := visibilityAfter(0, []Meta{metaHide(), metaHide()})
	if counter != 2 {
		t.Fatalf("counter after two Hide = %d, want 2", counter)
	}
	counter = visibilityAfter(counter, []Meta{metaShow()})
	if counter != 1 {
		t.Fatalf("counter after Show = %d, want 1", counter)
	}
	counter = visibilityAfter(counter, []Meta{metaShow(), metaShow()})
	if counter != 0 {
		t.Fatalf("counter should not go negative, got %d", counter)
	}
}
