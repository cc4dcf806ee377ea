package scalp

import "testing"

func TestNewAtRejectsTooManyChildren(t *testing.T) {
	children := make([]node, maxChildren+1)
	for i := range children {
		children[i] = &valueNode[int]{}
	}
	_, err := newAt(identityCombine, children...)
	if err == nil {
		t.Fatal("expected TooManyChildren")
	}
	if _, ok := err.(*TooManyChildren); !ok {
		t.Fatalf("err = %T, want *TooManyChildren", err)
	}
}

func TestAtNodeRoutesToSelectedChild(t *testing.T) {
	a, err := newAt(identityCombine,
		&valueNode[int]{convert: parseInt},
		&valueNode[int]{convert: parseInt},
	)
	if err != nil {
		t.Fatalf("newAt: %v", err)
	}
	st := &state{arguments: newDeque([]string{"7"})}
	acc, err := a.initialize(st)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	idx := 1
	dispatchSt := st.with(nil, nil, nil, &idx)
	acc, err = a.parse(acc, &dispatchSt)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	row := acc.([]any)
	if row[0] != nil {
		t.Fatalf("row[0] = %v, want untouched nil", row[0])
	}
	if row[1].(int) != 7 {
		t.Fatalf("row[1] = %v, want 7", row[1])
	}
}

func TestAtNodeInvalidIndex(t *testing.T) {
	a, _ := newAt(identityCombine, &valueNode[int]{})
	st := &state{}
	idx := 5
	dispatchSt := st.with(nil, nil, nil, &idx)
	accs := []any{nil}
	if _, err := a.parse(accs, &dispatchSt); err == nil {
		t.Fatal("expected InvalidIndex for an out-of-range routing index")
	} else if _, ok := err.(*InvalidIndex); !ok {
		t.Fatalf("err = %T, want *InvalidIndex", err)
	}
}

func TestAtNodeFinalizeProducesOneValuePerChild(t *testing.T) {
	a, err := newAt(identityCombine, &valueNode[string]{}, &valueNode[string]{})
	if err != nil {
		t.Fatalf("newAt: %v", err)
	}
	accs := []any{"a", "b"}
	v, err := a.finalize(accs, &state{})
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	row := v.([]any)
	if len(row) != 2 || row[0] != "a" || row[1] != "b" {
		t.Fatalf("row = %v, want [a b]", row)
	}
}
