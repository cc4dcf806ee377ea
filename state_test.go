package scalp

import "testing"

func TestDequePopFrontEmpty(t *testing.T) {
	d := newDeque(nil)
	if _, ok := d.popFront(); ok {
		t.Fatal("popFront on an empty deque should report false")
	}
}

func TestDequePushFrontOrder(t *testing.T) {
	d := newDeque([]string{"b", "c"})
	d.pushFront("a")
	if got := d.snapshot(); len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("snapshot = %v, want [a b c]", got)
	}
}

func TestDequePeekFrontDoesNotConsume(t *testing.T) {
	d := newDeque([]string{"x", "y"})
	v, ok := d.peekFront()
	if !ok || v != "x" {
		t.Fatalf("peekFront = %q, %v, want x, true", v, ok)
	}
	if d.len() != 2 {
		t.Fatalf("peekFront should not consume, len = %d", d.len())
	}
}

func TestNextKeyPlainToken(t *testing.T) {
	s := &state{arguments: newDeque([]string{"--config"}), short: "-", long: "--"}
	key, ok, err := s.nextKey(nil)
	if err != nil || !ok || key != "--config" {
		t.Fatalf("nextKey = %q, %v, %v", key, ok, err)
	}
}

func TestNextKeySwizzleExpansion(t *testing.T) {
	s := &state{arguments: newDeque([]string{"-abc"}), short: "-", long: "--"}
	swizzles := map[rune]bool{'a': true, 'b': true, 'c': true}

	var got []string
	for {
		key, ok, err := s.nextKey(swizzles)
		if err != nil {
			t.Fatalf("nextKey: %v", err)
		}
		if !ok {
			break
		}
		got = append(got, key)
	}
	want := []string{"-a", "-b", "-c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestNextKeySwizzleRejectsUnknownChar(t *testing.T) {
	s := &state{arguments: newDeque([]string{"-ax"}), short: "-", long: "--"}
	swizzles := map[rune]bool{'a': true}

	_, _, err := s.nextKey(swizzles)
	if err == nil {
		t.Fatal("expected InvalidSwizzleOption for an un-swizzled character")
	}
	if _, ok := err.(*InvalidSwizzleOption); !ok {
		t.Fatalf("err = %T, want *InvalidSwizzleOption", err)
	}
}

func TestStateWithOverridesOnlyGivenFields(t *testing.T) {
	base := &state{short: "-", long: "--"}
	key := "--host"
	next := base.with(nil, nil, &key, nil)
	if next.currentKey() != "--host" {
		t.Fatalf("currentKey() = %q, want --host", next.currentKey())
	}
	if next.short != "-" || next.long != "--" {
		t.Fatal("with() should preserve fields not overridden")
	}
}

func TestIsRecognizedKey(t *testing.T) {
	s := &state{recognized: map[string]bool{"--host": true}}
	if !s.isRecognizedKey("--host") {
		t.Fatal("--host should be recognized")
	}
	if s.isRecognizedKey("--other") {
		t.Fatal("--other was never registered")
	}
}
