package environment

import "testing"

func TestDefineAndGet(t *testing.T) {
	env := New()
	env.Define("a", 1.0)
	v, ok := env.Get("a")
	if !ok || v != 1.0 {
		t.Fatalf("Get(a) = %v, %v, want 1.0, true", v, ok)
	}
}

func TestGetUnboundReturnsFalse(t *testing.T) {
	env := New()
	if _, ok := env.Get("missing"); ok {
		t.Fatal("expected ok=false for unbound name")
	}
}

func TestGetSearchesEnclosingChain(t *testing.T) {
	outer := New()
	outer.Define("a", "outer value")
	inner := NewEnclosed(outer)

	v, ok := inner.Get("a")
	if !ok || v != "outer value" {
		t.Fatalf("Get(a) = %v, %v, want outer value, true", v, ok)
	}
}

func TestInnerShadowsOuter(t *testing.T) {
	outer := New()
	outer.Define("a", "outer")
	inner := NewEnclosed(outer)
	inner.Define("a", "inner")

	v, _ := inner.Get("a")
	if v != "inner" {
		t.Fatalf("Get(a) = %v, want inner", v)
	}
	outerV, _ := outer.Get("a")
	if outerV != "outer" {
		t.Fatalf("outer Get(a) = %v, want outer (shadowing must not mutate the parent)", outerV)
	}
}

func TestAssignUpdatesExistingBindingInEnclosingScope(t *testing.T) {
	outer := New()
	outer.Define("a", 1.0)
	inner := NewEnclosed(outer)

	if err := inner.Assign("a", 2.0); err != nil {
		t.Fatalf("Assign errored: %v", err)
	}
	v, _ := outer.Get("a")
	if v != 2.0 {
		t.Fatalf("outer Get(a) = %v, want 2.0 after Assign from child scope", v)
	}
}

func TestAssignUnboundReturnsError(t *testing.T) {
	env := New()
	if err := env.Assign("missing", 1.0); err == nil {
		t.Fatal("expected an error assigning an undefined variable")
	}
}

func TestAncestorAndDistanceIndexedAccess(t *testing.T) {
	root := New()
	root.Define("a", "root")
	mid := NewEnclosed(root)
	leaf := NewEnclosed(mid)
	leaf.Define("a", "leaf")

	if v, _ := leaf.GetAt(0, "a"); v != "leaf" {
		t.Errorf("GetAt(0) = %v, want leaf", v)
	}
	if v, _ := leaf.GetAt(2, "a"); v != "root" {
		t.Errorf("GetAt(2) = %v, want root", v)
	}

	leaf.AssignAt(2, "a", "rewritten")
	if v, _ := root.Get("a"); v != "rewritten" {
		t.Errorf("root Get(a) = %v, want rewritten after AssignAt(2)", v)
	}
}

func TestEnclosing(t *testing.T) {
	root := New()
	child := NewEnclosed(root)
	if child.Enclosing() != root {
		t.Error("Enclosing() did not return the parent environment")
	}
	if root.Enclosing() != nil {
		t.Error("root Enclosing() should be nil")
	}
}
