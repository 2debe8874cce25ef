package exprlang

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScopeTable(t *testing.T) {
	s := NewScopeTable[int]()
	s.Save("a", 1)
	s.Save("b", 2)

	s.OpenScope()
	if s.Level() != 1 {
		t.Fatalf("want level 1 but got %d", s.Level())
	}
	s.Save("a", 10)
	if v, _ := s.Lookup("a"); v != 10 {
		t.Errorf("inner a should shadow outer, got %d", v)
	}
	if v, _ := s.Lookup("b"); v != 2 {
		t.Errorf("b should be found in level 0, got %d", v)
	}
	s.Declare(0, "c", 3)
	s.CloseScope()

	if v, _ := s.Lookup("a"); v != 1 {
		t.Errorf("want outer a back, got %d", v)
	}
	if v, ok := s.Lookup("c"); !ok || v != 3 {
		t.Errorf("want c declared in level 0, got %d, %v", v, ok)
	}
	if _, ok := s.Lookup("missing"); ok {
		t.Error("missing should be unbound")
	}
}

func TestScopeTableClone(t *testing.T) {
	s := NewScopeTable[string]()
	s.Save("x", "one")
	c := s.Clone()
	s.Save("x", "two")
	s.Save("y", "three")
	if v, _ := c.Lookup("x"); v != "one" {
		t.Errorf("clone changed with original: %q", v)
	}
	if _, ok := c.Lookup("y"); ok {
		t.Error("clone sees a later binding")
	}
}

func TestScopeTableCloseOutermost(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("closing level 0 should panic")
		}
	}()
	NewScopeTable[int]().CloseScope()
}

func TestScopeTableDump(t *testing.T) {
	s := NewScopeTable[Value]()
	s.Save("b", BoolValue(true))
	s.Save("a", IntValue(1))
	s.OpenScope()
	s.Save("c", NoneValue())

	var buf bytes.Buffer
	s.Dump(&buf)
	want := "level 1:\n\tc => ()\nlevel 0:\n\ta => 1\n\tb => true\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Error(diff)
	}
}
