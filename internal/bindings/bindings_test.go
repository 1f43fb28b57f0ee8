package bindings

import (
	"errors"
	"reflect"
	"testing"
)

func TestOrderPreserved(t *testing.T) {
	s := New("x", "y", "z")

	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	want := []string{"x", "y", "z"}
	if got := s.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names = %v, want %v", got, want)
	}
	for i, name := range want {
		idx, err := s.Index(name)
		if err != nil {
			t.Fatalf("Index(%q): %v", name, err)
		}
		if idx != i {
			t.Errorf("Index(%q) = %d, want %d", name, idx, i)
		}
	}
}

func TestDuplicatesKeepFirst(t *testing.T) {
	s := New("x", "y", "x", "y", "x")

	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	if idx, _ := s.Index("x"); idx != 0 {
		t.Errorf("Index(x) = %d, want 0", idx)
	}
	if idx, _ := s.Index("y"); idx != 1 {
		t.Errorf("Index(y) = %d, want 1", idx)
	}
}

func TestUnbound(t *testing.T) {
	s := New("x", "y")

	if s.Contains("z") {
		t.Error("Contains(z) = true")
	}
	_, err := s.Index("z")
	if err == nil {
		t.Fatal("Index(z) succeeded")
	}
	if !errors.Is(err, ErrUnbound) {
		t.Errorf("error %v is not ErrUnbound", err)
	}
}

func TestArgs(t *testing.T) {
	s := New("x", "y")

	args, err := s.Args(map[string]float64{"y": 5, "x": 3})
	if err != nil {
		t.Fatalf("Args: %v", err)
	}
	if !reflect.DeepEqual(args, []float64{3, 5}) {
		t.Errorf("Args = %v, want [3 5]", args)
	}

	if _, err := s.Args(map[string]float64{"x": 3}); err == nil {
		t.Error("Args with missing name succeeded")
	}
}

func TestNamesIsACopy(t *testing.T) {
	s := New("x", "y")
	names := s.Names()
	names[0] = "mutated"
	if got, _ := s.Index("x"); got != 0 {
		t.Error("mutating Names() result affected the set")
	}
	if s.Names()[0] != "x" {
		t.Error("mutating Names() result affected the set")
	}
}
