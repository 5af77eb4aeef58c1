package primitives

import (
	"reflect"
	"testing"
)

func TestSymbolIsEpsilon(t *testing.T) {
	if !Epsilon.IsEpsilon() {
		t.Error("Epsilon.IsEpsilon() = false")
	}
	if Symbol("a").IsEpsilon() {
		t.Error(`Symbol("a").IsEpsilon() = true`)
	}
}

func TestStateSetKey(t *testing.T) {
	tests := []struct {
		name string
		a    StateSet
		b    StateSet
		same bool
	}{
		{
			name: "insertion order irrelevant",
			a:    NewStateSet("x", "y", "z"),
			b:    NewStateSet("z", "y", "x"),
			same: true,
		},
		{
			name: "different members",
			a:    NewStateSet("x", "y"),
			b:    NewStateSet("x", "z"),
			same: false,
		},
		{
			name: "subset is not equal",
			a:    NewStateSet("x"),
			b:    NewStateSet("x", "y"),
			same: false,
		},
		{
			name: "empty sets agree",
			a:    NewStateSet(),
			b:    NewStateSet(),
			same: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Key() == tt.b.Key(); got != tt.same {
				t.Errorf("Key equality = %v, want %v (%q vs %q)", got, tt.same, tt.a.Key(), tt.b.Key())
			}
		})
	}
}

func TestStateSetSorted(t *testing.T) {
	set := NewStateSet("m", "a", "z", "b")
	want := []StateID{"a", "b", "m", "z"}
	if got := set.Sorted(); !reflect.DeepEqual(got, want) {
		t.Errorf("Sorted() = %v, want %v", got, want)
	}
}

func TestStateSetIntersects(t *testing.T) {
	tests := []struct {
		name string
		a    StateSet
		b    StateSet
		want bool
	}{
		{"shared member", NewStateSet("x", "y"), NewStateSet("y", "z"), true},
		{"disjoint", NewStateSet("x"), NewStateSet("y"), false},
		{"empty left", NewStateSet(), NewStateSet("x"), false},
		{"empty both", NewStateSet(), NewStateSet(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects (flipped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStateSetCloneIsIndependent(t *testing.T) {
	orig := NewStateSet("x")
	clone := orig.Clone()
	clone.Add("y")
	if orig.Contains("y") {
		t.Error("mutating the clone leaked into the original")
	}
}

func TestSymbolSetSorted(t *testing.T) {
	set := NewSymbolSet("b", "a", "c")
	want := []Symbol{"a", "b", "c"}
	if got := set.Sorted(); !reflect.DeepEqual(got, want) {
		t.Errorf("Sorted() = %v, want %v", got, want)
	}
}
