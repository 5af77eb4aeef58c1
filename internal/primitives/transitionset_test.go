package primitives

import (
	"reflect"
	"testing"
)

func TestTransitionSetMerge(t *testing.T) {
	ts := NewTransitionSet("a")
	if !ts.Contains("a") {
		t.Fatal("new set does not contain its seed symbol")
	}
	if ts.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", ts.Len())
	}

	ts.Add("b")
	ts.Add("a") // duplicate insert is a no-op
	ts.Add(Epsilon)

	if ts.Len() != 3 {
		t.Errorf("Len() = %d, want 3", ts.Len())
	}
	want := []Symbol{"a", "b", Epsilon}
	if got := ts.Symbols(); !reflect.DeepEqual(got, want) {
		t.Errorf("Symbols() = %v, want %v", got, want)
	}
	if ts.Contains("c") {
		t.Error(`Contains("c") = true`)
	}
}
