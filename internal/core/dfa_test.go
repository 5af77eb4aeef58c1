package core

import (
	"errors"
	"testing"

	"github.com/comalice/automatax/internal/primitives"
)

func TestDFAInitialStateCardinality(t *testing.T) {
	tests := []struct {
		name    string
		ids     []string
		wantErr error
	}{
		{"exactly one", []string{"s0"}, nil},
		{"zero", []string{}, primitives.ErrIllegalArgument},
		{"two", []string{"s0", "s1"}, primitives.ErrIllegalArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDFA()
			err := d.AddInitialStates(tt.ids)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("AddInitialStates(%v) error = %v", tt.ids, err)
				}
				id, ok := d.InitialState()
				if !ok || id != primitives.StateID(tt.ids[0]) {
					t.Errorf("InitialState() = %q, %v; want %q, true", id, ok, tt.ids[0])
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AddInitialStates(%v) error = %v, want %v", tt.ids, err, tt.wantErr)
			}
		})
	}
}

func TestDFARejectsSecondInitialState(t *testing.T) {
	d := NewDFA()
	if err := d.AddInitialStates([]string{"s0"}); err != nil {
		t.Fatalf("first AddInitialStates error = %v", err)
	}
	err := d.AddInitialStates([]string{"s1"})
	if !errors.Is(err, primitives.ErrUnsupportedOperation) {
		t.Errorf("second AddInitialStates error = %v, want ErrUnsupportedOperation", err)
	}
	// The first initial state survives the rejected call.
	if id, ok := d.InitialState(); !ok || id != "s0" {
		t.Errorf("InitialState() = %q, %v; want \"s0\", true", id, ok)
	}
}

func TestDFAInitialStateBecomesNode(t *testing.T) {
	d := NewDFA()
	d.AddInitialStates([]string{"s0"})
	if got := d.StateCount(); got != 1 {
		t.Errorf("StateCount() = %d, want 1", got)
	}
	if got := d.InitialStates(); len(got) != 1 || got[0] != "s0" {
		t.Errorf("InitialStates() = %v, want [s0]", got)
	}
}

func TestDFAEmptyInitial(t *testing.T) {
	d := NewDFA()
	if _, ok := d.InitialState(); ok {
		t.Error("InitialState() ok = true on empty DFA")
	}
	if got := d.InitialStates(); got != nil {
		t.Errorf("InitialStates() = %v, want nil", got)
	}
}
