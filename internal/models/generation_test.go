package models

import (
	"testing"
)

func TestStatusCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from GenerationStatus
		to   GenerationStatus
		want bool
	}{
		{"pending to researching", GenerationStatusPending, GenerationStatusResearching, true},
		{"pending to outlining", GenerationStatusPending, GenerationStatusOutlining, true},
		{"researching to outlining", GenerationStatusResearching, GenerationStatusOutlining, true},
		{"outlining to writing", GenerationStatusOutlining, GenerationStatusWriting, true},
		{"writing to completed", GenerationStatusWriting, GenerationStatusCompleted, true},
		{"writing backwards", GenerationStatusWriting, GenerationStatusOutlining, false},
		{"outlining to researching", GenerationStatusOutlining, GenerationStatusResearching, false},
		{"pending to failed", GenerationStatusPending, GenerationStatusFailed, true},
		{"writing to failed", GenerationStatusWriting, GenerationStatusFailed, true},
		{"completed to failed", GenerationStatusCompleted, GenerationStatusFailed, false},
		{"failed to writing", GenerationStatusFailed, GenerationStatusWriting, false},
		{"completed to writing", GenerationStatusCompleted, GenerationStatusWriting, false},
		{"same status", GenerationStatusWriting, GenerationStatusWriting, false},
		{"unknown target", GenerationStatusPending, GenerationStatus("archived"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransition(tt.to); got != tt.want {
				t.Errorf("%s -> %s: expected %v, got %v", tt.from, tt.to, tt.want, got)
			}
		})
	}
}

func TestStatusTerminal(t *testing.T) {
	if !GenerationStatusCompleted.Terminal() {
		t.Error("completed should be terminal")
	}
	if !GenerationStatusFailed.Terminal() {
		t.Error("failed should be terminal")
	}
	if GenerationStatusWriting.Terminal() {
		t.Error("writing should not be terminal")
	}
}

func TestStatusValid(t *testing.T) {
	if !GenerationStatusResearching.Valid() {
		t.Error("researching should be valid")
	}
	if GenerationStatus("archived").Valid() {
		t.Error("unknown status should be invalid")
	}
}
