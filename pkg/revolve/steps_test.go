package revolve

import (
	"errors"
	"testing"
)

func TestStepCountsAreValid(t *testing.T) {
	for _, s := range StepCounts {
		if err := ValidateEdges(s); err != nil {
			t.Errorf("ValidateEdges(%d): %v", s, err)
		}
	}
}

func TestValidateEdgesBounds(t *testing.T) {
	for _, e := range []int{1, 360, 120} {
		if err := ValidateEdges(e); err != nil {
			t.Errorf("ValidateEdges(%d): %v", e, err)
		}
	}
	for _, e := range []int{0, -1, 7, 361} {
		if err := ValidateEdges(e); !errors.Is(err, ErrInvalidStepCount) {
			t.Errorf("ValidateEdges(%d): expected ErrInvalidStepCount, got %v", e, err)
		}
	}
}

func TestSnapEdges(t *testing.T) {
	tests := []struct{ in, want int }{
		{7, 6},
		{11, 10},
		{13, 12},
		{0, 2},
		{1, 2},
		{100, 90},
		{36, 36},
	}
	for _, tt := range tests {
		if got := SnapEdges(tt.in); got != tt.want {
			t.Errorf("SnapEdges(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestStepIndex(t *testing.T) {
	if got := StepIndex(10); StepCounts[got] != 10 {
		t.Errorf("StepIndex(10) = %d", got)
	}
	if got := StepIndex(7); got != -1 {
		t.Errorf("StepIndex(7) = %d, want -1", got)
	}
}
