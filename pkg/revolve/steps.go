package revolve

import "fmt"

// StepCounts lists the step counts offered by the UI: every divisor of 360
// from 2 to 90.
var StepCounts = []int{2, 3, 4, 5, 6, 8, 9, 10, 12, 15, 18, 20, 24, 30, 36, 40, 45, 60, 72, 90}

// ValidateEdges checks that edges splits a full turn into whole-degree
// steps.
func ValidateEdges(edges int) error {
	if edges < 1 || edges > 360 || 360%edges != 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidStepCount, edges)
	}
	return nil
}

// SnapEdges returns the entry of StepCounts closest to edges. Ties resolve
// to the smaller count.
func SnapEdges(edges int) int {
	best := StepCounts[0]
	for _, s := range StepCounts[1:] {
		if abs(s-edges) < abs(best-edges) {
			best = s
		}
	}
	return best
}

// StepIndex returns the position of edges in StepCounts, or -1.
func StepIndex(edges int) int {
	for i, s := range StepCounts {
		if s == edges {
			return i
		}
	}
	return -1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
