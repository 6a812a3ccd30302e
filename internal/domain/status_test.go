package domain

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{StatusPending, StatusInProgress, true},
		{StatusPending, StatusCancelled, true},
		{StatusInProgress, StatusCompleted, true},

		// Nothing skips a state.
		{StatusPending, StatusCompleted, false},
		// Nothing moves backward.
		{StatusInProgress, StatusPending, false},
		{StatusCompleted, StatusInProgress, false},
		{StatusCompleted, StatusPending, false},
		// Terminal states go nowhere.
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		// Cancelled is only reachable from pending.
		{StatusInProgress, StatusCancelled, false},
	}
	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestTotal(t *testing.T) {
	lines := []OrderLine{
		{ItemID: 7, Quantity: 2, UnitPrice: 500},
		{ItemID: 9, Quantity: 1, UnitPrice: 1200},
	}
	if got := Total(lines); got != 2200 {
		t.Errorf("Total = %d, want 2200", got)
	}
	if got := Total(nil); got != 0 {
		t.Errorf("Total(nil) = %d, want 0", got)
	}
}
