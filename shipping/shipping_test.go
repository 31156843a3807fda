package shipping

import (
	"strings"
	"testing"

	"antojos/utils"
)

func TestCostTiers(t *testing.T) {
	tests := []struct {
		subtotal int
		want     int
	}{
		{0, 10000},
		{45000, 10000},
		{49999, 10000},
		{50000, 5000}, // boundary: reduced fee, not full
		{99999, 5000},
		{100000, 0}, // boundary: free
		{120000, 0},
	}

	for _, tt := range tests {
		if got := Cost(tt.subtotal); got != tt.want {
			t.Errorf("Cost(%d) = %d, want %d", tt.subtotal, got, tt.want)
		}
	}
}

func TestMessageNamesShortfall(t *testing.T) {
	msg := Message(45000)
	if msg == "" {
		t.Fatal("expected incentive message below the reduced tier")
	}
	if !strings.Contains(msg, utils.FormatCOP(5000)) {
		t.Errorf("message should name the 5000 shortfall, got %q", msg)
	}

	msg = Message(80000)
	if !strings.Contains(msg, utils.FormatCOP(20000)) {
		t.Errorf("message should name the 20000 shortfall to free shipping, got %q", msg)
	}
}

func TestMessageEmptyWhenFree(t *testing.T) {
	for _, subtotal := range []int{100000, 120000, 500000} {
		if msg := Message(subtotal); msg != "" {
			t.Errorf("Message(%d) = %q, want empty", subtotal, msg)
		}
	}
}

func TestMessageConsistentWithCost(t *testing.T) {
	// A nonzero fee must always come with a nonempty incentive message,
	// and a zero fee with an empty one.
	for subtotal := 0; subtotal <= 150000; subtotal += 1357 {
		fee := Cost(subtotal)
		msg := Message(subtotal)
		if fee > 0 && msg == "" {
			t.Fatalf("subtotal %d: fee %d but no incentive message", subtotal, fee)
		}
		if fee == 0 && msg != "" {
			t.Fatalf("subtotal %d: free shipping but message %q", subtotal, msg)
		}
	}
}
