package pricing

import "testing"

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		name     string
		original int
		final    int
		want     int
	}{
		{"quarter off", 20000, 15000, 25},
		{"no discount when equal", 10000, 10000, 0},
		{"no discount when final higher", 10000, 12000, 0},
		{"zero original", 0, 5000, 0},
		{"negative original", -100, 50, 0},
		{"full discount", 8000, 0, 100},
		{"rounds nearest", 3000, 2000, 33},
	}

	for _, tt := range tests {
		if got := DiscountPercent(tt.original, tt.final); got != tt.want {
			t.Errorf("%s: DiscountPercent(%d, %d) = %d, want %d",
				tt.name, tt.original, tt.final, got, tt.want)
		}
	}
}

func TestDiscountPercentRange(t *testing.T) {
	// For any positive original the result stays within [0,100].
	for original := 1; original <= 5000; original += 13 {
		for final := 0; final <= original+500; final += 17 {
			got := DiscountPercent(original, final)
			if got < 0 || got > 100 {
				t.Fatalf("DiscountPercent(%d, %d) = %d out of range", original, final, got)
			}
			if final >= original && got != 0 {
				t.Fatalf("DiscountPercent(%d, %d) = %d, want 0 when final >= original", original, final, got)
			}
		}
	}
}

func TestProfit(t *testing.T) {
	if got := Profit(15000, 20000, 9000); got != 6000 {
		t.Errorf("final price should drive margin: got %d, want 6000", got)
	}
	if got := Profit(0, 20000, 9000); got != 11000 {
		t.Errorf("missing final falls back to original: got %d, want 11000", got)
	}
	if got := Profit(0, 0, 9000); got != -9000 {
		t.Errorf("no price at all: got %d, want -9000", got)
	}
	if got := Profit(5000, 0, 9000); got != -4000 {
		t.Errorf("negative margin is allowed: got %d, want -4000", got)
	}
}
