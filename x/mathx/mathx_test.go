package mathx

import (
	"testing"
	"time"
)

func TestClamp(t *testing.T) {
	if got := Clamp(5, 1, 3); got != 3 {
		t.Fatalf("Clamp(5,1,3) = %d", got)
	}
	if got := Clamp(-1, 3, 1); got != 1 {
		t.Fatalf("swapped bounds: got %d", got)
	}
	if got := Clamp(time.Millisecond, 10*time.Millisecond, time.Hour); got != 10*time.Millisecond {
		t.Fatalf("duration clamp: got %v", got)
	}
}

func TestRoundDiv(t *testing.T) {
	for _, c := range []struct{ a, b, want uint32 }{
		{125_000_000, 1_000_000, 125},
		{133_500_000, 1_000_000, 134},
		{240_000_000, 1_000_000, 240},
		{7, 0, 0},
	} {
		if got := RoundDiv(c.a, c.b); got != c.want {
			t.Errorf("RoundDiv(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
