package conv

import "testing"

func TestUtoa(t *testing.T) {
	var buf [20]byte
	for _, c := range []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{10, "10"},
		{4294967295, "4294967295"},
		{18446744073709551615, "18446744073709551615"},
	} {
		if got := string(Utoa(buf[:], c.n)); got != c.want {
			t.Errorf("Utoa(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestItoa(t *testing.T) {
	var buf [20]byte
	if got := string(Itoa(buf[:], -42)); got != "-42" {
		t.Fatalf("Itoa(-42) = %q", got)
	}
	if got := string(Itoa(buf[:0], 1)); got != "" {
		t.Fatalf("empty buffer should produce empty slice, got %q", got)
	}
}
