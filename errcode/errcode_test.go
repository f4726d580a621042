package errcode

import (
	"errors"
	"testing"
)

func TestOf(t *testing.T) {
	cause := errors.New("no such line")
	cases := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, OK},
		{"bare code", UnknownPin, UnknownPin},
		{"wrapped", &E{C: ConfigureFailed, Op: "hal.Open", Err: cause}, ConfigureFailed},
		{"foreign", cause, Error},
	}
	for _, c := range cases {
		if got := Of(c.err); got != c.want {
			t.Errorf("%s: Of = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestEErrorAndUnwrap(t *testing.T) {
	cause := errors.New("busy")
	e := &E{C: PinInUse, Op: "hal.Open", Msg: "gpiochip0:17", Err: cause}
	if got, want := e.Error(), "hal.Open: pin_in_use: gpiochip0:17 (busy)"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(e, cause) {
		t.Fatalf("errors.Is should find the cause")
	}
	if got := (&E{C: Unsupported}).Error(); got != "unsupported" {
		t.Fatalf("bare E = %q", got)
	}
}

func TestWrap(t *testing.T) {
	if Wrap(WriteFailed, "console", nil) != nil {
		t.Fatalf("Wrap(nil) should be nil")
	}
	err := Wrap(WriteFailed, "console", errors.New("eof"))
	if Of(err) != WriteFailed {
		t.Fatalf("Of(Wrap) = %q", Of(err))
	}
}
