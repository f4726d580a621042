package blink

import "blinkcode-go/console"

// PanicGuard reports a panic once and halts. Defer Recover as the first
// statement of main; set Out once a console exists.
type PanicGuard struct {
	Out  *console.Console
	Halt func()
}

// Recover must be called directly by defer.
func (g *PanicGuard) Recover() {
	r := recover()
	if r == nil {
		return
	}
	msg := describe(r)
	if g.Out != nil {
		g.Out.Line("panic", "Panic occurred: ", msg)
	} else {
		println("[panic] Panic occurred:", msg)
	}
	halt := g.Halt
	if halt == nil {
		halt = Halt
	}
	halt()
}

// Halt spins forever.
func Halt() {
	for {
	}
}

func describe(r any) string {
	switch v := r.(type) {
	case string:
		return v
	case error:
		return v.Error()
	case interface{ String() string }:
		return v.String()
	default:
		return "(unprintable panic value)"
	}
}
