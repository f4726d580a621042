package blink

import (
	"blinkcode-go/config"
	"blinkcode-go/console"
	"blinkcode-go/hal"
	"blinkcode-go/x/mathx"
	"blinkcode-go/x/timex"
)

// Banner prints the startup lines.
func Banner(out *console.Console, p *hal.Platform, cfg config.Blink) {
	out.Line("boot", p.Chip, " LED Blinker")
	out.Line("boot", "=====================")
	out.Line("boot", "Hardware initialized successfully!")
	if p.CPUHz == 0 {
		out.Line("boot", "CPU Clock: unknown")
	} else {
		out.Line("boot", "CPU Clock: ", out.Uint(uint64(mathx.RoundDiv(p.CPUHz, 1_000_000))), " MHz")
	}
	out.Line("boot", "Chip model: ", p.Chip)
	out.Line("boot", "LED pin: ", out.Int(int64(p.LED.Number())), " (", string(p.Board.LEDKind), ")")
	out.Line("boot", "Interval: ", out.Uint(timex.Ms(cfg.Interval)), " ms")
}
