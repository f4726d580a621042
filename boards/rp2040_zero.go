//go:build rp2040 && board_rp2040_zero

package boards

import "time"

// Waveshare RP2040-Zero: no plain LED, one WS2812 on GP16. Console over USB.
var Selected = Descriptor{
	Name:      "rp2040_zero",
	Chip:      "RP2040",
	LEDPin:    16,
	LEDKind:   LEDWS2812,
	Console:   ConsoleUSB,
	BootDelay: 2 * time.Second,
}
