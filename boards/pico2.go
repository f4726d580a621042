//go:build rp2350

package boards

import "time"

var Selected = Descriptor{
	Name:      "pico2",
	Chip:      "RP2350",
	LEDPin:    25,
	Console:   ConsoleUART0,
	ConsoleTX: 0,
	ConsoleRX: 1,
	BootDelay: 2 * time.Second,
}
