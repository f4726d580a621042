//go:build rp2040 && !board_rp2040_zero

package boards

import "time"

// Pico bring-up: onboard LED is GP25, console on UART0 (GP0/GP1).
var Selected = Descriptor{
	Name:      "pico_default",
	Chip:      "RP2040",
	LEDPin:    25,
	LEDKind:   LEDGPIO,
	Console:   ConsoleUART0,
	ConsoleTX: 0,
	ConsoleRX: 1,
	Baud:      115200,
	BootDelay: 2 * time.Second,
}
