//go:build linux && !tinygo && !board_sim

package boards

// Raspberry Pi style header: LED on BCM17 (J8-11) through a resistor.
var Selected = Descriptor{
	Name:     "linux_gpiochip",
	LEDPin:   17,
	GPIOChip: "gpiochip0",
	Console:  ConsoleStdout,
}
