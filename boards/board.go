package boards

import "time"

// LEDKind says how the status LED is driven.
type LEDKind string

const (
	LEDGPIO   LEDKind = "gpio"   // plain LED on a push-pull output
	LEDWS2812 LEDKind = "ws2812" // single addressable RGB pixel
)

// Console identifies where log lines go.
type Console string

const (
	ConsoleUSB    Console = "usb" // machine.Serial (USB-CDC on most boards)
	ConsoleUART0  Console = "uart0"
	ConsoleUART1  Console = "uart1"
	ConsoleStdout Console = "stdout"
)

// Descriptor describes the wiring the blinker needs on one board.
// Pin numbers are plain GPIO numbers (or line offsets on Linux); mapping to
// machine.Pin happens in the hal package.
type Descriptor struct {
	Name string
	Chip string

	LEDPin    int
	LEDKind   LEDKind
	ActiveLow bool

	// GPIOChip is the character device name on Linux (e.g. "gpiochip0").
	GPIOChip string

	Console              Console
	ConsoleTX, ConsoleRX int
	Baud                 uint32

	// BootDelay lets USB-CDC enumerate before the first line is printed.
	BootDelay time.Duration
}

// WithDefaults fills unset fields.
func (d Descriptor) WithDefaults() Descriptor {
	if d.LEDKind == "" {
		d.LEDKind = LEDGPIO
	}
	if d.Console == "" {
		d.Console = ConsoleUSB
	}
	if d.Baud == 0 {
		d.Baud = 115200
	}
	if d.Chip == "" {
		d.Chip = d.Name
	}
	return d
}
