//go:build tinygo && baremetal && !(rp2040 || rp2350)

package boards

import (
	"machine"
	"time"
)

// Any other TinyGo target: use the board's LED alias and default serial.
var Selected = Descriptor{
	Name:      "mcu_default",
	LEDPin:    int(machine.LED),
	Console:   ConsoleUSB,
	BootDelay: 2 * time.Second,
}
