//go:build !tinygo && (!linux || board_sim)

package boards

import "runtime"

// Host simulation: no hardware, the LED lives in memory.
var Selected = Descriptor{
	Name:    "sim",
	Chip:    "sim-" + runtime.GOARCH,
	LEDPin:  0,
	Console: ConsoleStdout,
}
