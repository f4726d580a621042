//go:build !tinygo && (!linux || board_sim)

package hal

import (
	"os"

	"blinkcode-go/boards"
)

// Open on a host without GPIO keeps the LED in memory and logs to stdout.
func Open(d boards.Descriptor, initial bool) (*Platform, error) {
	d = d.WithDefaults()
	var led Pin = &MemPin{N: d.LEDPin}
	if d.ActiveLow {
		led = ActiveLow(led)
	}
	led.Set(initial)
	return &Platform{
		Board:   d,
		Chip:    d.Chip,
		LED:     led,
		Console: newConsole(os.Stdout, false),
	}, nil
}
