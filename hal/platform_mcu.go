//go:build tinygo && baremetal && !(rp2040 || rp2350)

package hal

import (
	"machine"

	"blinkcode-go/boards"
	"blinkcode-go/errcode"
)

// Open brings up the LED and machine.Serial on any other TinyGo target.
func Open(d boards.Descriptor, initial bool) (*Platform, error) {
	d = d.WithDefaults()
	if d.Console != boards.ConsoleUSB {
		return nil, &errcode.E{C: errcode.ConsoleUnavailable, Op: "hal.Open", Msg: string(d.Console)}
	}
	led, err := openLED(d, initial)
	if err != nil {
		return nil, err
	}
	return &Platform{
		Board:   d,
		Chip:    d.Chip,
		CPUHz:   machine.CPUFrequency(),
		LED:     led,
		Console: newConsole(machine.Serial, false),
	}, nil
}
