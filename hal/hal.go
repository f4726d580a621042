// Package hal is the thin hardware layer under the blinker: one output pin,
// one console sink and the facts printed in the boot banner.
package hal

import (
	"io"

	"blinkcode-go/boards"
	"blinkcode-go/console"
)

// Pin is a single logical output. Set(true) means "LED on" regardless of
// the electrical polarity underneath.
type Pin interface {
	Set(on bool)
	Get() bool
	Toggle()
	Number() int
}

// Platform is what Open brings up for the selected board.
type Platform struct {
	Board   boards.Descriptor
	Chip    string
	CPUHz   uint32 // 0 when the platform cannot tell
	LED     Pin
	Console *console.Console

	closers []func() error
}

// Close releases the LED and console in reverse order of acquisition.
// Firmware never reaches it; Linux tools and tests do.
func (p *Platform) Close() error {
	var first error
	for i := len(p.closers) - 1; i >= 0; i-- {
		if err := p.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	p.closers = nil
	return first
}

func (p *Platform) onClose(fn func() error) { p.closers = append(p.closers, fn) }

func newConsole(w io.Writer, crlf bool) *console.Console {
	if crlf {
		return console.NewCRLF(w)
	}
	return console.New(w)
}

// ActiveLow inverts p so that Set(true) drives the line low.
func ActiveLow(p Pin) Pin { return activeLow{p} }

type activeLow struct{ Pin }

func (a activeLow) Set(on bool) { a.Pin.Set(!on) }
func (a activeLow) Get() bool   { return !a.Pin.Get() }

// MemPin is an in-memory Pin used by the host simulation and by tests.
type MemPin struct {
	N      int
	Level  bool
	Writes int
}

func (m *MemPin) Set(on bool) { m.Level = on; m.Writes++ }
func (m *MemPin) Get() bool   { return m.Level }
func (m *MemPin) Toggle()     { m.Set(!m.Level) }
func (m *MemPin) Number() int { return m.N }
