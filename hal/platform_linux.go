//go:build linux && !tinygo && !board_sim

package hal

import (
	"errors"
	"os"
	"syscall"

	"blinkcode-go/boards"
	"blinkcode-go/errcode"

	"github.com/warthog618/go-gpiocdev"
)

const consumer = "blinkcode"

// linePin drives one line of a GPIO character device.
type linePin struct {
	l     *gpiocdev.Line
	n     int
	level bool
	err   error
}

func (p *linePin) Set(on bool) {
	v := 0
	if on {
		v = 1
	}
	p.err = p.l.SetValue(v)
	p.level = on
}

func (p *linePin) Get() bool   { return p.level }
func (p *linePin) Toggle()     { p.Set(!p.level) }
func (p *linePin) Number() int { return p.n }

// Err reports the result of the most recent write.
func (p *linePin) Err() error { return p.err }

// Open requests the LED line as an output on d.GPIOChip and logs to stdout.
func Open(d boards.Descriptor, initial bool) (*Platform, error) {
	d = d.WithDefaults()
	if d.LEDKind != boards.LEDGPIO {
		return nil, &errcode.E{C: errcode.Unsupported, Op: "hal.Open", Msg: "led kind " + string(d.LEDKind)}
	}
	electrical := initial
	if d.ActiveLow {
		electrical = !electrical
	}
	v := 0
	if electrical {
		v = 1
	}
	l, err := gpiocdev.RequestLine(d.GPIOChip, d.LEDPin, gpiocdev.AsOutput(v), gpiocdev.WithConsumer(consumer))
	if err != nil {
		return nil, &errcode.E{C: lineErrCode(err), Op: "hal.Open", Msg: d.GPIOChip, Err: err}
	}

	var led Pin = &linePin{l: l, n: d.LEDPin, level: electrical}
	if d.ActiveLow {
		led = ActiveLow(led)
	}

	chip := d.Chip
	if chip == d.Name {
		if m, ok := readModel(sysRoot); ok {
			chip = m
		}
	}
	p := &Platform{
		Board:   d,
		Chip:    chip,
		CPUHz:   readMaxCPUHz(sysRoot),
		LED:     led,
		Console: newConsole(os.Stdout, false),
	}
	// Hand the line back as an input so nothing stays driven after exit.
	p.onClose(func() error {
		_ = l.Reconfigure(gpiocdev.AsInput)
		return l.Close()
	})
	return p, nil
}

func lineErrCode(err error) errcode.Code {
	switch {
	case errors.Is(err, syscall.EBUSY):
		return errcode.PinInUse
	case errors.Is(err, os.ErrNotExist), errors.Is(err, syscall.EINVAL):
		return errcode.UnknownPin
	default:
		return errcode.ConfigureFailed
	}
}
