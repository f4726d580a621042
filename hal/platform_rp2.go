//go:build rp2040 || rp2350

package hal

import (
	"io"
	"machine"

	"blinkcode-go/boards"
	"blinkcode-go/errcode"

	"github.com/jangala-dev/tinygo-uartx/uartx"
)

// Open brings up clocks (done by the runtime before main), the console and
// the LED on an RP2040/RP2350 board.
func Open(d boards.Descriptor, initial bool) (*Platform, error) {
	d = d.WithDefaults()
	w, crlf, err := openConsole(d)
	if err != nil {
		return nil, err
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
		Console: newConsole(w, crlf),
	}, nil
}

func openConsole(d boards.Descriptor) (io.Writer, bool, error) {
	var hw *uartx.UART
	switch d.Console {
	case boards.ConsoleUART0:
		hw = uartx.UART0
	case boards.ConsoleUART1:
		hw = uartx.UART1
	case boards.ConsoleUSB:
		return machine.Serial, false, nil
	default:
		return nil, false, &errcode.E{C: errcode.ConsoleUnavailable, Op: "hal.Open", Msg: string(d.Console)}
	}
	if err := hw.Configure(uartx.UARTConfig{
		BaudRate: d.Baud,
		TX:       machine.Pin(d.ConsoleTX),
		RX:       machine.Pin(d.ConsoleRX),
	}); err != nil {
		return nil, false, &errcode.E{C: errcode.ConsoleUnavailable, Op: "hal.Open", Msg: string(d.Console), Err: err}
	}
	return hw, true, nil
}
