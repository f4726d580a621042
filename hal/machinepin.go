//go:build tinygo && baremetal

package hal

import (
	"machine"

	"blinkcode-go/boards"
	"blinkcode-go/errcode"

	"tinygo.org/x/drivers/ws2812"
)

// gpioPin caches the level: not every target reads back an output pin.
type gpioPin struct {
	p     machine.Pin
	level bool
}

func (g *gpioPin) Set(on bool) { g.level = on; g.p.Set(on) }
func (g *gpioPin) Get() bool   { return g.level }
func (g *gpioPin) Toggle()     { g.Set(!g.level) }
func (g *gpioPin) Number() int { return int(g.p) }

func openLED(d boards.Descriptor, initial bool) (Pin, error) {
	pin := machine.Pin(d.LEDPin)
	if pin == machine.NoPin {
		return nil, &errcode.E{C: errcode.UnknownPin, Op: "hal.Open", Msg: "board has no LED"}
	}
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	var led Pin
	switch d.LEDKind {
	case boards.LEDGPIO:
		led = &gpioPin{p: pin}
	case boards.LEDWS2812:
		led = NewPixelPin(ws2812.New(pin), d.LEDPin, DefaultPixelColor)
	default:
		return nil, &errcode.E{C: errcode.Unsupported, Op: "hal.Open", Msg: "led kind " + string(d.LEDKind)}
	}
	if d.ActiveLow {
		led = ActiveLow(led)
	}
	led.Set(initial)
	return led, nil
}
