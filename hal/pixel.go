package hal

import "image/color"

// DefaultPixelColor is a dim white, bright enough to see and easy on USB power.
var DefaultPixelColor = color.RGBA{R: 0x20, G: 0x20, B: 0x20}

// PixelWriter is the subset of tinygo.org/x/drivers/ws2812.Device we need.
type PixelWriter interface {
	WriteColors(buf []color.RGBA) error
}

// PixelPin drives a single addressable LED as if it were an on/off pin.
type PixelPin struct {
	dev PixelWriter
	n   int
	on  color.RGBA
	lvl bool
	buf [1]color.RGBA
	err error
}

func NewPixelPin(dev PixelWriter, n int, on color.RGBA) *PixelPin {
	return &PixelPin{dev: dev, n: n, on: on}
}

func (p *PixelPin) Set(on bool) {
	p.lvl = on
	p.buf[0] = color.RGBA{}
	if on {
		p.buf[0] = p.on
	}
	p.err = p.dev.WriteColors(p.buf[:])
}

func (p *PixelPin) Get() bool   { return p.lvl }
func (p *PixelPin) Toggle()     { p.Set(!p.lvl) }
func (p *PixelPin) Number() int { return p.n }

// Err reports the result of the most recent write.
func (p *PixelPin) Err() error { return p.err }
