package hal

import (
	"errors"
	"image/color"
	"testing"
)

func TestActiveLowInverts(t *testing.T) {
	raw := &MemPin{N: 25}
	led := ActiveLow(raw)

	led.Set(true)
	if raw.Level {
		t.Fatalf("logical on should drive the line low")
	}
	if !led.Get() {
		t.Fatalf("Get should report logical on")
	}
	led.Toggle()
	if !raw.Level || led.Get() {
		t.Fatalf("toggle: raw=%v logical=%v, want raw high / logical off", raw.Level, led.Get())
	}
	if led.Number() != 25 {
		t.Fatalf("Number = %d", led.Number())
	}
}

func TestMemPinCountsWrites(t *testing.T) {
	p := &MemPin{}
	p.Toggle()
	p.Toggle()
	p.Set(true)
	if p.Writes != 3 || !p.Level {
		t.Fatalf("writes=%d level=%v", p.Writes, p.Level)
	}
}

type fakeStrip struct {
	frames [][]color.RGBA
	err    error
}

func (f *fakeStrip) WriteColors(buf []color.RGBA) error {
	f.frames = append(f.frames, append([]color.RGBA(nil), buf...))
	return f.err
}

func TestPixelPin(t *testing.T) {
	strip := &fakeStrip{}
	on := color.RGBA{R: 1, G: 2, B: 3}
	p := NewPixelPin(strip, 16, on)

	p.Set(true)
	p.Toggle()
	if len(strip.frames) != 2 {
		t.Fatalf("frames = %d, want 2", len(strip.frames))
	}
	if strip.frames[0][0] != on {
		t.Errorf("on frame = %v, want %v", strip.frames[0][0], on)
	}
	if strip.frames[1][0] != (color.RGBA{}) {
		t.Errorf("off frame = %v, want black", strip.frames[1][0])
	}
	if p.Get() || p.Number() != 16 {
		t.Errorf("Get=%v Number=%d", p.Get(), p.Number())
	}

	strip.err = errors.New("pio busy")
	p.Set(true)
	if p.Err() == nil {
		t.Errorf("Err should surface the last write failure")
	}
}

func TestPlatformCloseOrder(t *testing.T) {
	var order []string
	p := &Platform{}
	p.onClose(func() error { order = append(order, "console"); return nil })
	p.onClose(func() error { order = append(order, "led"); return errors.New("busy") })

	if err := p.Close(); err == nil {
		t.Fatalf("Close should return the first failure")
	}
	if len(order) != 2 || order[0] != "led" || order[1] != "console" {
		t.Fatalf("close order = %v", order)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("second Close = %v, want nil", err)
	}
}
