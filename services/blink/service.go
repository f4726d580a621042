package blink

import (
	"time"

	"blinkcode-go/config"
	"blinkcode-go/console"
	"blinkcode-go/hal"
)

const tag = "blink"

// Service is the blink loop: toggle, maybe log, sleep.
type Service struct {
	led     hal.Pin
	out     *console.Console
	cfg     config.Blink
	sleep   func(time.Duration)
	counter uint32
}

type Option func(*Service)

// WithSleep replaces time.Sleep, for tests.
func WithSleep(fn func(time.Duration)) Option {
	return func(s *Service) { s.sleep = fn }
}

// New panics on an invalid cfg; the firmware has no other way to fail.
func New(led hal.Pin, out *console.Console, cfg config.Blink, opts ...Option) *Service {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	s := &Service{led: led, out: out, cfg: cfg.Normalize(), sleep: time.Sleep}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Step runs one iteration of the loop.
func (s *Service) Step() {
	s.led.Toggle()
	if s.counter%s.cfg.LogEvery == 0 {
		s.out.Line(tag, "LED blinked ", s.out.Uint(uint64(s.counter)), " times")
	}
	s.counter++ // wraps at 2^32
	s.sleep(s.cfg.Interval)
}

// Run never returns.
func (s *Service) Run() {
	for {
		s.Step()
	}
}

func (s *Service) Counter() uint32 { return s.counter }
