package config

import (
	"time"

	"blinkcode-go/errcode"
	"blinkcode-go/x/mathx"
)

const (
	DefaultInterval = 500 * time.Millisecond
	DefaultLogEvery = 10

	MinInterval = 10 * time.Millisecond
	MaxInterval = time.Hour
)

// Blink holds the compile-time behaviour of the blink loop.
type Blink struct {
	Interval     time.Duration // sleep after every toggle
	LogEvery     uint32        // a line is logged when counter%LogEvery == 0
	InitialLevel bool          // LED level before the first toggle
}

func Default() Blink {
	return Blink{
		Interval: DefaultInterval,
		LogEvery: DefaultLogEvery,
	}
}

// Validate rejects values the loop cannot run with.
func (b Blink) Validate() error {
	if b.Interval <= 0 {
		return &errcode.E{C: errcode.InvalidParams, Op: "config", Msg: "interval must be positive"}
	}
	if b.LogEvery == 0 {
		return &errcode.E{C: errcode.InvalidParams, Op: "config", Msg: "log_every must be non-zero"}
	}
	return nil
}

// Normalize clamps the interval into [MinInterval, MaxInterval].
func (b Blink) Normalize() Blink {
	b.Interval = mathx.Clamp(b.Interval, MinInterval, MaxInterval)
	return b
}
