package blink

import (
	"time"

	"blinkcode-go/console"
	"blinkcode-go/hal"
)

// errPin is implemented by pins whose writes can fail (gpiocdev lines,
// ws2812 pixels).
type errPin interface{ Err() error }

// SelfTest drives the LED on and off for the given number of cycles and
// checks every write. It leaves the LED off and reports overall success.
func SelfTest(led hal.Pin, out *console.Console, cycles int, dwell time.Duration, sleep func(time.Duration)) bool {
	if sleep == nil {
		sleep = time.Sleep
	}
	pass := true
	for i := 0; i < cycles; i++ {
		for _, on := range [2]bool{true, false} {
			led.Set(on)
			if !checkWrite(led, on, out, i) {
				pass = false
			}
			sleep(dwell)
		}
	}
	if pass {
		out.Line("selftest", "PASS ", out.Int(int64(cycles)), " cycles on pin ", out.Int(int64(led.Number())))
	} else {
		out.Line("selftest", "FAIL on pin ", out.Int(int64(led.Number())))
	}
	return pass
}

func checkWrite(led hal.Pin, want bool, out *console.Console, cycle int) bool {
	if ep, ok := led.(errPin); ok {
		if err := ep.Err(); err != nil {
			out.Line("selftest", "cycle ", out.Int(int64(cycle)), ": write failed: ", err.Error())
			return false
		}
	}
	if led.Get() != want {
		out.Line("selftest", "cycle ", out.Int(int64(cycle)), ": level did not stick")
		return false
	}
	return true
}
