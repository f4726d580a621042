// cmd/boardtest/main.go
package main

import (
	"time"

	"blinkcode-go/boards"
	"blinkcode-go/hal"
	"blinkcode-go/services/blink"
)

// ---------- Configuration ----------

const (
	cycles = 20
	dwell  = 100 * time.Millisecond

	// Result pattern timing
	flashShort = 120 * time.Millisecond
	flashLong  = 400 * time.Millisecond
	flashGap   = 200 * time.Millisecond
)

// ledFlashPassFail: double short flash on pass, single long flash on fail.
func ledFlashPassFail(led hal.Pin, pass bool) {
	if pass {
		for i := 0; i < 2; i++ {
			led.Set(true)
			time.Sleep(flashShort)
			led.Set(false)
			time.Sleep(flashGap)
		}
		return
	}
	led.Set(true)
	time.Sleep(flashLong)
	led.Set(false)
	time.Sleep(flashGap)
}

// ---------- Main ----------

func main() {
	guard := &blink.PanicGuard{Halt: blink.Halt}
	defer guard.Recover()

	time.Sleep(boards.Selected.BootDelay)

	plat, err := hal.Open(boards.Selected, false)
	if err != nil {
		panic(err)
	}
	defer plat.Close()
	guard.Out = plat.Console

	plat.Console.Line("boardtest", "board ", plat.Board.Name, ", chip ", plat.Chip)
	pass := blink.SelfTest(plat.LED, plat.Console, cycles, dwell, nil)
	ledFlashPassFail(plat.LED, pass)
}
