package main

import (
	"time"

	"blinkcode-go/boards"
	"blinkcode-go/config"
	"blinkcode-go/hal"
	"blinkcode-go/services/blink"
)

func main() {
	guard := &blink.PanicGuard{Halt: blink.Halt}
	defer guard.Recover()

	// Allow USB CDC to enumerate before we print.
	time.Sleep(boards.Selected.BootDelay)

	cfg := config.Default()
	plat, err := hal.Open(boards.Selected, cfg.InitialLevel)
	if err != nil {
		panic(err)
	}
	guard.Out = plat.Console

	blink.Banner(plat.Console, plat, cfg)
	blink.New(plat.LED, plat.Console, cfg).Run()
}
