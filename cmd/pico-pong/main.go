//go:build tinygo

// pico-pong is the Raspberry Pi Pico firmware: two slide potentiometers on
// GP26/GP27 and an ST7735R panel on SPI0. Score lines go to the serial
// console.
package main

import (
	"context"
	"math/rand"
	"os"
	"time"

	"github.com/vovakirdan/slider-pong/internal/core"
	"github.com/vovakirdan/slider-pong/internal/loop"
	"github.com/vovakirdan/slider-pong/internal/platform/tft"
	"github.com/vovakirdan/slider-pong/internal/pong"
	"github.com/vovakirdan/slider-pong/internal/scene"
)

func main() {
	display, err := tft.Open()
	if err != nil {
		halt(err)
	}
	left, right, err := tft.Sliders()
	if err != nil {
		halt(err)
	}

	state := pong.NewGameState()
	sc := scene.New(state)
	if _, err := tft.Attach(display, sc); err != nil {
		halt(err)
	}

	// Slider noise plus uptime is the only entropy on the board.
	rc := core.DefaultConfig()
	rc.Seed = time.Now().UnixNano() ^ int64(left.Get())<<16 ^ int64(right.Get())

	driver := loop.New(state, loop.Config{
		Left:      left,
		Right:     right,
		Sprites:   sc.Sprites(),
		Rand:      rand.New(rand.NewSource(rc.Seed)),
		Announcer: loop.WriterAnnouncer{W: os.Stdout},
		Runtime:   rc,
	})

	loop.Banner(os.Stdout)
	if err := driver.Run(context.Background()); err != nil {
		halt(err)
	}
}

// halt reports a fatal setup error on the serial console and parks the CPU.
func halt(err error) {
	println("pico-pong:", err.Error())
	for {
		time.Sleep(time.Hour)
	}
}
