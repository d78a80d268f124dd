//go:build tinygo

package tft

import (
	"fmt"
	"machine"

	"tinygo.org/x/drivers/st7735"

	"github.com/vovakirdan/slider-pong/internal/pong"
)

// Wiring on the Pico.
const (
	pinSCK = machine.GP18
	pinSDO = machine.GP19
	pinDC  = machine.GP20
	pinCS  = machine.GP17
	pinRST = machine.GP7

	spiFrequency = 24_000_000
)

// Open configures SPI0 and the ST7735R panel.
func Open() (*st7735.Device, error) {
	err := machine.SPI0.Configure(machine.SPIConfig{
		Frequency: spiFrequency,
		SCK:       pinSCK,
		SDO:       pinSDO,
	})
	if err != nil {
		return nil, fmt.Errorf("tft: configure spi: %w", err)
	}

	d := st7735.New(machine.SPI0, pinRST, pinDC, pinCS, machine.NoPin)
	d.Configure(st7735.Config{
		Width:  pong.ScreenWidth,
		Height: pong.ScreenHeight,
	})
	d.IsBGR(true)
	return &d, nil
}

// Sliders initialises the ADC and returns the left (GP26) and right (GP27)
// slider channels.
func Sliders() (left, right machine.ADC, err error) {
	machine.InitADC()

	left = machine.ADC{Pin: machine.ADC0}
	if err := left.Configure(machine.ADCConfig{}); err != nil {
		return left, right, fmt.Errorf("tft: configure left slider: %w", err)
	}
	right = machine.ADC{Pin: machine.ADC1}
	if err := right.Configure(machine.ADCConfig{}); err != nil {
		return left, right, fmt.Errorf("tft: configure right slider: %w", err)
	}
	return left, right, nil
}
