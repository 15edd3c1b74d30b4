//go:build tinygo

package hal

import (
	"image/color"
	"machine"
	"time"

	"tinygo.org/x/drivers/ssd1306"
)

type tinyGoHAL struct {
	logger *uartLogger
	led    *pinLED
	t      *tinyGoTicker
	disp   Display
}

// New returns the board HAL: UART logging, the onboard LED, a 1 ms
// ticker, and an SSD1306 status panel on I2C0 when one is attached.
func New() HAL {
	machine.I2C0.Configure(machine.I2CConfig{})

	dev := ssd1306.NewI2C(machine.I2C0)
	dev.Configure(ssd1306.Config{
		Address: 0x3C,
		Width:   128,
		Height:  64,
	})
	dev.ClearDisplay()

	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	return &tinyGoHAL{
		logger: &uartLogger{uart: machine.UART0},
		led:    &pinLED{pin: led},
		t:      newTinyGoTicker(),
		disp:   &oledDisplay{dev: &dev},
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) LED() LED         { return h.led }
func (h *tinyGoHAL) Ticker() Ticker   { return h.t }
func (h *tinyGoHAL) Display() Display { return h.disp }

type tinyGoTicker struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoTicker() *tinyGoTicker {
	t := &tinyGoTicker{ch: make(chan uint64, 16)}
	go func() {
		ticker := time.NewTicker(1 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoTicker) Ticks() <-chan uint64 { return t.ch }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLine(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type pinLED struct {
	pin machine.Pin
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }

// oledDisplay adapts the monochrome SSD1306 to the Display surface. Any
// lit RGB channel lights the pixel.
type oledDisplay struct {
	dev *ssd1306.Device
}

func (d *oledDisplay) Size() (x, y int16) { return d.dev.Size() }

func (d *oledDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.dev.SetPixel(x, y, c)
}

func (d *oledDisplay) Display() error { return d.dev.Display() }

func (d *oledDisplay) ClearRGB(r, g, b uint8) {
	if r == 0 && g == 0 && b == 0 {
		d.dev.ClearBuffer()
		return
	}
	w, h := d.dev.Size()
	on := color.RGBA{R: r, G: g, B: b, A: 0xFF}
	for y := int16(0); y < h; y++ {
		for x := int16(0); x < w; x++ {
			d.dev.SetPixel(x, y, on)
		}
	}
}
