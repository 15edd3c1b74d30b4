// Package monitor renders a front panel of the kernel's thread slots: one
// row per slot with its id and state, plus the uptime counter. It runs as
// an ordinary kernel thread and redraws between sleeps, so it doubles as
// a live exerciser of the query predicates.
package monitor

import (
	"fmt"
	"image/color"

	"kestrel/hal"
	"kestrel/kernel"

	"tinygo.org/x/tinyfont"
)

var (
	colorBG       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	colorFG       = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	colorRunning  = color.RGBA{R: 0x4a, G: 0xdf, B: 0x6a, A: 0xff}
	colorSleeping = color.RGBA{R: 0x66, G: 0x99, B: 0xff, A: 0xff}
	colorSuspend  = color.RGBA{R: 0xff, G: 0xdd, B: 0x66, A: 0xff}
	colorDisabled = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
)

// redrawMS is the panel refresh period in milliseconds.
const redrawMS = 100

// Panel draws the slot table to a display.
type Panel struct {
	k    *kernel.Kernel
	d    hal.Display
	font tinyfont.Fonter
	rowH int16
}

func New(k *kernel.Kernel, d hal.Display) *Panel {
	return &Panel{
		k:    k,
		d:    d,
		font: &tinyfont.Org01,
		rowH: 10,
	}
}

// Run is the panel's thread entry point.
func (p *Panel) Run(id kernel.ThreadID, arg any) {
	for {
		p.draw()
		p.k.Sleep(redrawMS)
	}
}

func (p *Panel) draw() {
	p.d.ClearRGB(colorBG.R, colorBG.G, colorBG.B)

	self := p.k.CurrentThread()
	y := p.rowH
	for id := kernel.ThreadID(0); id < kernel.MaxSlots; id++ {
		state, c := p.slotState(id, self)
		line := fmt.Sprintf("T%d %s", id, state)
		tinyfont.WriteLine(p.d, p.font, 4, y, line, c)
		y += p.rowH
	}

	up := fmt.Sprintf("up %dms", p.k.Millis())
	tinyfont.WriteLine(p.d, p.font, 4, y+p.rowH/2, up, colorFG)

	p.d.Display()
}

func (p *Panel) slotState(id, self kernel.ThreadID) (string, color.RGBA) {
	switch {
	case !p.k.ThreadEnabled(id):
		return "disabled", colorDisabled
	case id == self:
		return "running", colorRunning
	case p.k.ThreadSleeping(id):
		return "sleeping", colorSleeping
	case p.k.ThreadSuspended(id):
		return "suspended", colorSuspend
	default:
		return "ready", colorFG
	}
}
