//go:build !tinygo

package hal

import (
	"kestrel/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window showing the front-panel framebuffer
// and steps the tick source from the frame loop. newApp composes the
// application against the HAL and may return a per-frame step func.
// Blocks until the window closes.
func RunWindow(newApp func(HAL) func() error) error {
	h := New().(*hostHAL)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("kestrel (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*4, h.fb.height*4)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	g.h.t.step()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
		g.scratch = make([]byte, len(fb.pix))
	}
	fb.snapshot(g.scratch)
	g.fbImg.WritePixels(g.scratch)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
