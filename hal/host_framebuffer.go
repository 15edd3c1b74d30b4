//go:build !tinygo

package hal

import (
	"image/color"
	"sync"
)

// hostFramebuffer is an RGBA pixel buffer shared between the front-panel
// thread (writer) and the window loop (reader). Pixel access goes through
// the mutex; the window snapshots a copy per frame.
type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	pix    []byte // RGBA, 4 bytes per pixel
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	return &hostFramebuffer{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*4),
	}
}

func (f *hostFramebuffer) Size() (x, y int16) {
	return int16(f.width), int16(f.height)
}

func (f *hostFramebuffer) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= f.width || iy < 0 || iy >= f.height {
		return
	}
	f.mu.Lock()
	off := (iy*f.width + ix) * 4
	f.pix[off+0] = c.R
	f.pix[off+1] = c.G
	f.pix[off+2] = c.B
	f.pix[off+3] = 0xFF
	f.mu.Unlock()
}

// Display is a no-op on host; the window presents every frame.
func (f *hostFramebuffer) Display() error { return nil }

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := 0; i < len(f.pix); i += 4 {
		f.pix[i+0] = r
		f.pix[i+1] = g
		f.pix[i+2] = b
		f.pix[i+3] = 0xFF
	}
}

func (f *hostFramebuffer) snapshot(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.pix)
}
