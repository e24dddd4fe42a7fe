package pixel

import (
	"image"
)

// Layout selects how many bytes represent one pixel in a Buffer.
type Layout int

const (
	// Gray8 is 1 byte per pixel.
	Gray8 Layout = iota
	// RGB8 is 3 bytes per pixel.
	RGB8
	// RGB16 is 2 bytes per color part, 6 bytes per pixel.
	RGB16
)

func (l Layout) PixelSize() int {
	switch l {
	case RGB8:
		return 3
	case RGB16:
		return 6
	default:
		return 1
	}
}

// Buffer holds row-major pixel bytes in a fixed channel layout. It is
// built once from a decoded image and read-only afterwards.
type Buffer struct {
	pix    []byte
	stride int
	layout Layout
	width  uint32
	height uint32
}

// FromImage flattens img into a Buffer with the given layout. Each
// 16-bit channel of the RGB16 layout is stored little-endian.
func FromImage(img image.Image, layout Layout) *Buffer {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	step := layout.PixelSize()

	buf := &Buffer{
		pix:    make([]byte, w*h*step),
		stride: w * step,
		layout: layout,
		width:  uint32(w),
		height: uint32(h),
	}

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			switch layout {
			case RGB8:
				buf.pix[i] = byte(r >> 8)
				buf.pix[i+1] = byte(g >> 8)
				buf.pix[i+2] = byte(bl >> 8)
			case RGB16:
				buf.pix[i] = byte(r)
				buf.pix[i+1] = byte(r >> 8)
				buf.pix[i+2] = byte(g)
				buf.pix[i+3] = byte(g >> 8)
				buf.pix[i+4] = byte(bl)
				buf.pix[i+5] = byte(bl >> 8)
			default:
				buf.pix[i] = luma(r, g, bl)
			}
			i += step
		}
	}

	return buf
}

func luma(r, g, b uint32) byte {
	return byte((299*(r>>8) + 587*(g>>8) + 114*(b>>8)) / 1000)
}

func (p *Buffer) Width() uint32 {
	return p.width
}

func (p *Buffer) Height() uint32 {
	return p.height
}

func (p *Buffer) Layout() Layout {
	return p.layout
}

func (p *Buffer) PixelSize() int {
	return p.layout.PixelSize()
}

// Bytes returns the backing pixel bytes. Callers must not modify them.
func (p *Buffer) Bytes() []byte {
	return p.pix
}

// At returns the bytes of the pixel at (x, y), or nil when the
// coordinate is outside the buffer.
func (p *Buffer) At(x, y uint32) []byte {
	if x >= p.width || y >= p.height {
		return nil
	}
	i := int(y)*p.stride + int(x)*p.layout.PixelSize()
	return p.pix[i : i+p.layout.PixelSize()]
}

// Luma returns the 8-bit brightness of the pixel at (x, y). The second
// return is false when the coordinate is outside the buffer.
func (p *Buffer) Luma(x, y uint32) (byte, bool) {
	px := p.At(x, y)
	if px == nil {
		return 0, false
	}
	switch p.layout {
	case RGB8:
		return luma(uint32(px[0])<<8, uint32(px[1])<<8, uint32(px[2])<<8), true
	case RGB16:
		return luma(uint32(px[1])<<8, uint32(px[3])<<8, uint32(px[5])<<8), true
	default:
		return px[0], true
	}
}
