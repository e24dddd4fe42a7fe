package encode

import (
	"encoding/binary"

	"imgarray/pkg/pixel"
)

// encodeRLE scans the thresholded image as one flat row-major sequence
// and emits one byte per finished run: bit 7 is the run color, bits 6-0
// the counter (run length minus one, at most 127).
//
// The last pending run of the scan is never flushed. Consumers of this
// format were built against streams without it, so the drop is kept.
// The stream starts with a 2-byte little-endian count of the run bytes
// that follow.
func encodeRLE(buf *pixel.Buffer, level uint8) *Stream {
	width := buf.Width()
	height := buf.Height()

	var runs []byte

	if first, ok := buf.Luma(0, 0); ok {
		color := first > level
		var count byte
		started := false

		for y := uint32(0); y < height; y++ {
			for x := uint32(0); x < width; x++ {
				v, _ := buf.Luma(x, y)
				c := v > level

				switch {
				case c != color || count == 127:
					b := count
					if color {
						b |= 0x80
					}
					runs = append(runs, b)
					color = c
					count = 0
				case !started:
					// the very first pixel opens the run at
					// counter 0 without incrementing
					started = true
				default:
					count++
				}
			}
		}
	}

	data := make([]byte, 2, 2+len(runs))
	binary.LittleEndian.PutUint16(data, uint16(len(runs)))
	data = append(data, runs...)

	return &Stream{Data: data, UnitSize: 1, WidthDelim: 1}
}
