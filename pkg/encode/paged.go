package encode

import (
	"go.uber.org/zap"

	"imgarray/pkg/pixel"
)

// encodePaged lays the image out in horizontal pages of 8 pixel rows.
// The byte at (page, column) holds the 8 vertical pixels of that column
// within the page, bit 0 at the top.
//
// Every byte starts at a background value of literal 0 or 1 depending
// on the inverse-color flag. This is not a full 0x00/0xFF fill; the
// exact values are kept because generated headers already in the wild
// contain them.
func encodePaged(buf *pixel.Buffer, cfg Config, logger *zap.Logger) *Stream {
	width := buf.Width()
	height := buf.Height()
	pages := (height + 7) / 8

	var fill byte
	if !cfg.InverseColor {
		fill = 1
	}

	out := make([]byte, int(width)*int(pages))
	for i := range out {
		out[i] = fill
	}

	for page := uint32(0); page < pages; page++ {
		for col := uint32(0); col < width; col++ {
			for cc := uint32(0); cc < 8; cc++ {
				row := page*8 + cc
				if row >= height {
					continue
				}

				v, ok := buf.Luma(col, row)
				if !ok {
					logger.With(
						zap.Uint32("column", col),
						zap.Uint32("row", row),
					).Warn("pixel outside image")
					continue
				}

				idx := int(page*width + col)
				if idx >= len(out) {
					logger.With(
						zap.Uint32("column", col),
						zap.Int("index", idx),
					).Warn("pixel outside paged buffer")
					continue
				}

				var bit byte
				if v > cfg.BlackLevel {
					bit = 1
				}
				out[idx] = out[idx]&^(1<<cc) | bit<<cc
			}
		}
	}

	return &Stream{Data: out, UnitSize: 1, WidthDelim: 8}
}
