package emit

import (
	"fmt"
)

// Symbols derives the named constants emitted next to the array.
type Symbols struct {
	Name       string
	Width      int
	Height     int
	WidthDelim int
	PixelSize  int
}

func (s Symbols) constName(suffix string) string {
	return s.Name + "_" + suffix
}

// Padded reports whether the LENGTH expression carries a trailing +1
// unit. The fractional check runs once against the whole image, not
// per row.
func (s Symbols) Padded() bool {
	return s.WidthDelim > 0 && (s.Width*s.Height*s.PixelSize)%s.WidthDelim != 0
}

func (s Symbols) WidthBytesExpr() string {
	return fmt.Sprintf("%[1]s_WIDTH / %[1]s_WIDTH_DELIMITER", s.Name)
}

func (s Symbols) LengthExpr() string {
	expr := fmt.Sprintf("%[1]s_HEIGHT * %[1]s_PIXEL_SIZE * %[1]s_WIDTH_BYTES", s.Name)
	if s.Padded() {
		expr += " + 1"
	}
	return expr
}
