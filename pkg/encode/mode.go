package encode

import (
	"strings"

	"github.com/pkg/errors"

	"imgarray/pkg/pixel"
)

// Mode is the closed set of output pixel encodings.
type Mode int

const (
	// Gray8 copies one luma byte per pixel.
	Gray8 Mode = iota
	// Rgb8 copies 3 channel bytes per pixel.
	Rgb8
	// Rgb16 copies 6 channel bytes per pixel, channels little-endian.
	Rgb16
	// RLEMono emits 7-bit runs of thresholded pixels with a 2-byte
	// little-endian run-count prefix.
	RLEMono
	// BitPackedMono packs 8 thresholded pixels per byte, MSB first.
	BitPackedMono
	// PagedMono emits the page/column layout used by SSD1306-class
	// OLED controllers, 8 vertical pixels per byte.
	PagedMono
	// GCode is declared but not implemented.
	GCode
)

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "gray8":
		return Gray8, nil
	case "rgb8":
		return Rgb8, nil
	case "rgb16":
		return Rgb16, nil
	case "rle", "wbzip":
		return RLEMono, nil
	case "wb1":
		return BitPackedMono, nil
	case "ssd1306":
		return PagedMono, nil
	case "gcode":
		return GCode, nil
	default:
		return 0, errors.Errorf("unknown out-color %q", s)
	}
}

func (m Mode) String() string {
	switch m {
	case Gray8:
		return "gray8"
	case Rgb8:
		return "rgb8"
	case Rgb16:
		return "rgb16"
	case RLEMono:
		return "rle"
	case BitPackedMono:
		return "wb1"
	case PagedMono:
		return "ssd1306"
	case GCode:
		return "gcode"
	default:
		return "unknown"
	}
}

// Layout returns the pixel layout the mode consumes. The monochrome
// modes threshold luma, so they read a Gray8 buffer.
func (m Mode) Layout() pixel.Layout {
	switch m {
	case Rgb8:
		return pixel.RGB8
	case Rgb16:
		return pixel.RGB16
	default:
		return pixel.Gray8
	}
}
