package encode

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"imgarray/pkg/pixel"
)

// Config selects the encoding strategy for a run.
type Config struct {
	Mode Mode

	// BlackLevel is the luma threshold for the monochrome modes. A
	// pixel is "set" when its luma strictly exceeds it.
	BlackLevel uint8

	// InverseColor selects the background fill of the paged layout.
	InverseColor bool
}

// Encode maps a pixel buffer into an encoded stream. Each mode is an
// independent pure function over the buffer; this is the only dispatch.
func Encode(buf *pixel.Buffer, cfg Config, logger *zap.Logger) (*Stream, error) {
	switch cfg.Mode {
	case Gray8, Rgb8, Rgb16:
		return encodeRaw(buf), nil
	case BitPackedMono:
		return encodeBitPacked(buf, cfg.BlackLevel), nil
	case PagedMono:
		return encodePaged(buf, cfg, logger), nil
	case RLEMono:
		return encodeRLE(buf, cfg.BlackLevel), nil
	default:
		return nil, errors.Errorf("out-color %s is not implemented", cfg.Mode)
	}
}
