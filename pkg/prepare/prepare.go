package prepare

import (
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type ResizeMode int

const (
	// ResizeFit scales down preserving the aspect ratio so the image
	// fits inside the requested box.
	ResizeFit ResizeMode = iota
	// ResizeExact scales to the requested size ignoring the aspect ratio.
	ResizeExact
	// ResizeFill crops to the requested size after scaling, centered.
	ResizeFill
)

func ParseResizeMode(s string) (ResizeMode, error) {
	switch strings.ToLower(s) {
	case "fit":
		return ResizeFit, nil
	case "exact":
		return ResizeExact, nil
	case "fill":
		return ResizeFill, nil
	default:
		return 0, errors.Errorf("unknown resize mode %q", s)
	}
}

type Filter int

const (
	FilterCatmullRom Filter = iota
	FilterNearest
	FilterLinear
	FilterGaussian
	FilterLanczos
)

func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(s) {
	case "", "catmull-rom":
		return FilterCatmullRom, nil
	case "nearest":
		return FilterNearest, nil
	case "linear", "triangle":
		return FilterLinear, nil
	case "gaussian":
		return FilterGaussian, nil
	case "lanczos":
		return FilterLanczos, nil
	default:
		return 0, errors.Errorf("unknown resize filter %q", s)
	}
}

func (f Filter) resample() imaging.ResampleFilter {
	switch f {
	case FilterNearest:
		return imaging.NearestNeighbor
	case FilterLinear:
		return imaging.Linear
	case FilterGaussian:
		return imaging.Gaussian
	case FilterLanczos:
		return imaging.Lanczos
	default:
		return imaging.CatmullRom
	}
}

type Resize struct {
	Mode   ResizeMode
	Width  int
	Height int
	Filter Filter
}

// Options are the preprocessing steps applied before encoding.
type Options struct {
	Invert bool
	Blur   float64
	Resize *Resize
}

// Apply runs invert, blur and resize in that order.
func Apply(img image.Image, opts Options, logger *zap.Logger) image.Image {
	if opts.Invert {
		img = imaging.Invert(img)
	}

	if opts.Blur > 0 {
		logger.With(zap.Float64("sigma", opts.Blur)).Info("blur")
		img = imaging.Blur(img, opts.Blur)
	}

	if r := opts.Resize; r != nil {
		logger.With(
			zap.Int("width", r.Width),
			zap.Int("height", r.Height),
		).Info("resize")

		switch r.Mode {
		case ResizeExact:
			img = imaging.Resize(img, r.Width, r.Height, r.Filter.resample())
		case ResizeFill:
			img = imaging.Fill(img, r.Width, r.Height, imaging.Center, r.Filter.resample())
		default:
			img = imaging.Fit(img, r.Width, r.Height, r.Filter.resample())
		}
	}

	return img
}
