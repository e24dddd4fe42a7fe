package main

import (
	"log"
	"net/url"
	"os"
	"path"

	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"imgarray/pkg/encode"
	"imgarray/pkg/fetch"
	"imgarray/pkg/generate"
	"imgarray/pkg/prepare"
	"imgarray/pkg/render"
)

var outColor = flag.StringP("out-color", "o", "gray8", "output color mode (rgb8, rgb16, gray8, rle, wb1, ssd1306, gcode)")
var outputView = flag.String("output-view", "hex", "literal base (hex, dec, sdec, bin)")
var outLang = flag.String("out-lang", "c", "output language (c, rust)")
var protect = flag.String("protect", "", "define protect for C header")
var includeC = flag.StringArray("include-c", []string{"<stdint.h>"}, "include libs for C header")
var nameVariable = flag.StringP("name-variable", "n", "", "name of const variable")
var inverseColor = flag.BoolP("inverse-color", "i", false, "inverse colors")
var blur = flag.Float64("blur", 0, "blur image by sigma")
var blackLevel = flag.Uint8("black-level", 128, "black level for monochrome out-colors")
var ending = flag.String("ending", "le", "ending out pixel (le, be)")
var resizeMode = flag.String("resize-mode", "", "resize mode (fit, exact, fill)")
var resizeWidth = flag.Int("width", 0, "resize width")
var resizeHeight = flag.Int("height", 0, "resize height")
var resizeFilter = flag.String("filter", "catmull-rom", "resize filter (nearest, linear, catmull-rom, gaussian, lanczos)")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	if flag.NArg() < 2 {
		log.Fatal("usage: imgarray [flags] <input> <output>")
	}

	var logger *zap.Logger
	var logErr error
	if *debug {
		logger, logErr = zap.NewDevelopment()
	} else {
		logger, logErr = zap.NewProduction()
	}
	if logErr != nil {
		log.Fatal(logErr)
	}

	mode, err := encode.ParseMode(*outColor)
	if err != nil {
		log.Fatal(err)
	}

	base, err := render.ParseBase(*outputView)
	if err != nil {
		log.Fatal(err)
	}

	order, err := render.ParseByteOrder(*ending)
	if err != nil {
		log.Fatal(err)
	}

	lang, err := generate.ParseLang(*outLang)
	if err != nil {
		log.Fatal(err)
	}

	opts := prepare.Options{Invert: *inverseColor, Blur: *blur}
	if *resizeMode != "" {
		m, err := prepare.ParseResizeMode(*resizeMode)
		if err != nil {
			log.Fatal(err)
		}
		f, err := prepare.ParseFilter(*resizeFilter)
		if err != nil {
			log.Fatal(err)
		}
		opts.Resize = &prepare.Resize{
			Mode:   m,
			Width:  *resizeWidth,
			Height: *resizeHeight,
			Filter: f,
		}
	}

	input := flag.Arg(0)

	req := generate.Request{
		Input:   input,
		Output:  flag.Arg(1),
		Name:    *nameVariable,
		Prepare: opts,
		Encode: encode.Config{
			Mode:         mode,
			BlackLevel:   *blackLevel,
			InverseColor: *inverseColor,
		},
		Base:     base,
		Order:    order,
		Lang:     lang,
		Guard:    *protect,
		Includes: *includeC,
	}

	if fetch.IsRemote(input) {
		f, err := fetch.New(os.TempDir(), logger)
		if err != nil {
			log.Fatal(err)
		}

		spooled, err := f.Spool(input)
		if err != nil {
			log.Fatal(err)
		}
		req.Input = spooled

		if req.Name == "" {
			if u, err := url.Parse(input); err == nil {
				req.Name = generate.SymbolName(path.Base(u.Path))
			}
		}
	}

	if err := generate.New(afero.NewOsFs(), logger).Run(req); err != nil {
		log.Fatal(err)
	}
}
