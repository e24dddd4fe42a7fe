package generate

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"imgarray/internal/utils"
	"imgarray/pkg/emit"
	"imgarray/pkg/encode"
	"imgarray/pkg/pixel"
	"imgarray/pkg/prepare"
	"imgarray/pkg/render"
)

// Lang selects the generated source dialect.
type Lang int

const (
	LangC Lang = iota
	LangRust
)

func ParseLang(s string) (Lang, error) {
	switch strings.ToLower(s) {
	case "c":
		return LangC, nil
	case "rust":
		return LangRust, nil
	default:
		return 0, errors.Errorf("unknown out-lang %q", s)
	}
}

// Request describes one conversion run.
type Request struct {
	Input  string
	Output string

	// Name is the symbol base name. Derived from the input file name
	// when empty.
	Name string

	Prepare prepare.Options
	Encode  encode.Config
	Base    render.Base
	Order   render.ByteOrder

	Lang     Lang
	Guard    string // C include guard, defaults to the symbol name
	Includes []string
}

// Generator runs the decode → prepare → encode → emit pipeline. One
// run owns its buffer and output file; nothing is shared between runs.
type Generator struct {
	fs     afero.Fs
	logger *zap.Logger
}

func New(fs afero.Fs, logger *zap.Logger) *Generator {
	return &Generator{fs: fs, logger: logger}
}

// Run performs a single conversion. The output file is synced before
// success is reported and closed on every path. A failed run may leave
// a partially written file behind; it is not cleaned up.
func (g *Generator) Run(req Request) error {
	img, err := utils.OpenImage(g.fs, req.Input)
	if err != nil {
		return fmt.Errorf("open image failed: %w", err)
	}

	name := req.Name
	if name == "" {
		name = SymbolName(req.Input)
	}

	img = prepare.Apply(img, req.Prepare, g.logger)

	buf := pixel.FromImage(img, req.Encode.Mode.Layout())

	st, err := encode.Encode(buf, req.Encode, g.logger)
	if err != nil {
		return fmt.Errorf("encode failed: %w", err)
	}

	out, err := g.fs.Create(req.Output)
	if err != nil {
		return fmt.Errorf("create output failed: %w", err)
	}
	defer func() {
		_ = out.Close()
	}()

	var dialect emit.Dialect
	if req.Lang == LangC {
		dialect = emit.C{
			Guard:    lo.Ternary(req.Guard != "", req.Guard, name),
			Includes: req.Includes,
		}
	} else {
		dialect = emit.Rust{}
	}

	em := emit.New(dialect, render.New(req.Base, req.Order, g.logger))

	sym := emit.Symbols{
		Name:       name,
		Width:      int(buf.Width()),
		Height:     int(buf.Height()),
		WidthDelim: st.WidthDelim,
		PixelSize:  st.UnitSize,
	}

	if err := em.Emit(out, sym, st, req.Encode.Mode); err != nil {
		return fmt.Errorf("emit failed: %w", err)
	}

	if err := out.Sync(); err != nil {
		return fmt.Errorf("sync output failed: %w", err)
	}

	g.logger.With(
		zap.String("output", req.Output),
		zap.String("encoded", bytesize.New(float64(len(st.Data))).String()),
	).Info("generated")

	return nil
}

// SymbolName derives the constant base name from a file name: the part
// before the first dot, uppercased, with dashes replaced.
func SymbolName(path string) string {
	base := strings.ToUpper(filepath.Base(path))
	base = strings.ReplaceAll(base, "-", "_")
	if i := strings.Index(base, "."); i >= 0 {
		base = base[:i]
	}
	if base == "" {
		return "IMAGE"
	}
	return base
}
