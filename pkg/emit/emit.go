package emit

import (
	"io"
	"strconv"

	"imgarray/pkg/encode"
	"imgarray/pkg/render"
)

// Emitter writes the full generated source: optional header framing,
// the derived constant block and the literal array.
type Emitter struct {
	dialect  Dialect
	renderer *render.Renderer
}

func New(dialect Dialect, renderer *render.Renderer) *Emitter {
	return &Emitter{dialect: dialect, renderer: renderer}
}

// Emit writes one encoded stream. All modes except the run-length one
// get the six-constant block and an array sized by the LENGTH symbol.
// The run-length stream carries its own measured length, so its array
// is sized numerically and the constant block is skipped.
func (e *Emitter) Emit(w io.Writer, sym Symbols, st *encode.Stream, mode encode.Mode) error {
	if err := e.dialect.WriteHeader(w); err != nil {
		return err
	}

	if mode == encode.RLEMono {
		if err := e.dialect.WriteArrayOpen(w, sym.Name, strconv.Itoa(len(st.Data))); err != nil {
			return err
		}
		if err := e.renderer.WriteFlat(w, st.Data); err != nil {
			return err
		}
	} else {
		if err := e.writeConsts(w, sym); err != nil {
			return err
		}
		if err := e.dialect.WriteArrayOpen(w, sym.Name, sym.constName("LENGTH")); err != nil {
			return err
		}
		rowWidth := 0
		if sym.WidthDelim > 0 {
			rowWidth = sym.Width / sym.WidthDelim
		}
		if err := e.renderer.WriteRows(w, st.Data, st.UnitSize, rowWidth); err != nil {
			return err
		}
	}

	if err := e.dialect.WriteArrayClose(w); err != nil {
		return err
	}

	return e.dialect.WriteFooter(w)
}

func (e *Emitter) writeConsts(w io.Writer, sym Symbols) error {
	if err := e.dialect.WriteConst(w, sym.constName("HEIGHT"), sym.Height); err != nil {
		return err
	}
	if err := e.dialect.WriteConst(w, sym.constName("WIDTH"), sym.Width); err != nil {
		return err
	}
	if err := e.dialect.WriteConst(w, sym.constName("WIDTH_DELIMITER"), sym.WidthDelim); err != nil {
		return err
	}
	if err := e.dialect.WriteTypedConst(w, sym.constName("WIDTH_BYTES"), sym.WidthBytesExpr(), "usize"); err != nil {
		return err
	}
	if err := e.dialect.WriteConst(w, sym.constName("PIXEL_SIZE"), sym.PixelSize); err != nil {
		return err
	}
	return e.dialect.WriteTypedConst(w, sym.constName("LENGTH"), sym.LengthExpr(), "usize")
}
