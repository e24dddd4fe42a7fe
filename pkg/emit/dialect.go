package emit

import (
	"fmt"
	"io"
)

// Dialect is the target-language surface syntax. Both implementations
// share the symbol derivation in Symbols; only the framing differs.
type Dialect interface {
	WriteHeader(w io.Writer) error
	WriteConst(w io.Writer, name string, value int) error
	WriteTypedConst(w io.Writer, name, expr, typ string) error
	WriteArrayOpen(w io.Writer, name, lenExpr string) error
	WriteArrayClose(w io.Writer) error
	WriteFooter(w io.Writer) error
}

// C emits a guarded header with #define constants and a uint8_t array.
type C struct {
	Guard    string
	Includes []string
}

func (c C) WriteHeader(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "#ifndef __%s\n", c.Guard); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "#define __%s\n\n", c.Guard); err != nil {
		return err
	}
	for _, inc := range c.Includes {
		if _, err := fmt.Fprintf(w, "#include %s\n", inc); err != nil {
			return err
		}
	}
	return nil
}

func (c C) WriteConst(w io.Writer, name string, value int) error {
	_, err := fmt.Fprintf(w, "#define %s %d\n", name, value)
	return err
}

func (c C) WriteTypedConst(w io.Writer, name, expr, _ string) error {
	_, err := fmt.Fprintf(w, "#define %s %s\n", name, expr)
	return err
}

func (c C) WriteArrayOpen(w io.Writer, name, lenExpr string) error {
	_, err := fmt.Fprintf(w, "uint8_t %s[%s] = {\n", name, lenExpr)
	return err
}

func (c C) WriteArrayClose(w io.Writer) error {
	_, err := fmt.Fprint(w, "};\n")
	return err
}

func (c C) WriteFooter(w io.Writer) error {
	_, err := fmt.Fprintf(w, "#endif //__%s\n", c.Guard)
	return err
}

// Rust emits typed pub const declarations and a [u8; N] literal. It
// never writes guards, includes or any other preprocessor line.
type Rust struct{}

func (Rust) WriteHeader(io.Writer) error {
	return nil
}

func (Rust) WriteConst(w io.Writer, name string, value int) error {
	_, err := fmt.Fprintf(w, "pub const %s:usize = %d;\n", name, value)
	return err
}

func (Rust) WriteTypedConst(w io.Writer, name, expr, typ string) error {
	_, err := fmt.Fprintf(w, "pub const %s:%s = %s;\n", name, typ, expr)
	return err
}

func (Rust) WriteArrayOpen(w io.Writer, name, lenExpr string) error {
	_, err := fmt.Fprintf(w, "pub const %s: [u8; %s] = [\n", name, lenExpr)
	return err
}

func (Rust) WriteArrayClose(w io.Writer) error {
	_, err := fmt.Fprint(w, "];\n")
	return err
}

func (Rust) WriteFooter(io.Writer) error {
	return nil
}
