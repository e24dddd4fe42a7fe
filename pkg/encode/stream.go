package encode

// Stream is an encoded pixel byte stream together with the framing the
// renderer and the symbol emitter need. It is computed once per run and
// not modified afterwards.
type Stream struct {
	Data []byte

	// UnitSize is the number of bytes representing one logical output
	// unit: 1, 2, 3 or 6.
	UnitSize int

	// WidthDelim is the number of source pixels consumed per output
	// column unit: 1 for byte and word formats, 8 for the bit-packed
	// and paged formats.
	WidthDelim int
}
