package encode

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"imgarray/pkg/pixel"
)

// grayBuffer builds a luma buffer of the given size from literal pixel
// values, row-major.
func grayBuffer(t *testing.T, w, h int, px ...byte) *pixel.Buffer {
	t.Helper()
	require.Len(t, px, w*h)

	img := image.NewGray(image.Rect(0, 0, w, h))
	copy(img.Pix, px)

	return pixel.FromImage(img, pixel.Gray8)
}

func uniform(w, h int, v byte) []byte {
	px := make([]byte, w*h)
	for i := range px {
		px[i] = v
	}
	return px
}

func TestEncodeRawLengths(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 5, 3))

	for _, tc := range []struct {
		mode Mode
		unit int
	}{
		{Gray8, 1},
		{Rgb8, 3},
		{Rgb16, 6},
	} {
		buf := pixel.FromImage(img, tc.mode.Layout())
		st, err := Encode(buf, Config{Mode: tc.mode}, zap.NewNop())
		require.NoError(t, err)

		assert.Equal(t, 5*3*tc.unit, len(st.Data), tc.mode.String())
		assert.Equal(t, tc.unit, st.UnitSize)
		assert.Equal(t, 1, st.WidthDelim)
	}
}

func TestEncodeRawCopiesChannelBytes(t *testing.T) {
	buf := grayBuffer(t, 4, 1, 1, 2, 3, 4)

	st, err := Encode(buf, Config{Mode: Gray8}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []byte{1, 2, 3, 4}, st.Data)

	// the stream owns its bytes
	st.Data[0] = 99
	assert.Equal(t, byte(1), buf.Bytes()[0])
}

func TestEncodeGCodeNotImplemented(t *testing.T) {
	buf := grayBuffer(t, 1, 1, 0)

	st, err := Encode(buf, Config{Mode: GCode}, zap.NewNop())
	require.Error(t, err)
	assert.Nil(t, st)
	assert.Contains(t, err.Error(), "not implemented")
}

func TestParseModeNames(t *testing.T) {
	for name, want := range map[string]Mode{
		"gray8":   Gray8,
		"rgb8":    Rgb8,
		"rgb16":   Rgb16,
		"rle":     RLEMono,
		"wbzip":   RLEMono,
		"wb1":     BitPackedMono,
		"ssd1306": PagedMono,
		"gcode":   GCode,
	} {
		got, err := ParseMode(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseMode("tga")
	assert.Error(t, err)
}
