package encode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBitPackedAllWhite(t *testing.T) {
	buf := grayBuffer(t, 1, 8, uniform(1, 8, 0xff)...)

	st, err := Encode(buf, Config{Mode: BitPackedMono, BlackLevel: 0}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []byte{0xff}, st.Data)
	assert.Equal(t, 1, st.UnitSize)
	assert.Equal(t, 8, st.WidthDelim)
}

func TestBitPackedMSBFirst(t *testing.T) {
	buf := grayBuffer(t, 8, 1, 255, 0, 0, 0, 0, 0, 0, 255)

	st, err := Encode(buf, Config{Mode: BitPackedMono, BlackLevel: 128}, zap.NewNop())
	require.NoError(t, err)

	// first pixel lands in the top bit
	assert.Equal(t, []byte{0x81}, st.Data)
}

func TestBitPackedThresholdIsStrict(t *testing.T) {
	buf := grayBuffer(t, 8, 1, 128, 129, 128, 129, 128, 129, 128, 129)

	st, err := Encode(buf, Config{Mode: BitPackedMono, BlackLevel: 128}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []byte{0x55}, st.Data)
}

func TestBitPackedGroupsStraddleRows(t *testing.T) {
	// 4x3: the second packing group spans rows 2 and 3
	px := []byte{
		255, 255, 255, 255,
		255, 255, 255, 255,
		255, 255, 255, 255,
	}
	buf := grayBuffer(t, 4, 3, px...)

	st, err := Encode(buf, Config{Mode: BitPackedMono, BlackLevel: 0}, zap.NewNop())
	require.NoError(t, err)

	// 12 pixels: one full byte, then 4 pixels left-aligned
	assert.Equal(t, []byte{0xff, 0xf0}, st.Data)
}

func TestBitPackedTrailingBitsZero(t *testing.T) {
	buf := grayBuffer(t, 3, 1, 255, 0, 255)

	st, err := Encode(buf, Config{Mode: BitPackedMono, BlackLevel: 0}, zap.NewNop())
	require.NoError(t, err)

	// 101 left-shifted into the top bits, padding bits unset
	assert.Equal(t, []byte{0xa0}, st.Data)
}
