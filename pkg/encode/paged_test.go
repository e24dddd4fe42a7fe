package encode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPagedFullColumn(t *testing.T) {
	buf := grayBuffer(t, 1, 8, uniform(1, 8, 0xff)...)

	st, err := Encode(buf, Config{Mode: PagedMono, BlackLevel: 0}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []byte{0xff}, st.Data)
	assert.Equal(t, 8, st.WidthDelim)
}

func TestPagedBitZeroIsTopRow(t *testing.T) {
	px := uniform(1, 8, 0x00)
	px[0] = 0xff
	buf := grayBuffer(t, 1, 8, px...)

	st, err := Encode(buf, Config{Mode: PagedMono, BlackLevel: 128}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []byte{0x01}, st.Data)
}

func TestPagedByteCount(t *testing.T) {
	buf := grayBuffer(t, 3, 10, uniform(3, 10, 0x00)...)

	st, err := Encode(buf, Config{Mode: PagedMono, BlackLevel: 128}, zap.NewNop())
	require.NoError(t, err)

	// width * ceil(height/8)
	assert.Len(t, st.Data, 6)
}

func TestPagedRowsPastImageKeepBackground(t *testing.T) {
	// height 12: the second page only covers rows 8..11, the upper 4
	// bits stay at the background fill (literal 1, so those bits are 0)
	buf := grayBuffer(t, 1, 12, uniform(1, 12, 0xff)...)

	st, err := Encode(buf, Config{Mode: PagedMono, BlackLevel: 0}, zap.NewNop())
	require.NoError(t, err)

	require.Len(t, st.Data, 2)
	assert.Equal(t, byte(0xff), st.Data[0])
	assert.Equal(t, byte(0x0f), st.Data[1])
}

func TestPagedBackgroundFillLiteral(t *testing.T) {
	// all pixels below threshold: every written bit is cleared and the
	// byte ends at 0 regardless of the fill; the literal 0/1 fill is
	// only observable through rows past the image height
	buf := grayBuffer(t, 2, 4, uniform(2, 4, 0x00)...)

	for _, inverse := range []bool{false, true} {
		st, err := Encode(buf, Config{Mode: PagedMono, BlackLevel: 128, InverseColor: inverse}, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, []byte{0x00, 0x00}, st.Data)
	}
}

func TestPagedColumnsIndependent(t *testing.T) {
	// column 0 white, column 1 black
	px := []byte{
		255, 0,
		255, 0,
		255, 0,
		255, 0,
		255, 0,
		255, 0,
		255, 0,
		255, 0,
	}
	buf := grayBuffer(t, 2, 8, px...)

	st, err := Encode(buf, Config{Mode: PagedMono, BlackLevel: 128}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []byte{0xff, 0x00}, st.Data)
}
