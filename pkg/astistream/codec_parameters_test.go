package astistream

import (
	"testing"

	"github.com/asticode/go-astiav"
	"github.com/stretchr/testify/require"
)

func TestCodecParameters(t *testing.T) {
	c := NewContext()
	d := c.NewStream()
	d.CodecParameters.SetCodecID(astiav.CodecIDMjpeg)

	cp := c.Stream(0).CodecParameters()
	require.True(t, cp.Owned())
	cp.Free()
	require.Equal(t, astiav.CodecIDMjpeg, cp.CodecID())
	require.NoError(t, c.Close())
	require.Panics(t, func() { cp.CodecID() })

	cp = AllocCodecParameters()
	require.False(t, cp.Owned())
	cp.SetCodecID(astiav.CodecIDMjpeg)
	require.Equal(t, astiav.CodecIDMjpeg, cp.CodecID())
	cp.Free()
	require.Panics(t, func() { cp.CodecID() })
}
