package astistream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisposition(t *testing.T) {
	d := NewDisposition(1 | 1<<30)
	require.Equal(t, DispositionDefault, d)
	require.True(t, d.Has(DispositionDefault))
	require.False(t, d.Has(DispositionForced))
	require.Equal(t, "default", d.String())

	d = NewDisposition(int(DispositionDefault | DispositionForced | DispositionCaptions | 1<<13))
	require.Equal(t, []Disposition{DispositionDefault, DispositionForced, DispositionCaptions}, d.Flags())
	require.Equal(t, "default+forced+captions", d.String())

	d = d.Del(DispositionForced).Add(DispositionDub)
	require.Equal(t, "default+dub+captions", d.String())
	require.False(t, d.Has(0))

	d = NewDisposition(0)
	require.Empty(t, d.Flags())
	require.Equal(t, "", d.String())

	require.Equal(t, Disposition(0), NewDisposition(1<<30|1<<14))
}
