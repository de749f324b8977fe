package astistream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiscard(t *testing.T) {
	for raw, expected := range map[int]Discard{
		-100: DiscardNone,
		-16:  DiscardNone,
		-1:   DiscardNone,
		0:    DiscardDefault,
		8:    DiscardNonRef,
		10:   DiscardNonRef,
		16:   DiscardBidir,
		24:   DiscardNonIntra,
		32:   DiscardNonKey,
		48:   DiscardAll,
		100:  DiscardAll,
	} {
		require.Equal(t, expected, NewDiscard(raw), "%d", raw)
	}
	require.Equal(t, "nonkey", DiscardNonKey.String())
	require.Equal(t, "unknown", Discard(1).String())
}
