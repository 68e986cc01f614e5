package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteGridSetGetClear(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.Set(3, 2, 9)
	g.Set(0, 1, 1)

	require.Equal(t, uint8(9), g.Get(3, 2))
	require.Equal(t, uint8(9), g.Cells()[g.Index(3, 2)])
	require.Equal(t, 4, g.Index(0, 1))

	g.Clear()
	for i, v := range g.Cells() {
		require.Zerof(t, v, "index %d not cleared", i)
	}
}

func TestByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -2)
	require.Equal(t, 1, g.W)
	require.Equal(t, 1, g.H)
	require.Len(t, g.Cells(), 1)
}
