package deisotope

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ChrisMcGann/isotoper/pkg/core"
)

func TestPoolSortsByDescendingHeight(t *testing.T) {
	p := newPool([]core.Peak{
		{ID: 1, MZ: 500.0, Height: 50},
		{ID: 2, MZ: 600.0, Height: 100},
		{ID: 3, MZ: 700.0, Height: 75},
	})

	require.Equal(t, 3, p.len())
	require.Equal(t, 2, p.peak(0).ID)
	require.Equal(t, 3, p.peak(1).ID)
	require.Equal(t, 1, p.peak(2).ID)
}

func TestPoolBreaksHeightTiesByID(t *testing.T) {
	p := newPool([]core.Peak{
		{ID: 3, MZ: 500.0, Height: 100},
		{ID: 1, MZ: 600.0, Height: 100},
		{ID: 2, MZ: 700.0, Height: 100},
	})

	require.Equal(t, 1, p.peak(0).ID)
	require.Equal(t, 2, p.peak(1).ID)
	require.Equal(t, 3, p.peak(2).ID)
}

func TestPoolDoesNotMutateInput(t *testing.T) {
	peaks := []core.Peak{
		{ID: 1, MZ: 500.0, Height: 50},
		{ID: 2, MZ: 600.0, Height: 100},
	}
	newPool(peaks)

	require.Equal(t, 1, peaks[0].ID, "input slice order must be preserved")
}

func TestPoolConsumption(t *testing.T) {
	p := newPool([]core.Peak{
		{ID: 1, MZ: 500.0, Height: 50},
		{ID: 2, MZ: 600.0, Height: 100},
	})

	require.False(t, p.isConsumed(0))
	p.consume(0)
	require.True(t, p.isConsumed(0))
	require.False(t, p.isConsumed(1))
}
