package jpgeo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceKm(t *testing.T) {
	t.Run("tokyo to osaka is roughly 400km", func(t *testing.T) {
		km, ok := DistanceKm("東京都", "大阪府")
		require.True(t, ok)
		assert.InDelta(t, 400, km, 30)
	})

	t.Run("zero for the same prefecture", func(t *testing.T) {
		km, ok := DistanceKm("東京都", "東京都")
		require.True(t, ok)
		assert.Zero(t, km)
	})

	t.Run("symmetric", func(t *testing.T) {
		ab, ok := DistanceKm("北海道", "沖縄県")
		require.True(t, ok)
		ba, ok := DistanceKm("沖縄県", "北海道")
		require.True(t, ok)
		assert.InDelta(t, ab, ba, 1e-9)
	})

	t.Run("unknown prefecture has no distance", func(t *testing.T) {
		_, ok := DistanceKm("東京都", "架空県")
		assert.False(t, ok)
		_, ok = DistanceKm("架空県", "東京都")
		assert.False(t, ok)
	})
}

func TestHasCentroid(t *testing.T) {
	assert.True(t, HasCentroid("福岡県"))
	assert.False(t, HasCentroid("鳥取県"))
}
