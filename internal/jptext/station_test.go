package jptext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractStationNames(t *testing.T) {
	t.Run("extracts multiple stations with operator prefixes stripped", func(t *testing.T) {
		got := ExtractStationNames("JR渋谷駅から徒歩5分、東京メトロ表参道駅B1出口")
		assert.Equal(t, []string{"渋谷", "表参道"}, got)
	})

	t.Run("strips fullwidth JR", func(t *testing.T) {
		got := ExtractStationNames("ＪＲ新宿駅西口から徒歩3分")
		assert.Equal(t, []string{"新宿"}, got)
	})

	t.Run("strips stacked prefixes", func(t *testing.T) {
		got := ExtractStationNames("都営地下鉄大江戸線新宿駅")
		// 大江戸線新宿 survives the prefix strip; the line name is part of
		// the candidate, not an operator prefix.
		assert.Equal(t, []string{"大江戸線新宿"}, got)
	})

	t.Run("hiragana-only names are missed by the marker scan", func(t *testing.T) {
		// Known limitation of excluding hiragana from the name class.
		assert.Nil(t, ExtractStationNames("みなとみらい駅から徒歩2分"))
	})

	t.Run("hiragana connectors do not leak into the name", func(t *testing.T) {
		got := ExtractStationNames("には横浜駅があります")
		assert.Equal(t, []string{"横浜"}, got)
	})

	t.Run("single-rune candidates are discarded", func(t *testing.T) {
		assert.Empty(t, ExtractStationNames("駅ビルのすぐそば"))
	})

	t.Run("duplicates are preserved", func(t *testing.T) {
		got := ExtractStationNames("東京駅八重洲口、東京駅丸の内口")
		assert.Equal(t, []string{"東京", "東京"}, got)
	})

	t.Run("no station marker", func(t *testing.T) {
		assert.Nil(t, ExtractStationNames("バス停から徒歩1分"))
		assert.Nil(t, ExtractStationNames(""))
	})
}
