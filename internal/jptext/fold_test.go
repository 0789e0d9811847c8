package jptext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	t.Run("folds small kana variants", func(t *testing.T) {
		assert.Equal(t, "市ケ谷", Fold("市ヶ谷"))
		assert.Equal(t, "四ツ谷", Fold("四ッ谷"))
	})

	t.Run("folds dash variants to the long vowel mark", func(t *testing.T) {
		assert.Equal(t, "コーヒー", Fold("コｰヒ−"))
	})

	t.Run("trims ascii and fullwidth space", func(t *testing.T) {
		assert.Equal(t, "東京都", Fold("  東京都　"))
	})

	t.Run("empty and whitespace-only input", func(t *testing.T) {
		assert.Equal(t, "", Fold(""))
		assert.Equal(t, "", Fold(" 　 "))
	})

	t.Run("leaves unrelated text alone", func(t *testing.T) {
		assert.Equal(t, "渋谷区", Fold("渋谷区"))
	})
}

func TestSplitValues(t *testing.T) {
	t.Run("splits on ascii comma", func(t *testing.T) {
		assert.Equal(t, []string{"内科", "小児科"}, SplitValues("内科,小児科"))
	})

	t.Run("splits on japanese comma", func(t *testing.T) {
		assert.Equal(t, []string{"内科", "小児科"}, SplitValues("内科、小児科"))
	})

	t.Run("trims tokens", func(t *testing.T) {
		assert.Equal(t, []string{"内科", "皮膚科"}, SplitValues(" 内科 , 皮膚科 "))
	})

	t.Run("drops empty tokens and the placeholder", func(t *testing.T) {
		assert.Equal(t, []string{"内科"}, SplitValues("内科,,-,"))
		assert.Nil(t, SplitValues("-"))
		assert.Nil(t, SplitValues(""))
	})
}
