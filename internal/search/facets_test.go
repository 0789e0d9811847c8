package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yoyakulabs/clinic-navi/internal/domain/entities"
)

func facetRow(specialties, features, stations, municipality string) entities.FacetRow {
	return entities.FacetRow{
		Specialties:  specialties,
		Features:     features,
		Stations:     stations,
		Municipality: municipality,
	}
}

func TestCountValues(t *testing.T) {
	rows := []entities.FacetRow{
		facetRow("内科、小児科", "", "", ""),
		facetRow("内科", "", "", ""),
		facetRow("皮膚科、内科", "", "", ""),
		facetRow("-", "", "", ""),
	}

	entries := CountValues(rows, SpecialtyValues, 10)
	assert.Equal(t, []entities.FacetEntry{
		{Value: "内科", Count: 3},
		{Value: "小児科", Count: 1},
		{Value: "皮膚科", Count: 1},
	}, entries)
}

func TestCountValues_DuplicatesWithinOneRowCountOnce(t *testing.T) {
	rows := []entities.FacetRow{
		facetRow("", "", "東京駅八重洲口、東京駅丸の内口", ""),
		facetRow("", "", "品川駅", ""),
	}

	entries := CountValues(rows, StationValues, 10)
	assert.Equal(t, []entities.FacetEntry{
		{Value: "東京", Count: 1},
		{Value: "品川", Count: 1},
	}, entries)

	// No count may exceed the candidate-set size.
	for _, e := range entries {
		assert.LessOrEqual(t, e.Count, len(rows))
	}
}

func TestCountValues_TiesKeepFirstEncounteredOrder(t *testing.T) {
	rows := []entities.FacetRow{
		facetRow("眼科", "", "", ""),
		facetRow("耳鼻咽喉科", "", "", ""),
		facetRow("歯科、眼科", "", "", ""),
	}

	entries := CountValues(rows, SpecialtyValues, 10)
	assert.Equal(t, []entities.FacetEntry{
		{Value: "眼科", Count: 2},
		{Value: "耳鼻咽喉科", Count: 1},
		{Value: "歯科", Count: 1},
	}, entries)
}

func TestCountValues_TruncatesToTopN(t *testing.T) {
	rows := []entities.FacetRow{
		facetRow("内科、小児科、皮膚科、眼科", "", "", ""),
		facetRow("内科、小児科、皮膚科", "", "", ""),
		facetRow("内科、小児科", "", "", ""),
	}

	entries := CountValues(rows, SpecialtyValues, 2)
	assert.Equal(t, []entities.FacetEntry{
		{Value: "内科", Count: 3},
		{Value: "小児科", Count: 3},
	}, entries)
}

func TestCountValues_EmptyCandidateSet(t *testing.T) {
	assert.Empty(t, CountValues(nil, SpecialtyValues, 10))
}

func TestMunicipalityValues(t *testing.T) {
	assert.Equal(t, []string{"渋谷区"}, MunicipalityValues(facetRow("", "", "", "渋谷区")))
	assert.Nil(t, MunicipalityValues(facetRow("", "", "", "")))
	assert.Nil(t, MunicipalityValues(facetRow("", "", "", "-")))
}

func TestHasWeekendHours(t *testing.T) {
	sat := "9:00-13:00"
	dash := "-"

	assert.True(t, HasWeekendHours(entities.FacetRow{Hours: entities.WeeklyHours{Sat: &sat}}))
	assert.True(t, HasWeekendHours(entities.FacetRow{Hours: entities.WeeklyHours{Sun: &sat}}))
	assert.False(t, HasWeekendHours(entities.FacetRow{Hours: entities.WeeklyHours{Sat: &dash}}))
	assert.False(t, HasWeekendHours(entities.FacetRow{}))
}

func TestHasEveningHours(t *testing.T) {
	late := "10:00-20:00"
	early := "9:00-17:30"

	assert.True(t, HasEveningHours(entities.FacetRow{Hours: entities.WeeklyHours{Wed: &late}}))
	assert.False(t, HasEveningHours(entities.FacetRow{Hours: entities.WeeklyHours{Mon: &early, Fri: &early}}))
	assert.False(t, HasEveningHours(entities.FacetRow{}))
}

func TestHasDirector(t *testing.T) {
	name := "佐藤 健一"
	blank := "  "

	assert.True(t, HasDirector(entities.FacetRow{DirectorName: &name}))
	assert.False(t, HasDirector(entities.FacetRow{DirectorName: &blank}))
	assert.False(t, HasDirector(entities.FacetRow{}))
}

func TestCountWhere(t *testing.T) {
	name := "医師"
	rows := []entities.FacetRow{
		{DirectorName: &name},
		{},
		{DirectorName: &name},
	}
	assert.Equal(t, 2, CountWhere(rows, HasDirector))
	assert.Equal(t, 0, CountWhere(nil, HasDirector))
}
