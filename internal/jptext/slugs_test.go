package jptext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefectureTableComplete(t *testing.T) {
	names := Prefectures()
	require.Len(t, names, 47)

	seenSlugs := make(map[string]string)
	for _, name := range names {
		slug, ok := PrefectureSlug(name)
		require.True(t, ok, "prefecture %s has no slug", name)
		require.NotEmpty(t, slug)

		prev, dup := seenSlugs[slug]
		require.False(t, dup, "slug %s shared by %s and %s", slug, prev, name)
		seenSlugs[slug] = name

		back, ok := PrefectureName(slug)
		require.True(t, ok)
		assert.Equal(t, name, back)
	}
}

func TestRegionsCoverEveryPrefectureOnce(t *testing.T) {
	counts := make(map[string]int)
	for _, region := range Regions() {
		assert.NotEmpty(t, region.Slug)
		for _, p := range region.Prefectures {
			counts[p]++
		}
	}

	for _, name := range Prefectures() {
		assert.Equal(t, 1, counts[name], "prefecture %s", name)

		region, ok := RegionOf(name)
		assert.True(t, ok)
		assert.NotEmpty(t, region)
	}
}

func TestRegionOf(t *testing.T) {
	region, ok := RegionOf("東京都")
	require.True(t, ok)
	assert.Equal(t, "関東", region)

	region, ok = RegionOf("沖縄県")
	require.True(t, ok)
	assert.Equal(t, "九州・沖縄", region)

	_, ok = RegionOf("架空県")
	assert.False(t, ok)
}

func TestMunicipalitySlugRoundTrip(t *testing.T) {
	for name, slug := range municipalitySlugs {
		got, ok := MunicipalitySlug(name)
		require.True(t, ok, "municipality %s", name)
		assert.Equal(t, slug, got)

		back, ok := MunicipalityName(slug)
		require.True(t, ok, "slug %s", slug)
		assert.Equal(t, name, back)
	}
}

func TestStationSlugRoundTrip(t *testing.T) {
	for name, slug := range stationSlugs {
		got, ok := StationSlug(name)
		require.True(t, ok, "station %s", name)
		assert.Equal(t, slug, got)

		back, ok := StationName(slug)
		require.True(t, ok, "slug %s", slug)
		assert.Equal(t, name, back)
	}
}

func TestLookupNormalizesInput(t *testing.T) {
	got, ok := MunicipalitySlug("　渋谷区 ")
	require.True(t, ok)
	assert.Equal(t, "shibuya", got)
}

func TestUnknownNamesMissWithoutError(t *testing.T) {
	_, ok := MunicipalitySlug("存在しない市")
	assert.False(t, ok)

	_, ok = StationSlug("")
	assert.False(t, ok)

	_, ok = PrefectureName("atlantis")
	assert.False(t, ok)
}
