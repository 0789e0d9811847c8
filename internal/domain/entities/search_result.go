package entities

// FacetEntry is a single value/count pair within a facet table.
type FacetEntry struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Facets holds the per-dimension aggregation tables for the current
// candidate set. Multi-value dimensions are ranked by count descending and
// truncated; boolean dimensions are plain counts.
type Facets struct {
	Specialties    []FacetEntry `json:"specialties"`
	Features       []FacetEntry `json:"features"`
	Stations       []FacetEntry `json:"stations"`
	Municipalities []FacetEntry `json:"municipalities"`
	WeekendCount   int          `json:"weekend_count"`
	EveningCount   int          `json:"evening_count"`
	DirectorCount  int          `json:"director_count"`
}

// Pagination is the paging metadata attached to a search result.
// RangeStart/RangeEnd are 1-based display bounds; both are zero when the
// page is empty.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	TotalCount  int `json:"total_count"`
	RangeStart  int `json:"range_start"`
	RangeEnd    int `json:"range_end"`
}

// ClinicSummary is the per-clinic shape rendered in result lists.
// Slug fields are empty when the name is not in the curated slug tables;
// the UI renders those entries without a link.
type ClinicSummary struct {
	ID               string   `json:"id"`
	Slug             string   `json:"slug"`
	Name             string   `json:"name"`
	Prefecture       string   `json:"prefecture"`
	PrefectureSlug   string   `json:"prefecture_slug"`
	Municipality     string   `json:"municipality"`
	MunicipalitySlug string   `json:"municipality_slug,omitempty"`
	Address          string   `json:"address"`
	NearestStation   string   `json:"nearest_station,omitempty"`
	HoursPreview     string   `json:"hours_preview,omitempty"`
	FeatureTags      []string `json:"feature_tags"`
	Rating           *float64 `json:"rating,omitempty"`
	ReviewCount      *int     `json:"review_count,omitempty"`
}

// SearchResult is the assembled payload for one listing request.
type SearchResult struct {
	Clinics    []ClinicSummary `json:"clinics"`
	Facets     Facets          `json:"facets"`
	Pagination Pagination      `json:"pagination"`
}

// Station is a derived entity: a canonical station name plus the
// prefectures it appears in and an aggregate clinic count. It is fully
// reconstructible from clinic rows at any time.
type Station struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug,omitempty"`
	Prefectures []string `json:"prefectures"`
	ClinicCount int      `json:"clinic_count"`
}

// Municipality is a derived entity aggregated from clinic rows.
type Municipality struct {
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Prefecture  string `json:"prefecture"`
	ClinicCount int    `json:"clinic_count"`
}
