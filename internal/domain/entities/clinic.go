package entities

import "time"

// Clinic represents a single clinic row as stored in the clinics table.
// Rows are owned by the store and treated as immutable within a request.
type Clinic struct {
	ID           string
	Slug         string
	Name         string
	Prefecture   string
	Municipality string
	Address      string
	// Stations is the free-text access description. It may contain several
	// station names with connector words, separated by commas.
	Stations string
	// Specialties is a comma-separated list of featured subjects (診療科目).
	Specialties string
	// Features is a comma-separated list of free-text tags such as
	// "オンライン診療" or "土日診療". A lone "-" means no value.
	Features     string
	Hours        WeeklyHours
	Rating       *float64
	ReviewCount  *int
	Phone        *string
	Website      *string
	DirectorName *string
	Notes        *string
	CreatedAt    time.Time
}

// WeeklyHours holds one free-text hour range per day of the week.
// A nil entry or a lone "-" means closed/unspecified.
type WeeklyHours struct {
	Mon *string
	Tue *string
	Wed *string
	Thu *string
	Fri *string
	Sat *string
	Sun *string
}

// Ordered returns the seven day entries in Monday-first order.
func (h WeeklyHours) Ordered() []*string {
	return []*string{h.Mon, h.Tue, h.Wed, h.Thu, h.Fri, h.Sat, h.Sun}
}

// FacetRow is the narrow projection fetched for facet aggregation.
// It deliberately omits everything not needed to count facet values.
type FacetRow struct {
	Municipality string
	Specialties  string
	Features     string
	Stations     string
	Hours        WeeklyHours
	DirectorName *string
}

// LocationRow is the projection used to build the derived station and
// municipality indexes.
type LocationRow struct {
	Prefecture   string
	Municipality string
	Stations     string
}
