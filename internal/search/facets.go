package search

import (
	"sort"
	"strings"

	"github.com/yoyakulabs/clinic-navi/internal/domain/entities"
	"github.com/yoyakulabs/clinic-navi/internal/jptext"
)

// Per-dimension facet table sizes.
const (
	TopSpecialties    = 10
	TopFeatures       = 10
	TopStations       = 20
	TopMunicipalities = 15
)

// CountValues reduces candidate rows into a ranked value/count table.
// values must return the (possibly duplicated) values one row
// contributes; duplicates within a single row are counted once, so no
// value's count can exceed the candidate-set size. Ranked by count
// descending, ties kept in first-encountered order, truncated to topN.
// An empty candidate set yields an empty table.
func CountValues(rows []entities.FacetRow, values func(entities.FacetRow) []string, topN int) []entities.FacetEntry {
	counts := make(map[string]int)
	var order []string

	for _, row := range rows {
		seen := make(map[string]bool)
		for _, v := range values(row) {
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			if _, ok := counts[v]; !ok {
				order = append(order, v)
			}
			counts[v]++
		}
	}

	entries := make([]entities.FacetEntry, 0, len(order))
	for _, v := range order {
		entries = append(entries, entities.FacetEntry{Value: v, Count: counts[v]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if topN > 0 && len(entries) > topN {
		entries = entries[:topN]
	}
	return entries
}

// CountWhere counts candidate rows satisfying pred.
func CountWhere(rows []entities.FacetRow, pred func(entities.FacetRow) bool) int {
	n := 0
	for _, row := range rows {
		if pred(row) {
			n++
		}
	}
	return n
}

// SpecialtyValues explodes the comma-separated specialties field.
func SpecialtyValues(row entities.FacetRow) []string {
	return jptext.SplitValues(row.Specialties)
}

// FeatureValues explodes the comma-separated features field.
func FeatureValues(row entities.FacetRow) []string {
	return jptext.SplitValues(row.Features)
}

// StationValues extracts station names from the free-text access field.
func StationValues(row entities.FacetRow) []string {
	return jptext.ExtractStationNames(row.Stations)
}

// MunicipalityValues treats municipality as a single-value dimension.
func MunicipalityValues(row entities.FacetRow) []string {
	m := strings.TrimSpace(row.Municipality)
	if m == "" || m == "-" {
		return nil
	}
	return []string{m}
}

// HasWeekendHours reports Saturday-or-Sunday hours presence.
func HasWeekendHours(row entities.FacetRow) bool {
	return hoursPresent(row.Hours.Sat) || hoursPresent(row.Hours.Sun)
}

// HasEveningHours applies the 18-20 o'clock textual heuristic to every
// day's schedule text.
func HasEveningHours(row entities.FacetRow) bool {
	for _, h := range row.Hours.Ordered() {
		if h == nil {
			continue
		}
		for _, token := range eveningHourTokens {
			if strings.Contains(*h, token) {
				return true
			}
		}
	}
	return false
}

// HasDirector reports presence of a named director.
func HasDirector(row entities.FacetRow) bool {
	return row.DirectorName != nil && strings.TrimSpace(*row.DirectorName) != ""
}

func hoursPresent(h *string) bool {
	if h == nil {
		return false
	}
	v := strings.TrimSpace(*h)
	return v != "" && v != "-"
}
