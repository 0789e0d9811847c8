package search

// Column names of the clinics table referenced by built predicates.
// Adapters share these so the predicate builder stays the single source
// of filter semantics.
const (
	ColName         = "name"
	ColPrefecture   = "prefecture"
	ColMunicipality = "municipality"
	ColAddress      = "address"
	ColStations     = "stations"
	ColSpecialties  = "specialties"
	ColFeatures     = "features"
	ColDirectorName = "director_name"
)

// HourColumns are the seven per-day schedule columns, Monday first.
var HourColumns = [7]string{
	"hours_mon", "hours_tue", "hours_wed", "hours_thu",
	"hours_fri", "hours_sat", "hours_sun",
}

// OnlineFeatureToken is the marker matched inside the features field for
// the online-consultation filter.
const OnlineFeatureToken = "オンライン"

// eveningHourTokens are the literal hour prefixes matched inside the
// free-text schedule fields. This is intentionally a textual heuristic,
// not a time-range parser: it misses evening slots written in other
// formats and can match unrelated numbers, but it reproduces the
// behavior listing pages have always had.
var eveningHourTokens = []string{"18:", "19:", "20:"}

// Dimension identifies one filterable facet dimension, used to rebuild
// the predicate with that dimension omitted when computing its facet.
type Dimension int

const (
	DimNone Dimension = iota
	DimSpecialty
	DimFeature
	DimStation
	DimMunicipality
	DimWeekend
	DimEvening
	DimDirector
)

// Criteria is one request's filter configuration. Every field is
// optional; the zero value matches every clinic. An explicit empty
// string behaves exactly like an absent parameter.
type Criteria struct {
	// Query is matched case-insensitively against name, address and
	// stations.
	Query        string
	Prefecture   string
	Municipality string
	Specialty    string
	Feature      string
	Station      string
	Weekend      bool
	Evening      bool
	Director     bool
	Online       bool
}

// Predicate builds the composed predicate for this configuration.
// Dimensions listed in omit are left out, which is how a facet is
// counted against the candidate set defined by all *other* active
// filters. The receiver is not modified; calling Predicate repeatedly
// with different omissions never interferes.
func (c Criteria) Predicate(omit ...Dimension) Predicate {
	omitted := func(d Dimension) bool {
		for _, o := range omit {
			if o == d {
				return true
			}
		}
		return false
	}

	var preds []Predicate

	if c.Query != "" {
		preds = append(preds, Or{Preds: []Predicate{
			Substring{Column: ColName, Value: c.Query},
			Substring{Column: ColAddress, Value: c.Query},
			Substring{Column: ColStations, Value: c.Query},
		}})
	}
	if c.Prefecture != "" {
		preds = append(preds, Eq{Column: ColPrefecture, Value: c.Prefecture})
	}
	if c.Municipality != "" && !omitted(DimMunicipality) {
		preds = append(preds, Eq{Column: ColMunicipality, Value: c.Municipality})
	}
	if c.Specialty != "" && !omitted(DimSpecialty) {
		preds = append(preds, Substring{Column: ColSpecialties, Value: c.Specialty})
	}
	if c.Feature != "" && !omitted(DimFeature) {
		preds = append(preds, Substring{Column: ColFeatures, Value: c.Feature})
	}
	if c.Station != "" && !omitted(DimStation) {
		preds = append(preds, Substring{Column: ColStations, Value: c.Station})
	}
	if c.Weekend && !omitted(DimWeekend) {
		preds = append(preds, WeekendPredicate())
	}
	if c.Evening && !omitted(DimEvening) {
		preds = append(preds, EveningPredicate())
	}
	if c.Director && !omitted(DimDirector) {
		preds = append(preds, NotNull{Column: ColDirectorName})
	}
	if c.Online && !omitted(DimFeature) {
		preds = append(preds, Substring{Column: ColFeatures, Value: OnlineFeatureToken})
	}

	return And{Preds: preds}
}

// WeekendPredicate matches clinics with Saturday or Sunday hours.
func WeekendPredicate() Predicate {
	return Or{Preds: []Predicate{
		Present{Column: HourColumns[5]},
		Present{Column: HourColumns[6]},
	}}
}

// EveningPredicate matches clinics whose schedule text mentions an
// 18-20 o'clock hour prefix on any day.
func EveningPredicate() Predicate {
	preds := make([]Predicate, 0, len(HourColumns)*len(eveningHourTokens))
	for _, col := range HourColumns {
		for _, token := range eveningHourTokens {
			preds = append(preds, Substring{Column: col, Value: token})
		}
	}
	return Or{Preds: preds}
}

// ActiveFacetDimensions lists the dimensions whose filters are active in
// this configuration. Each needs its own facet scan with the dimension
// omitted; inactive dimensions can share the base candidate set.
func (c Criteria) ActiveFacetDimensions() []Dimension {
	var dims []Dimension
	if c.Specialty != "" {
		dims = append(dims, DimSpecialty)
	}
	if c.Feature != "" || c.Online {
		dims = append(dims, DimFeature)
	}
	if c.Station != "" {
		dims = append(dims, DimStation)
	}
	if c.Municipality != "" {
		dims = append(dims, DimMunicipality)
	}
	if c.Weekend {
		dims = append(dims, DimWeekend)
	}
	if c.Evening {
		dims = append(dims, DimEvening)
	}
	if c.Director {
		dims = append(dims, DimDirector)
	}
	return dims
}
