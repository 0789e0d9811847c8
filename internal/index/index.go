// Package index builds the derived station and municipality indexes from
// clinic rows. Neither entity is stored: both are recomputed from the
// clinics table and may be cached briefly, but the cache is always
// reconstructible and never authoritative.
package index

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/yoyakulabs/clinic-navi/internal/domain/entities"
	"github.com/yoyakulabs/clinic-navi/internal/domain/providers"
	"github.com/yoyakulabs/clinic-navi/internal/infrastructure/observability"
	"github.com/yoyakulabs/clinic-navi/internal/jptext"
	apperrors "github.com/yoyakulabs/clinic-navi/pkg/errors"
)

// Keys for the cached index payloads. The indexes take no filter
// parameters, so a fixed key per index is the exact configuration key.
const (
	stationIndexKey      = "index:stations"
	municipalityIndexKey = "index:municipalities"
)

// Source supplies the location projection of every clinic row.
type Source interface {
	ScanLocations(ctx context.Context) ([]entities.LocationRow, error)
}

// Service computes the derived indexes, optionally caching results.
type Service struct {
	src   Source
	cache providers.CacheProvider
	ttl   time.Duration
}

// NewService creates an index service. cache may be nil, in which case
// every request recomputes from the store.
func NewService(src Source, cache providers.CacheProvider, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Service{src: src, cache: cache, ttl: ttl}
}

// Stations aggregates every station name extracted from clinic access
// text into {name, prefectures, clinic count} entries, ranked by clinic
// count descending. A station mentioned twice by one clinic counts once.
func (s *Service) Stations(ctx context.Context) ([]entities.Station, error) {
	ctx, span := observability.StartSpan(ctx, "index.stations")
	defer span.End()

	if cached := fromCache[[]entities.Station](ctx, s.cache, stationIndexKey); cached != nil {
		return *cached, nil
	}

	rows, err := s.src.ScanLocations(ctx)
	if err != nil {
		observability.RecordError(span, err)
		return nil, apperrors.NewInternalError("location scan failed", err)
	}

	type agg struct {
		count       int
		prefectures map[string]bool
	}
	byName := make(map[string]*agg)
	var order []string

	for _, row := range rows {
		seen := make(map[string]bool)
		for _, name := range jptext.ExtractStationNames(row.Stations) {
			if seen[name] {
				continue
			}
			seen[name] = true
			a, ok := byName[name]
			if !ok {
				a = &agg{prefectures: make(map[string]bool)}
				byName[name] = a
				order = append(order, name)
			}
			a.count++
			if row.Prefecture != "" {
				a.prefectures[row.Prefecture] = true
			}
		}
	}

	stations := make([]entities.Station, 0, len(order))
	for _, name := range order {
		a := byName[name]
		prefs := make([]string, 0, len(a.prefectures))
		for p := range a.prefectures {
			prefs = append(prefs, p)
		}
		sort.Strings(prefs)
		station := entities.Station{
			Name:        name,
			Prefectures: prefs,
			ClinicCount: a.count,
		}
		if slug, ok := jptext.StationSlug(name); ok {
			station.Slug = slug
		}
		stations = append(stations, station)
	}
	sort.SliceStable(stations, func(i, j int) bool {
		return stations[i].ClinicCount > stations[j].ClinicCount
	})

	s.toCache(ctx, stationIndexKey, stations)
	return stations, nil
}

// Municipalities aggregates clinic counts per (prefecture, municipality)
// pair, ranked by clinic count descending.
func (s *Service) Municipalities(ctx context.Context) ([]entities.Municipality, error) {
	ctx, span := observability.StartSpan(ctx, "index.municipalities")
	defer span.End()

	if cached := fromCache[[]entities.Municipality](ctx, s.cache, municipalityIndexKey); cached != nil {
		return *cached, nil
	}

	rows, err := s.src.ScanLocations(ctx)
	if err != nil {
		observability.RecordError(span, err)
		return nil, apperrors.NewInternalError("location scan failed", err)
	}

	type key struct{ prefecture, municipality string }
	counts := make(map[key]int)
	var order []key

	for _, row := range rows {
		if row.Municipality == "" || row.Municipality == "-" {
			continue
		}
		k := key{row.Prefecture, row.Municipality}
		if _, ok := counts[k]; !ok {
			order = append(order, k)
		}
		counts[k]++
	}

	municipalities := make([]entities.Municipality, 0, len(order))
	for _, k := range order {
		m := entities.Municipality{
			Name:        k.municipality,
			Prefecture:  k.prefecture,
			ClinicCount: counts[k],
		}
		if slug, ok := jptext.MunicipalitySlug(k.municipality); ok {
			m.Slug = slug
		}
		municipalities = append(municipalities, m)
	}
	sort.SliceStable(municipalities, func(i, j int) bool {
		return municipalities[i].ClinicCount > municipalities[j].ClinicCount
	})

	s.toCache(ctx, municipalityIndexKey, municipalities)
	return municipalities, nil
}

func fromCache[T any](ctx context.Context, cache providers.CacheProvider, key string) *T {
	if cache == nil {
		return nil
	}
	data, err := cache.Get(ctx, key)
	if err != nil {
		return nil
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return &out
}

func (s *Service) toCache(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = s.cache.Set(ctx, key, data, int(s.ttl.Seconds()))
}
