package search

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yoyakulabs/clinic-navi/internal/domain/entities"
	"github.com/yoyakulabs/clinic-navi/internal/infrastructure/observability"
	"github.com/yoyakulabs/clinic-navi/internal/jptext"
	apperrors "github.com/yoyakulabs/clinic-navi/pkg/errors"
)

// MaxFeatureTags bounds the per-clinic feature tag preview.
const MaxFeatureTags = 5

// ClinicRepository is the read interface the search core needs from the
// clinic store.
type ClinicRepository interface {
	// FindPage returns one window of fully-projected rows plus the total
	// count of rows matching pred.
	FindPage(ctx context.Context, pred Predicate, sort Sort, limit, offset int) (*ClinicPage, error)
	// FacetScan returns every matching row under a narrow projection,
	// with no row limit.
	FacetScan(ctx context.Context, pred Predicate) ([]entities.FacetRow, error)
}

// ClinicPage is one window of results with the unwindowed total.
type ClinicPage struct {
	Clinics    []entities.Clinic
	TotalCount int
}

// Request carries one listing request's parameters.
type Request struct {
	Criteria Criteria
	Page     int
	Sort     Sort
}

// Service runs the filter/facet/paginate/assemble pipeline for listing
// requests. The store reads it issues are independent and read-only, so
// they run concurrently, each under its own bounded timeout.
type Service struct {
	repo         ClinicRepository
	queryTimeout time.Duration
}

// NewService creates a search service. queryTimeout bounds every
// individual store read; zero means a 5 second default.
func NewService(repo ClinicRepository, queryTimeout time.Duration) *Service {
	if queryTimeout <= 0 {
		queryTimeout = 5 * time.Second
	}
	return &Service{repo: repo, queryTimeout: queryTimeout}
}

// Search executes one listing request: the page of results, facet tables
// computed over the currently-filtered candidate set (each active
// dimension counted with its own filter omitted), and paging metadata.
// Store failures surface as UNAVAILABLE or INTERNAL errors, never as an
// empty result.
func (s *Service) Search(ctx context.Context, req Request) (*entities.SearchResult, error) {
	ctx, span := observability.StartSpan(ctx, "search.clinics")
	defer span.End()

	page := NormalizePage(req.Page)
	basePred := req.Criteria.Predicate()

	var (
		clinicPage *ClinicPage
		baseRows   []entities.FacetRow
		dimRows    = make(map[Dimension][]entities.FacetRow)
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		cp, err := s.findPage(gctx, basePred, req.Sort, page)
		if err != nil {
			return err
		}
		clinicPage = cp
		return nil
	})

	g.Go(func() error {
		rows, err := s.facetScan(gctx, basePred)
		if err != nil {
			return err
		}
		baseRows = rows
		return nil
	})

	// One extra scan per active dimension: its facet must be counted
	// against the candidate set defined by all *other* filters.
	activeDims := req.Criteria.ActiveFacetDimensions()
	results := make([][]entities.FacetRow, len(activeDims))
	for i, dim := range activeDims {
		g.Go(func() error {
			rows, err := s.facetScan(gctx, req.Criteria.Predicate(dim))
			if err != nil {
				return err
			}
			results[i] = rows
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		observability.RecordError(span, err)
		return nil, err
	}
	for i, dim := range activeDims {
		dimRows[dim] = results[i]
	}

	rowsFor := func(dim Dimension) []entities.FacetRow {
		if rows, ok := dimRows[dim]; ok {
			return rows
		}
		return baseRows
	}

	facets := entities.Facets{
		Specialties:    CountValues(rowsFor(DimSpecialty), SpecialtyValues, TopSpecialties),
		Features:       CountValues(rowsFor(DimFeature), FeatureValues, TopFeatures),
		Stations:       CountValues(rowsFor(DimStation), StationValues, TopStations),
		Municipalities: CountValues(rowsFor(DimMunicipality), MunicipalityValues, TopMunicipalities),
		WeekendCount:   CountWhere(rowsFor(DimWeekend), HasWeekendHours),
		EveningCount:   CountWhere(rowsFor(DimEvening), HasEveningHours),
		DirectorCount:  CountWhere(rowsFor(DimDirector), HasDirector),
	}

	summaries := make([]entities.ClinicSummary, 0, len(clinicPage.Clinics))
	for _, clinic := range clinicPage.Clinics {
		summaries = append(summaries, Summarize(clinic))
	}

	return &entities.SearchResult{
		Clinics:    summaries,
		Facets:     facets,
		Pagination: PaginationFor(page, clinicPage.TotalCount, len(summaries)),
	}, nil
}

func (s *Service) findPage(ctx context.Context, pred Predicate, sort Sort, page int) (*ClinicPage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	cp, err := s.repo.FindPage(ctx, pred, sort, PageSize, Offset(page))
	if err != nil {
		return nil, storeError("clinic page query failed", err)
	}
	return cp, nil
}

func (s *Service) facetScan(ctx context.Context, pred Predicate) ([]entities.FacetRow, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	rows, err := s.repo.FacetScan(ctx, pred)
	if err != nil {
		return nil, storeError("facet scan failed", err)
	}
	return rows, nil
}

// storeError classifies a failed store read. Timeouts and
// cancellations become UNAVAILABLE so callers can tell a degraded
// store from a legitimate empty result.
func storeError(msg string, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Type == apperrors.ErrorTypeUnavailable {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperrors.NewUnavailableError(msg, err)
	}
	return apperrors.NewInternalError(msg, err)
}

// Summarize derives the list-view shape for one clinic row: slug lookups
// for prefecture and municipality (left empty when unmapped, which the
// UI renders without a link), the first extracted station, the first
// non-placeholder hours string, and a truncated feature tag list.
func Summarize(clinic entities.Clinic) entities.ClinicSummary {
	summary := entities.ClinicSummary{
		ID:           clinic.ID,
		Slug:         clinic.Slug,
		Name:         clinic.Name,
		Prefecture:   clinic.Prefecture,
		Municipality: clinic.Municipality,
		Address:      clinic.Address,
		Rating:       clinic.Rating,
		ReviewCount:  clinic.ReviewCount,
	}

	if slug, ok := jptext.PrefectureSlug(clinic.Prefecture); ok {
		summary.PrefectureSlug = slug
	}
	if slug, ok := jptext.MunicipalitySlug(clinic.Municipality); ok {
		summary.MunicipalitySlug = slug
	}
	if stations := jptext.ExtractStationNames(clinic.Stations); len(stations) > 0 {
		summary.NearestStation = stations[0]
	}
	for _, h := range clinic.Hours.Ordered() {
		if hoursPresent(h) {
			summary.HoursPreview = *h
			break
		}
	}

	tags := jptext.SplitValues(clinic.Features)
	if len(tags) > MaxFeatureTags {
		tags = tags[:MaxFeatureTags]
	}
	summary.FeatureTags = tags

	return summary
}
