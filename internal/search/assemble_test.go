package search

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoyakulabs/clinic-navi/internal/domain/entities"
	apperrors "github.com/yoyakulabs/clinic-navi/pkg/errors"
)

type fakeRepo struct {
	mu sync.Mutex

	page     *ClinicPage
	pageErr  error
	rows     []entities.FacetRow
	scanErr  error
	scans    []Predicate
	lastSort Sort
	lastOff  int
}

func (f *fakeRepo) FindPage(ctx context.Context, pred Predicate, sort Sort, limit, offset int) (*ClinicPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastSort = sort
	f.lastOff = offset
	if f.pageErr != nil {
		return nil, f.pageErr
	}
	return f.page, nil
}

func (f *fakeRepo) FacetScan(ctx context.Context, pred Predicate) ([]entities.FacetRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scans = append(f.scans, pred)
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	return f.rows, nil
}

func testClinic(name string) entities.Clinic {
	mon := "9:00-18:00"
	return entities.Clinic{
		ID:           "id-" + name,
		Slug:         "slug-" + name,
		Name:         name,
		Prefecture:   "東京都",
		Municipality: "渋谷区",
		Stations:     "JR渋谷駅から徒歩5分",
		Features:     "オンライン",
		Hours:        entities.WeeklyHours{Mon: &mon},
	}
}

// memRepo serves windows over a fixed, pre-sorted clinic list the way
// the store does, so page walks exercise real offset math.
type memRepo struct {
	clinics []entities.Clinic
}

func (m *memRepo) FindPage(ctx context.Context, pred Predicate, sort Sort, limit, offset int) (*ClinicPage, error) {
	page := &ClinicPage{TotalCount: len(m.clinics)}
	if offset >= len(m.clinics) {
		return page, nil
	}
	end := offset + limit
	if end > len(m.clinics) {
		end = len(m.clinics)
	}
	page.Clinics = m.clinics[offset:end]
	return page, nil
}

func (m *memRepo) FacetScan(ctx context.Context, pred Predicate) ([]entities.FacetRow, error) {
	return nil, nil
}

func TestSearch_EveryClinicAppearsOnExactlyOnePage(t *testing.T) {
	const total = 47
	clinics := make([]entities.Clinic, 0, total)
	for i := 0; i < total; i++ {
		clinics = append(clinics, testClinic(fmt.Sprintf("c%02d", i)))
	}
	svc := NewService(&memRepo{clinics: clinics}, time.Second)

	first, err := svc.Search(context.Background(), Request{Page: 1})
	require.NoError(t, err)
	require.Equal(t, 4, first.Pagination.TotalPages)
	require.Equal(t, total, first.Pagination.TotalCount)

	seen := make(map[string]int)
	for page := 1; page <= first.Pagination.TotalPages; page++ {
		result, err := svc.Search(context.Background(), Request{Page: page})
		require.NoError(t, err)
		for _, c := range result.Clinics {
			seen[c.Slug]++
		}
	}

	assert.Len(t, seen, total)
	for slug, n := range seen {
		assert.Equalf(t, 1, n, "clinic %s served %d times", slug, n)
	}

	// Walking past the last page yields an empty page, not an error.
	beyond, err := svc.Search(context.Background(), Request{Page: first.Pagination.TotalPages + 1})
	require.NoError(t, err)
	assert.Empty(t, beyond.Clinics)
	assert.Equal(t, total, beyond.Pagination.TotalCount)
}

func TestSearch_AssemblesPageFacetsAndPagination(t *testing.T) {
	repo := &fakeRepo{
		page: &ClinicPage{
			Clinics:    []entities.Clinic{testClinic("a"), testClinic("b")},
			TotalCount: 32,
		},
		rows: []entities.FacetRow{
			facetRow("内科", "オンライン", "JR渋谷駅", "渋谷区"),
			facetRow("内科、小児科", "", "表参道駅", "渋谷区"),
		},
	}
	svc := NewService(repo, time.Second)

	result, err := svc.Search(context.Background(), Request{Page: 2})
	require.NoError(t, err)

	assert.Len(t, result.Clinics, 2)
	assert.Equal(t, "slug-a", result.Clinics[0].Slug)

	assert.Equal(t, []entities.FacetEntry{{Value: "内科", Count: 2}, {Value: "小児科", Count: 1}}, result.Facets.Specialties)
	assert.Equal(t, []entities.FacetEntry{{Value: "渋谷区", Count: 2}}, result.Facets.Municipalities)

	assert.Equal(t, 2, result.Pagination.CurrentPage)
	assert.Equal(t, 32, result.Pagination.TotalCount)
	assert.Equal(t, 3, result.Pagination.TotalPages)
	assert.Equal(t, 16, result.Pagination.RangeStart)
	assert.Equal(t, 17, result.Pagination.RangeEnd)

	assert.Equal(t, PageSize, repo.lastOff)
}

func TestSearch_OneExtraScanPerActiveDimension(t *testing.T) {
	repo := &fakeRepo{
		page: &ClinicPage{},
		rows: []entities.FacetRow{},
	}
	svc := NewService(repo, time.Second)

	_, err := svc.Search(context.Background(), Request{Criteria: Criteria{
		Specialty: "内科",
		Weekend:   true,
	}})
	require.NoError(t, err)

	// Base scan plus one per active dimension.
	assert.Len(t, repo.scans, 3)
}

func TestSearch_NoActiveFiltersScansOnce(t *testing.T) {
	repo := &fakeRepo{page: &ClinicPage{}, rows: nil}
	svc := NewService(repo, time.Second)

	_, err := svc.Search(context.Background(), Request{Criteria: Criteria{Prefecture: "東京都"}})
	require.NoError(t, err)

	// Prefecture is not a facet dimension; only the base scan runs.
	assert.Len(t, repo.scans, 1)
}

func TestSearch_NegativePageBecomesFirst(t *testing.T) {
	repo := &fakeRepo{page: &ClinicPage{}, rows: nil}
	svc := NewService(repo, time.Second)

	result, err := svc.Search(context.Background(), Request{Page: -5})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Pagination.CurrentPage)
	assert.Equal(t, 0, repo.lastOff)
}

func TestSearch_StoreFailureIsAnError(t *testing.T) {
	repo := &fakeRepo{
		page:    &ClinicPage{},
		scanErr: assert.AnError,
	}
	svc := NewService(repo, time.Second)

	result, err := svc.Search(context.Background(), Request{})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInternal))
}

func TestSearch_TimeoutSurfacesAsUnavailable(t *testing.T) {
	repo := &fakeRepo{
		page:    &ClinicPage{},
		scanErr: context.DeadlineExceeded,
	}
	svc := NewService(repo, time.Second)

	_, err := svc.Search(context.Background(), Request{})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnavailable))
}

func TestSearch_CancellationSurfacesAsUnavailable(t *testing.T) {
	repo := &fakeRepo{
		page:    &ClinicPage{},
		scanErr: context.Canceled,
	}
	svc := NewService(repo, time.Second)

	_, err := svc.Search(context.Background(), Request{})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnavailable))
}

func TestSummarize(t *testing.T) {
	rating := 4.2
	reviews := 120
	dash := "-"
	fri := "10:00-19:00"

	clinic := entities.Clinic{
		ID:           "c1",
		Slug:         "shibuya-naika",
		Name:         "渋谷内科クリニック",
		Prefecture:   "東京都",
		Municipality: "渋谷区",
		Address:      "東京都渋谷区道玄坂1-2-3",
		Stations:     "JR渋谷駅から徒歩5分、東京メトロ表参道駅B1出口",
		Features:     "オンライン、駐車場あり、キッズスペース、バリアフリー、土日診療、英語対応",
		Hours:        entities.WeeklyHours{Mon: &dash, Fri: &fri},
		Rating:       &rating,
		ReviewCount:  &reviews,
	}

	summary := Summarize(clinic)

	assert.Equal(t, "tokyo", summary.PrefectureSlug)
	assert.Equal(t, "shibuya", summary.MunicipalitySlug)
	assert.Equal(t, "渋谷", summary.NearestStation)
	assert.Equal(t, fri, summary.HoursPreview, "placeholder days are skipped")
	assert.Len(t, summary.FeatureTags, MaxFeatureTags)
	assert.Equal(t, &rating, summary.Rating)
}

func TestSummarize_UnmappedNamesStayUnlinked(t *testing.T) {
	clinic := entities.Clinic{
		Name:         "どこかのクリニック",
		Prefecture:   "未知県",
		Municipality: "未知市",
	}

	summary := Summarize(clinic)
	assert.Empty(t, summary.PrefectureSlug)
	assert.Empty(t, summary.MunicipalitySlug)
	assert.Empty(t, summary.NearestStation)
	assert.Empty(t, summary.HoursPreview)
	assert.Empty(t, summary.FeatureTags)
}
