package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/yoyakulabs/clinic-navi/internal/domain/entities"
	"github.com/yoyakulabs/clinic-navi/internal/infrastructure/clients/postgres"
	"github.com/yoyakulabs/clinic-navi/internal/search"
	apperrors "github.com/yoyakulabs/clinic-navi/pkg/errors"
)

const clinicsTable = "clinics"

var clinicColumns = []any{
	"id", "slug", "name", "prefecture", "municipality", "address",
	"stations", "specialties", "features",
	"hours_mon", "hours_tue", "hours_wed", "hours_thu", "hours_fri",
	"hours_sat", "hours_sun",
	"rating", "review_count", "phone", "website", "director_name",
	"notes", "created_at",
}

var facetColumns = []any{
	"municipality", "specialties", "features", "stations",
	"hours_mon", "hours_tue", "hours_wed", "hours_thu", "hours_fri",
	"hours_sat", "hours_sun",
	"director_name",
}

// ClinicAdapter implements search.ClinicRepository and index.Source
// against the clinics table.
type ClinicAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewClinicAdapter creates a new clinic adapter
func NewClinicAdapter(client *postgres.Client) *ClinicAdapter {
	return &ClinicAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// FindPage returns one sorted window of fully-projected rows along with
// the total count of rows matching the predicate.
func (a *ClinicAdapter) FindPage(ctx context.Context, pred search.Predicate, sort search.Sort, limit, offset int) (*search.ClinicPage, error) {
	where, err := compilePredicate(pred)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to compile predicate", err)
	}

	ds := a.db.Select(clinicColumns...).From(clinicsTable)
	countDS := a.db.Select(goqu.COUNT(goqu.Star())).From(clinicsTable)
	if where != nil {
		ds = ds.Where(where)
		countDS = countDS.Where(where)
	}
	ds = ds.Order(orderFor(sort)...).Limit(uint(limit)).Offset(uint(offset))

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build page query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapStoreErr("failed to query clinic page", err)
	}
	defer rows.Close()

	clinics := []entities.Clinic{}
	for rows.Next() {
		clinic, err := scanClinic(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan clinic", err)
		}
		clinics = append(clinics, clinic)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreErr("error iterating clinics", err)
	}

	countQuery, countArgs, err := countDS.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build count query", err)
	}
	var total int
	if err := a.client.DB().QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, wrapStoreErr("failed to count clinics", err)
	}

	return &search.ClinicPage{Clinics: clinics, TotalCount: total}, nil
}

// FacetScan returns every matching row under the narrow facet
// projection, with no row limit.
func (a *ClinicAdapter) FacetScan(ctx context.Context, pred search.Predicate) ([]entities.FacetRow, error) {
	where, err := compilePredicate(pred)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to compile predicate", err)
	}

	ds := a.db.Select(facetColumns...).From(clinicsTable)
	if where != nil {
		ds = ds.Where(where)
	}
	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build facet query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapStoreErr("failed to query facet rows", err)
	}
	defer rows.Close()

	facetRows := []entities.FacetRow{}
	for rows.Next() {
		var (
			municipality, specialties, features, stations sql.NullString
			hours                                         [7]sql.NullString
			director                                      sql.NullString
		)
		if err := rows.Scan(
			&municipality, &specialties, &features, &stations,
			&hours[0], &hours[1], &hours[2], &hours[3], &hours[4],
			&hours[5], &hours[6],
			&director,
		); err != nil {
			return nil, apperrors.NewInternalError("failed to scan facet row", err)
		}
		facetRows = append(facetRows, entities.FacetRow{
			Municipality: municipality.String,
			Specialties:  specialties.String,
			Features:     features.String,
			Stations:     stations.String,
			Hours:        weeklyHours(hours),
			DirectorName: nullableString(director),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreErr("error iterating facet rows", err)
	}

	return facetRows, nil
}

// ScanLocations returns the location projection of every clinic row,
// used to build the derived station and municipality indexes.
func (a *ClinicAdapter) ScanLocations(ctx context.Context) ([]entities.LocationRow, error) {
	query, args, err := a.db.Select("prefecture", "municipality", "stations").
		From(clinicsTable).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build location query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapStoreErr("failed to query clinic locations", err)
	}
	defer rows.Close()

	locations := []entities.LocationRow{}
	for rows.Next() {
		var prefecture, municipality, stations sql.NullString
		if err := rows.Scan(&prefecture, &municipality, &stations); err != nil {
			return nil, apperrors.NewInternalError("failed to scan location row", err)
		}
		locations = append(locations, entities.LocationRow{
			Prefecture:   prefecture.String,
			Municipality: municipality.String,
			Stations:     stations.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreErr("error iterating location rows", err)
	}

	return locations, nil
}

// compilePredicate lowers the store-agnostic predicate AST into goqu
// expressions. A nil return means no WHERE clause (match all).
func compilePredicate(p search.Predicate) (exp.Expression, error) {
	switch pred := p.(type) {
	case search.And:
		children, err := compileChildren(pred.Preds)
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			return nil, nil
		}
		return goqu.And(children...), nil
	case search.Or:
		children, err := compileChildren(pred.Preds)
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			return nil, nil
		}
		return goqu.Or(children...), nil
	case search.Eq:
		return goqu.C(pred.Column).Eq(pred.Value), nil
	case search.Substring:
		return goqu.C(pred.Column).ILike("%" + escapeLike(pred.Value) + "%"), nil
	case search.Present:
		// Compare trimmed so whitespace-only values stay absent, the
		// same way the in-memory facet checks treat them.
		trimmed := goqu.Func("TRIM", goqu.C(pred.Column))
		return goqu.And(
			goqu.C(pred.Column).IsNotNull(),
			trimmed.Neq(""),
			trimmed.Neq("-"),
		), nil
	case search.NotNull:
		return goqu.C(pred.Column).IsNotNull(), nil
	default:
		return nil, fmt.Errorf("unknown predicate variant %T", p)
	}
}

func compileChildren(preds []search.Predicate) ([]exp.Expression, error) {
	children := make([]exp.Expression, 0, len(preds))
	for _, child := range preds {
		compiled, err := compilePredicate(child)
		if err != nil {
			return nil, err
		}
		if compiled != nil {
			children = append(children, compiled)
		}
	}
	return children, nil
}

func orderFor(sort search.Sort) []exp.OrderedExpression {
	switch sort {
	case search.SortByNewest:
		return []exp.OrderedExpression{
			goqu.I("created_at").Desc(),
			goqu.I("id").Desc(),
		}
	default:
		return []exp.OrderedExpression{
			goqu.I("rating").Desc().NullsLast(),
			goqu.I("created_at").Desc(),
			goqu.I("id").Desc(),
		}
	}
}

// escapeLike escapes LIKE metacharacters so user input is matched
// literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func scanClinic(rows *sql.Rows) (entities.Clinic, error) {
	var (
		clinic                          entities.Clinic
		municipality, address           sql.NullString
		stations, specialties, features sql.NullString
		hours                           [7]sql.NullString
		rating                          sql.NullFloat64
		reviewCount                     sql.NullInt64
		phone, website, director, notes sql.NullString
	)
	err := rows.Scan(
		&clinic.ID, &clinic.Slug, &clinic.Name, &clinic.Prefecture,
		&municipality, &address,
		&stations, &specialties, &features,
		&hours[0], &hours[1], &hours[2], &hours[3], &hours[4],
		&hours[5], &hours[6],
		&rating, &reviewCount, &phone, &website, &director,
		&notes, &clinic.CreatedAt,
	)
	if err != nil {
		return entities.Clinic{}, err
	}

	clinic.Municipality = municipality.String
	clinic.Address = address.String
	clinic.Stations = stations.String
	clinic.Specialties = specialties.String
	clinic.Features = features.String
	clinic.Hours = weeklyHours(hours)
	if rating.Valid {
		value := rating.Float64
		clinic.Rating = &value
	}
	if reviewCount.Valid {
		value := int(reviewCount.Int64)
		clinic.ReviewCount = &value
	}
	clinic.Phone = nullableString(phone)
	clinic.Website = nullableString(website)
	clinic.DirectorName = nullableString(director)
	clinic.Notes = nullableString(notes)

	return clinic, nil
}

func weeklyHours(hours [7]sql.NullString) entities.WeeklyHours {
	return entities.WeeklyHours{
		Mon: nullableString(hours[0]),
		Tue: nullableString(hours[1]),
		Wed: nullableString(hours[2]),
		Thu: nullableString(hours[3]),
		Fri: nullableString(hours[4]),
		Sat: nullableString(hours[5]),
		Sun: nullableString(hours[6]),
	}
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	value := ns.String
	return &value
}

func wrapStoreErr(msg string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperrors.NewUnavailableError(msg, err)
	}
	return apperrors.NewInternalError(msg, err)
}
