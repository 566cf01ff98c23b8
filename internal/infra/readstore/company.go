package readstore

import (
	"context"

	"laundry-backoffice/internal/infra"
	sqlc "laundry-backoffice/internal/infra/sqlc/generated"
	"laundry-backoffice/internal/pkg/pgconv"
	"laundry-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CompanyReadQueries interface {
	FindCompanyWithDirectors(ctx context.Context, db sqlc.DBTX, id uuid.UUID) ([]sqlc.FindCompanyWithDirectorsRow, error)
	ListCompaniesWithDirectors(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListCompaniesWithDirectorsRow, error)
	ListCompaniesByDirector(ctx context.Context, db sqlc.DBTX, directorID uuid.UUID) ([]sqlc.ListCompaniesByDirectorRow, error)
}

type CompanyReadStore struct {
	queries CompanyReadQueries
	db      sqlc.DBTX
}

func NewCompanyReadStore(queries CompanyReadQueries, db sqlc.DBTX) *CompanyReadStore {
	return &CompanyReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CompanyReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CompanyView, error) {
	rows, err := r.queries.FindCompanyWithDirectors(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find company by ID", err)
	}
	if len(rows) == 0 {
		return nil, infra.WrapRepoErr("company not found", nil, infra.KindNotFound)
	}

	flat := make([]companyRow, 0, len(rows))
	for _, row := range rows {
		flat = append(flat, companyRow(row))
	}
	return groupCompanies(flat)[0], nil
}

func (r *CompanyReadStore) List(ctx context.Context) ([]*queries.CompanyView, error) {
	rows, err := r.queries.ListCompaniesWithDirectors(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list companies", err)
	}

	flat := make([]companyRow, 0, len(rows))
	for _, row := range rows {
		flat = append(flat, companyRow(row))
	}
	return groupCompanies(flat), nil
}

func (r *CompanyReadStore) ListByDirector(ctx context.Context, directorID uuid.UUID) ([]*queries.CompanyView, error) {
	rows, err := r.queries.ListCompaniesByDirector(ctx, r.db, directorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list companies by director", err)
	}

	flat := make([]companyRow, 0, len(rows))
	for _, row := range rows {
		flat = append(flat, companyRow(row))
	}
	return groupCompanies(flat), nil
}

// companyRow is the shape shared by every company/director join query.
type companyRow struct {
	ID         uuid.UUID
	Name       string
	CreatedAt  pgtype.Timestamptz
	DirectorID pgtype.UUID
}

// groupCompanies folds join rows into one view per company, preserving row order.
func groupCompanies(rows []companyRow) []*queries.CompanyView {
	views := make([]*queries.CompanyView, 0)
	index := make(map[uuid.UUID]*queries.CompanyView)
	for _, row := range rows {
		view, ok := index[row.ID]
		if !ok {
			view = &queries.CompanyView{
				ID:          row.ID,
				Name:        row.Name,
				CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
				DirectorIDs: []uuid.UUID{},
			}
			index[row.ID] = view
			views = append(views, view)
		}
		if id := pgconv.UUIDPtrFromPgtype(row.DirectorID); id != nil {
			view.DirectorIDs = append(view.DirectorIDs, *id)
		}
	}
	return views
}
