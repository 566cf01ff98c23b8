package readstore

import (
	"context"

	"laundry-backoffice/internal/infra"
	sqlc "laundry-backoffice/internal/infra/sqlc/generated"
	"laundry-backoffice/internal/pkg/pgconv"
	"laundry-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type UnitReadQueries interface {
	FindUnitByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Units, error)
	ListUnitsByCompany(ctx context.Context, db sqlc.DBTX, companyID uuid.UUID) ([]sqlc.Units, error)
}

type UnitReadStore struct {
	queries UnitReadQueries
	db      sqlc.DBTX
}

func NewUnitReadStore(queries UnitReadQueries, db sqlc.DBTX) *UnitReadStore {
	return &UnitReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UnitReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UnitView, error) {
	row, err := r.queries.FindUnitByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("unit not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find unit by ID", err)
	}
	return toUnitView(row), nil
}

func (r *UnitReadStore) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*queries.UnitView, error) {
	rows, err := r.queries.ListUnitsByCompany(ctx, r.db, companyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list units", err)
	}

	views := make([]*queries.UnitView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toUnitView(row))
	}
	return views, nil
}

func toUnitView(row sqlc.Units) *queries.UnitView {
	return &queries.UnitView{
		ID:        row.ID,
		CompanyID: row.CompanyID,
		Name:      row.Name,
		Address:   row.Address,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
