package repository

import (
	"context"

	"laundry-backoffice/internal/domain/company"
	"laundry-backoffice/internal/infra"
	"laundry-backoffice/internal/infra/repository/converter"
	sqlc "laundry-backoffice/internal/infra/sqlc/generated"
)

type UnitWriteQueries interface {
	CreateUnit(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUnitParams) error
}

type UnitRepository struct {
	queries UnitWriteQueries
}

func NewUnitRepository(queries UnitWriteQueries) *UnitRepository {
	return &UnitRepository{
		queries: queries,
	}
}

func (r *UnitRepository) Create(ctx context.Context, tx sqlc.DBTX, u *company.Unit) error {
	if err := r.queries.CreateUnit(ctx, tx, converter.UnitToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create unit", err)
	}
	return nil
}
