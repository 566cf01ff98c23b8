package repository

import (
	"context"

	"laundry-backoffice/internal/domain/company"
	"laundry-backoffice/internal/infra"
	"laundry-backoffice/internal/infra/repository/converter"
	sqlc "laundry-backoffice/internal/infra/sqlc/generated"
)

type CompanyWriteQueries interface {
	CreateCompany(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCompanyParams) error
	AddCompanyDirector(ctx context.Context, db sqlc.DBTX, arg sqlc.AddCompanyDirectorParams) error
}

type CompanyRepository struct {
	queries CompanyWriteQueries
}

func NewCompanyRepository(queries CompanyWriteQueries) *CompanyRepository {
	return &CompanyRepository{
		queries: queries,
	}
}

// Create must run inside a transaction so the company and its director links land together.
func (r *CompanyRepository) Create(ctx context.Context, tx sqlc.DBTX, c *company.Company) error {
	if err := r.queries.CreateCompany(ctx, tx, converter.CompanyToCreateParams(c)); err != nil {
		return infra.WrapRepoErr("failed to create company", err)
	}
	for _, params := range converter.CompanyToDirectorParams(c) {
		if err := r.queries.AddCompanyDirector(ctx, tx, params); err != nil {
			return infra.WrapRepoErr("failed to link company director", err)
		}
	}
	return nil
}
