package converter

import (
	"laundry-backoffice/internal/domain/company"
	sqlc "laundry-backoffice/internal/infra/sqlc/generated"
	"laundry-backoffice/internal/pkg/pgconv"
)

func CompanyToCreateParams(c *company.Company) sqlc.CreateCompanyParams {
	return sqlc.CreateCompanyParams{
		ID:        c.ID(),
		Name:      c.Name(),
		CreatedAt: pgconv.TimeToPgtype(c.CreatedAt()),
	}
}

func CompanyToDirectorParams(c *company.Company) []sqlc.AddCompanyDirectorParams {
	params := make([]sqlc.AddCompanyDirectorParams, 0, len(c.DirectorIDs()))
	for _, id := range c.DirectorIDs() {
		params = append(params, sqlc.AddCompanyDirectorParams{
			CompanyID:  c.ID(),
			DirectorID: id,
		})
	}
	return params
}

func UnitToCreateParams(u *company.Unit) sqlc.CreateUnitParams {
	return sqlc.CreateUnitParams{
		ID:        u.ID(),
		CompanyID: u.CompanyID(),
		Name:      u.Name(),
		Address:   u.Address(),
		CreatedAt: pgconv.TimeToPgtype(u.CreatedAt()),
	}
}
