//go:build unit || e2e

package builder

import (
	"time"

	"laundry-backoffice/internal/domain/company"
	reqdto "laundry-backoffice/internal/handler/dto/request"
	sqlc "laundry-backoffice/internal/infra/sqlc/generated"
	"laundry-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CompanyBuilder struct {
	ID          uuid.UUID
	Name        string
	DirectorIDs []uuid.UUID
	CreatedAt   time.Time
}

func NewCompanyBuilder() *CompanyBuilder {
	return &CompanyBuilder{
		ID:          uuid.New(),
		Name:        "Lavanderia Central",
		DirectorIDs: []uuid.UUID{},
		CreatedAt:   time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *CompanyBuilder) WithName(name string) *CompanyBuilder {
	b.Name = name
	return b
}

func (b *CompanyBuilder) WithDirectors(ids ...uuid.UUID) *CompanyBuilder {
	b.DirectorIDs = ids
	return b
}

func (b *CompanyBuilder) WithCreatedAt(t time.Time) *CompanyBuilder {
	b.CreatedAt = t
	return b
}

// BuildDomain keeps the builder's director ids without filtering them.
func (b *CompanyBuilder) BuildDomain() *company.Company {
	c, err := company.NewCompany(b.Name, b.DirectorIDs, b.CreatedAt)
	if err != nil {
		panic(err)
	}
	return c
}

func (b *CompanyBuilder) BuildView() *queries.CompanyView {
	return &queries.CompanyView{
		ID:          b.ID,
		Name:        b.Name,
		CreatedAt:   b.CreatedAt,
		DirectorIDs: b.DirectorIDs,
	}
}

func (b *CompanyBuilder) BuildInfra() sqlc.Companies {
	return sqlc.Companies{
		ID:        b.ID,
		Name:      b.Name,
		CreatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *CompanyBuilder) BuildDTO() reqdto.CreateCompanyRequest {
	return reqdto.CreateCompanyRequest{
		Name:        b.Name,
		DirectorIDs: b.DirectorIDs,
	}
}

type UnitBuilder struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	Name      string
	Address   string
	CreatedAt time.Time
}

func NewUnitBuilder(companyID uuid.UUID) *UnitBuilder {
	return &UnitBuilder{
		ID:        uuid.New(),
		CompanyID: companyID,
		Name:      "Unidade Centro",
		Address:   "Rua Augusta, 100",
		CreatedAt: time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC),
	}
}

func (b *UnitBuilder) WithName(name string) *UnitBuilder {
	b.Name = name
	return b
}

func (b *UnitBuilder) WithAddress(address string) *UnitBuilder {
	b.Address = address
	return b
}

func (b *UnitBuilder) BuildView() *queries.UnitView {
	return &queries.UnitView{
		ID:        b.ID,
		CompanyID: b.CompanyID,
		Name:      b.Name,
		Address:   b.Address,
		CreatedAt: b.CreatedAt,
	}
}

func (b *UnitBuilder) BuildInfra() sqlc.Units {
	return sqlc.Units{
		ID:        b.ID,
		CompanyID: b.CompanyID,
		Name:      b.Name,
		Address:   b.Address,
		CreatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *UnitBuilder) BuildDTO() reqdto.CreateUnitRequest {
	return reqdto.CreateUnitRequest{
		Name:    b.Name,
		Address: b.Address,
	}
}
