package queries

//go:generate mockgen -source=company.go -destination=../../../tests/mock/queries/company.go -package=queriesmock

import (
	"context"

	"laundry-backoffice/internal/domain/authz"
	"laundry-backoffice/internal/domain/user"
	"laundry-backoffice/internal/infra"
	"laundry-backoffice/internal/pkg/errs"
	"laundry-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCompanyNotFound = errs.New("company not found")
	ErrUnitNotFound    = errs.New("unit not found")
)

type CompanyReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CompanyView, error)
	List(ctx context.Context) ([]*CompanyView, error)
	ListByDirector(ctx context.Context, directorID uuid.UUID) ([]*CompanyView, error)
}

type UnitReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UnitView, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*UnitView, error)
}

type CompanyQueries interface {
	// ListMine returns every company for an Admin and the directed ones for a Director.
	ListMine(ctx context.Context, actor shared.Actor) ([]*CompanyView, error)
	ListAll(ctx context.Context, actor shared.Actor) ([]*CompanyView, error)
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*CompanyView, error)
	ListUnits(ctx context.Context, actor shared.Actor, companyID uuid.UUID) ([]*UnitView, error)
	GetUnit(ctx context.Context, id uuid.UUID) (*UnitView, error)
}

type companyQueriesImpl struct {
	companies CompanyReadStore
	units     UnitReadStore
}

func NewCompanyQueries(companies CompanyReadStore, units UnitReadStore) CompanyQueries {
	return &companyQueriesImpl{
		companies: companies,
		units:     units,
	}
}

func (q *companyQueriesImpl) ListMine(ctx context.Context, actor shared.Actor) ([]*CompanyView, error) {
	if !authz.CanListOwnCompanies(actor.Role) {
		return nil, ErrForbidden
	}
	if actor.Role == user.RoleAdmin {
		return q.companies.List(ctx)
	}
	return q.companies.ListByDirector(ctx, actor.ID)
}

func (q *companyQueriesImpl) ListAll(ctx context.Context, actor shared.Actor) ([]*CompanyView, error) {
	if !authz.CanListAllCompanies(actor.Role) {
		return nil, ErrForbidden
	}
	return q.companies.List(ctx)
}

func (q *companyQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*CompanyView, error) {
	c, err := q.findCompany(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanViewCompany(actor.Role, actor.ID, c.DirectorIDs) {
		return nil, ErrForbidden
	}
	return c, nil
}

func (q *companyQueriesImpl) ListUnits(ctx context.Context, actor shared.Actor, companyID uuid.UUID) ([]*UnitView, error) {
	c, err := q.findCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if !authz.CanListUnits(actor.Role, actor.ID, c.DirectorIDs) {
		return nil, ErrForbidden
	}
	return q.units.ListByCompany(ctx, c.ID)
}

func (q *companyQueriesImpl) GetUnit(ctx context.Context, id uuid.UUID) (*UnitView, error) {
	u, err := q.units.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUnitNotFound
		}
		return nil, err
	}
	return u, nil
}

func (q *companyQueriesImpl) findCompany(ctx context.Context, id uuid.UUID) (*CompanyView, error) {
	c, err := q.companies.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return c, nil
}
