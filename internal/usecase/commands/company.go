package commands

//go:generate mockgen -source=company.go -destination=../../../tests/mock/commands/company.go -package=commandsmock

import (
	"context"
	"log/slog"

	"laundry-backoffice/internal/domain/authz"
	"laundry-backoffice/internal/domain/company"
	reqdto "laundry-backoffice/internal/handler/dto/request"
	"laundry-backoffice/internal/infra"
	"laundry-backoffice/internal/pkg/clock"
	"laundry-backoffice/internal/pkg/errs"
	"laundry-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

// CreateCompanyResult reports which requested director ids were dropped
// because they did not resolve to a Director.
type CreateCompanyResult struct {
	CompanyID           uuid.UUID
	DirectorIDs         []uuid.UUID
	RejectedDirectorIDs []uuid.UUID
}

type CompanyCommands interface {
	CreateCompany(ctx context.Context, actor shared.Actor, req reqdto.CreateCompanyRequest) (*CreateCompanyResult, error)
	CreateUnit(ctx context.Context, actor shared.Actor, companyID uuid.UUID, req reqdto.CreateUnitRequest) (uuid.UUID, error)
}

type companyCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCompanyCommands(uow shared.UnitOfWork, clk clock.Clock) CompanyCommands {
	return &companyCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

func (c *companyCommandsImpl) CreateCompany(ctx context.Context, actor shared.Actor, req reqdto.CreateCompanyRequest) (*CreateCompanyResult, error) {
	if !authz.CanCreateCompany(actor.Role) {
		return nil, ErrForbidden
	}

	var result *CreateCompanyResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		candidates := make([]company.DirectorCandidate, 0, len(req.DirectorIDs))
		for _, id := range req.DirectorIDs {
			snapshot, err := tx.Reads().UserByID(ctx, id)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					candidates = append(candidates, company.DirectorCandidate{ID: id})
					continue
				}
				return err
			}
			candidates = append(candidates, company.DirectorCandidate{ID: id, Role: snapshot.Role, Found: true})
		}

		accepted, rejected := company.FilterDirectors(candidates)

		comp, err := company.NewCompany(req.Name, accepted, c.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrValidation)
		}

		if err := tx.Companies().Create(ctx, tx.DB(), comp); err != nil {
			return err
		}

		result = &CreateCompanyResult{
			CompanyID:           comp.ID(),
			DirectorIDs:         comp.DirectorIDs(),
			RejectedDirectorIDs: rejected,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(result.RejectedDirectorIDs) > 0 {
		slog.Info("dropped non-director ids from company",
			"company_id", result.CompanyID,
			"rejected", result.RejectedDirectorIDs)
	}

	return result, nil
}

// CreateUnit reports a missing company before checking the caller's rights.
func (c *companyCommandsImpl) CreateUnit(ctx context.Context, actor shared.Actor, companyID uuid.UUID, req reqdto.CreateUnitRequest) (uuid.UUID, error) {
	snapshot, err := c.uow.CommandReads().CompanyByID(ctx, companyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrCompanyNotFound
		}
		return uuid.Nil, err
	}

	if !authz.CanCreateUnit(actor.Role, actor.ID, snapshot.DirectorIDs) {
		return uuid.Nil, ErrForbidden
	}

	unit, err := company.NewUnit(snapshot.ID, req.Name, req.Address, c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Units().Create(ctx, tx.DB(), unit)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return uuid.Nil, errs.Mark(err, ErrCompanyNotFound)
		}
		return uuid.Nil, err
	}

	return unit.ID(), nil
}
