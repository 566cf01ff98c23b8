package company

import (
	"strings"
	"time"

	"laundry-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidName = errs.New("company name is required")
	ErrInvalidUnit = errs.New("unit name is required")
)

type Company struct {
	id          uuid.UUID
	name        string
	directorIDs []uuid.UUID
	createdAt   time.Time
}

// NewCompany expects directorIDs to be already resolved to Director users.
// Duplicate ids collapse to one.
func NewCompany(name string, directorIDs []uuid.UUID, now time.Time) (*Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}

	seen := make(map[uuid.UUID]struct{}, len(directorIDs))
	ids := make([]uuid.UUID, 0, len(directorIDs))
	for _, id := range directorIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return &Company{
		id:          uuid.New(),
		name:        name,
		directorIDs: ids,
		createdAt:   now,
	}, nil
}

func (c *Company) ID() uuid.UUID            { return c.id }
func (c *Company) Name() string             { return c.name }
func (c *Company) DirectorIDs() []uuid.UUID { return c.directorIDs }
func (c *Company) CreatedAt() time.Time     { return c.createdAt }

type Unit struct {
	id        uuid.UUID
	companyID uuid.UUID
	name      string
	address   string
	createdAt time.Time
}

func NewUnit(companyID uuid.UUID, name, address string, now time.Time) (*Unit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidUnit
	}
	address = strings.TrimSpace(address)

	return &Unit{
		id:        uuid.New(),
		companyID: companyID,
		name:      name,
		address:   address,
		createdAt: now,
	}, nil
}

func (u *Unit) ID() uuid.UUID        { return u.id }
func (u *Unit) CompanyID() uuid.UUID { return u.companyID }
func (u *Unit) Name() string         { return u.name }
func (u *Unit) Address() string      { return u.address }
func (u *Unit) CreatedAt() time.Time { return u.createdAt }
