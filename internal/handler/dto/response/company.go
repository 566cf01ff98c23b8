package response

import (
	"time"

	"laundry-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CompanyResponse struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	CreatedAt   time.Time   `json:"createdAt"`
	DirectorIDs []uuid.UUID `json:"directorIds"`
}

type UnitResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CompanyID uuid.UUID `json:"companyId"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromCompanyView(v *queries.CompanyView) (CompanyResponse, error) {
	var res CompanyResponse
	if err := copier.Copy(&res, v); err != nil {
		return CompanyResponse{}, err
	}
	if res.DirectorIDs == nil {
		res.DirectorIDs = []uuid.UUID{}
	}
	return res, nil
}

func FromCompanyViews(views []*queries.CompanyView) ([]CompanyResponse, error) {
	res := make([]CompanyResponse, 0, len(views))
	for _, v := range views {
		r, err := FromCompanyView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}

func FromUnitView(v *queries.UnitView) (UnitResponse, error) {
	var res UnitResponse
	if err := copier.Copy(&res, v); err != nil {
		return UnitResponse{}, err
	}
	return res, nil
}

func FromUnitViews(views []*queries.UnitView) ([]UnitResponse, error) {
	res := make([]UnitResponse, 0, len(views))
	for _, v := range views {
		r, err := FromUnitView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}
