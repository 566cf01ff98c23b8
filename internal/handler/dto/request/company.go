package request

import (
	"github.com/google/uuid"
)

type CreateCompanyRequest struct {
	Name        string      `json:"name" binding:"required"`
	DirectorIDs []uuid.UUID `json:"directorIds"`
}

type CreateUnitRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}
