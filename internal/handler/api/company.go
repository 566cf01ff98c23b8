package api

import (
	"net/http"

	reqdto "laundry-backoffice/internal/handler/dto/request"
	resdto "laundry-backoffice/internal/handler/dto/response"
	"laundry-backoffice/internal/handler/httperr"
	"laundry-backoffice/internal/handler/middleware"
	"laundry-backoffice/internal/usecase/commands"
	"laundry-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyCommands commands.CompanyCommands
	companyQueries  queries.CompanyQueries
}

func NewCompanyHandler(companyCommands commands.CompanyCommands, companyQueries queries.CompanyQueries) *CompanyHandler {
	return &CompanyHandler{
		companyCommands: companyCommands,
		companyQueries:  companyQueries,
	}
}

// @Summary List my companies
// @Description Admin sees every company, Director sees the companies they direct
// @Tags companies
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.CompanyResponse
// @Failure 403 {object} httperr.Response
// @Router /companies/mine [get]
func (h *CompanyHandler) ListMine(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, msgUnauthorized)
		return
	}

	views, err := h.companyQueries.ListMine(c.Request.Context(), actor)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	render(c, http.StatusOK, views, resdto.FromCompanyViews)
}

// @Summary List all companies
// @Tags companies
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.CompanyResponse
// @Failure 403 {object} httperr.Response
// @Router /companies [get]
func (h *CompanyHandler) ListAll(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, msgUnauthorized)
		return
	}

	views, err := h.companyQueries.ListAll(c.Request.Context(), actor)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	render(c, http.StatusOK, views, resdto.FromCompanyViews)
}

// @Summary Get company
// @Tags companies
// @Security BearerAuth
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} resdto.CompanyResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /companies/{id} [get]
func (h *CompanyHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, msgUnauthorized)
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.companyQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	render(c, http.StatusOK, view, resdto.FromCompanyView)
}

// @Summary Create company
// @Description Director ids that do not belong to a Director are dropped
// @Tags companies
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCompanyRequest true "New company"
// @Success 201 {object} resdto.CompanyResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /companies [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, msgUnauthorized)
		return
	}

	var req reqdto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest)
		return
	}

	result, err := h.companyCommands.CreateCompany(c.Request.Context(), actor, req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	view, err := h.companyQueries.GetByID(c.Request.Context(), actor, result.CompanyID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	render(c, http.StatusCreated, view, resdto.FromCompanyView)
}

// @Summary List units of a company
// @Tags companies
// @Security BearerAuth
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {array} resdto.UnitResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /companies/{id}/units [get]
func (h *CompanyHandler) ListUnits(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, msgUnauthorized)
		return
	}
	companyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	views, err := h.companyQueries.ListUnits(c.Request.Context(), actor, companyID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	render(c, http.StatusOK, views, resdto.FromUnitViews)
}

// @Summary Create unit
// @Tags companies
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Param request body reqdto.CreateUnitRequest true "New unit"
// @Success 201 {object} resdto.UnitResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /companies/{id}/units [post]
func (h *CompanyHandler) CreateUnit(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, msgUnauthorized)
		return
	}
	companyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req reqdto.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest)
		return
	}

	unitID, err := h.companyCommands.CreateUnit(c.Request.Context(), actor, companyID, req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	view, err := h.companyQueries.GetUnit(c.Request.Context(), unitID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	render(c, http.StatusCreated, view, resdto.FromUnitView)
}
