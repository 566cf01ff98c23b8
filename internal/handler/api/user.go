package api

import (
	"net/http"

	"laundry-backoffice/internal/domain/user"
	reqdto "laundry-backoffice/internal/handler/dto/request"
	resdto "laundry-backoffice/internal/handler/dto/response"
	"laundry-backoffice/internal/handler/httperr"
	"laundry-backoffice/internal/handler/middleware"
	"laundry-backoffice/internal/usecase/commands"
	"laundry-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	userCommands commands.UserCommands
	userQueries  queries.UserQueries
}

func NewUserHandler(userCommands commands.UserCommands, userQueries queries.UserQueries) *UserHandler {
	return &UserHandler{
		userCommands: userCommands,
		userQueries:  userQueries,
	}
}

// @Summary List users
// @Description Optional role filter: 1 = Admin, 2 = Director, 3 = Employee
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param role query int false "Role code"
// @Success 200 {array} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, msgUnauthorized)
		return
	}

	var role *user.Role
	if raw, present := c.GetQuery("role"); present {
		r, err := user.ParseRole(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, user.ErrInvalidRole.Error())
			return
		}
		role = &r
	}

	views, err := h.userQueries.List(c.Request.Context(), actor, role)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	render(c, http.StatusOK, views, resdto.FromUserViews)
}

// @Summary Get user
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.userQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	render(c, http.StatusOK, view, resdto.FromUserView)
}

// @Summary Create user
// @Description Admin may create any role; Director may create Employees only
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateUserRequest true "New user"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, msgUnauthorized)
		return
	}

	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest)
		return
	}

	id, err := h.userCommands.Create(c.Request.Context(), actor, req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	view, err := h.userQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	render(c, http.StatusCreated, view, resdto.FromUserView)
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
