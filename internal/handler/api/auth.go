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
	"github.com/google/uuid"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
}

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
	}
}

// @Summary Register administrator
// @Description Bootstrap path. Role defaults to 1 (Admin) when omitted.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterAdminRequest true "Registration"
// @Success 201 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register-admin [post]
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	var req reqdto.RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest)
		return
	}

	result, err := h.authCommands.RegisterAdmin(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	h.respondWithAuth(c, http.StatusCreated, result)
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest)
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	h.respondWithAuth(c, http.StatusOK, result)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, msgUnauthorized)
		return
	}

	view, err := h.userQueries.GetCurrentUser(c.Request.Context(), actor)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	render(c, http.StatusOK, view, resdto.FromUserView)
}

func (h *AuthHandler) respondWithAuth(c *gin.Context, status int, result *commands.AuthResult) {
	res, err := h.loadUser(c, result.UserID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.JSON(status, resdto.AuthResponse{
		Token: result.Token,
		User:  res,
	})
}

func (h *AuthHandler) loadUser(c *gin.Context, id uuid.UUID) (resdto.UserResponse, error) {
	view, err := h.userQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		return resdto.UserResponse{}, err
	}
	return resdto.FromUserView(view)
}
