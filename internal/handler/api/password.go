package api

import (
	"net/http"

	reqdto "laundry-backoffice/internal/handler/dto/request"
	resdto "laundry-backoffice/internal/handler/dto/response"
	"laundry-backoffice/internal/handler/httperr"
	"laundry-backoffice/internal/handler/middleware"
	"laundry-backoffice/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PasswordHandler struct {
	passwordCommands commands.PasswordCommands
}

func NewPasswordHandler(passwordCommands commands.PasswordCommands) *PasswordHandler {
	return &PasswordHandler{
		passwordCommands: passwordCommands,
	}
}

// @Summary Request password reset
// @Description Always answers 202 so registered emails cannot be discovered.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.PasswordResetRequest true "Email"
// @Success 202 {object} resdto.LinkSentResponse
// @Failure 400 {object} httperr.Response
// @Router /auth/reset/request [post]
func (h *PasswordHandler) RequestReset(c *gin.Context) {
	var req reqdto.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest)
		return
	}

	if err := h.passwordCommands.RequestReset(c.Request.Context(), req); err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, resdto.LinkSentResponse{Status: resdto.StatusLinkSent})
}

// @Summary Set password from link
// @Description Redeems an invite or reset token. Each token works once.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SetPasswordRequest true "Token and new password"
// @Success 200 {object} resdto.SetPasswordResponse
// @Failure 400 {object} httperr.Response
// @Router /auth/password/set [post]
func (h *PasswordHandler) SetPassword(c *gin.Context) {
	var req reqdto.SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest)
		return
	}

	userID, err := h.passwordCommands.SetPassword(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.SetPasswordResponse{UserID: userID})
}

// @Summary Invite user
// @Description Sends a set-password link. Directors may invite employees only.
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 202 {object} resdto.LinkSentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/{id}/invite [post]
func (h *PasswordHandler) Invite(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, msgUnauthorized)
		return
	}

	userID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.passwordCommands.Invite(c.Request.Context(), actor, userID); err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, resdto.LinkSentResponse{Status: resdto.StatusLinkSent})
}
