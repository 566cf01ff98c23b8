package request

type PasswordResetRequest struct {
	Email string `json:"email" binding:"required"`
}

// SetPasswordRequest redeems an invite or reset link.
type SetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}
