package response

import "github.com/google/uuid"

const StatusLinkSent = "sent"

// LinkSentResponse is returned whether or not a link was actually issued.
type LinkSentResponse struct {
	Status string `json:"status"`
}

type SetPasswordResponse struct {
	UserID uuid.UUID `json:"userId"`
}
