// Package notify delivers password links. LinkSender writes them to the
// structured log and stands in for a mailer.
package notify

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"laundry-backoffice/internal/pkg/config"
	"laundry-backoffice/internal/pkg/errs"
	"laundry-backoffice/internal/usecase/commands"
)

var ErrInvalidBaseURL = errs.New("password link base URL must be an absolute http(s) URL")

const setPasswordPath = "/set-password"

type LinkSender struct {
	baseURL string
	logger  *slog.Logger
}

func NewLinkSender(cfg config.Config) (*LinkSender, error) {
	base := strings.TrimRight(cfg.Auth.PasswordLinkBaseURL, "/")
	u, err := url.Parse(base)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, errs.Wrap(ErrInvalidBaseURL, "AUTH_PASSWORD_LINK_BASE_URL="+cfg.Auth.PasswordLinkBaseURL)
	}
	return &LinkSender{baseURL: base, logger: slog.Default()}, nil
}

// URL is the set-password page address carrying token.
func (s *LinkSender) URL(token string) string {
	return s.baseURL + setPasswordPath + "?token=" + url.QueryEscape(token)
}

func (s *LinkSender) Send(ctx context.Context, link commands.PasswordLink) error {
	s.logger.InfoContext(ctx, "password link issued",
		"user_id", link.UserID,
		"purpose", string(link.Purpose),
		"expires_at", link.ExpiresAt,
	)
	// The URL is a live credential; it only appears at debug level.
	s.logger.DebugContext(ctx, "password link",
		"email", link.Email,
		"name", link.Name,
		"url", s.URL(link.Token),
	)
	return nil
}

var _ commands.PasswordLinkSender = (*LinkSender)(nil)
