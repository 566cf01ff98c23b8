package bootstrap

import (
	"laundry-backoffice/internal/infra/notify"
	"laundry-backoffice/internal/pkg/clock"
	"laundry-backoffice/internal/pkg/config"
	"laundry-backoffice/internal/pkg/jwt"
	"laundry-backoffice/internal/pkg/password"
	"laundry-backoffice/internal/usecase/commands"

	"go.uber.org/fx"
)

var SecurityModule = fx.Module("security",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			NewJWTService,
			fx.As(fx.Self()),
			fx.As(new(commands.TokenIssuer)),
		),
		fx.Annotate(
			NewPasswordHasher,
			fx.As(new(commands.PasswordHasher)),
		),
		fx.Annotate(
			notify.NewLinkSender,
			fx.As(new(commands.PasswordLinkSender)),
		),
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	return jwt.NewService(cfg.JWT.Secret, clk)
}

func NewPasswordHasher(cfg config.Config) (*password.Hasher, error) {
	return password.NewHasher(cfg.Auth.Pepper)
}
