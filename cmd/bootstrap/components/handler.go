package components

import (
	"laundry-backoffice/internal/handler"
	"laundry-backoffice/internal/handler/api"
	"laundry-backoffice/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPasswordHandler,
		api.NewUserHandler,
		api.NewCompanyHandler,
		middleware.NewAuthMiddleware,
		func(auth *api.AuthHandler, password *api.PasswordHandler, user *api.UserHandler, company *api.CompanyHandler) handler.Handlers {
			return handler.Handlers{Auth: auth, Password: password, User: user, Company: company}
		},
	),
	fx.Invoke(handler.NewRouter),
)
