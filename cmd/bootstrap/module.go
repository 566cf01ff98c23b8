package bootstrap

import (
	"laundry-backoffice/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	MigrateModule,
	SecurityModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
