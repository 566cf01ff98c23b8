// Command createadmin registers an administrator directly against the database.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"laundry-backoffice/cmd/bootstrap"
	"laundry-backoffice/cmd/bootstrap/components"
	"laundry-backoffice/internal/domain/user"
	reqdto "laundry-backoffice/internal/handler/dto/request"
	"laundry-backoffice/internal/pkg/errs"
	"laundry-backoffice/internal/usecase/commands"

	"go.uber.org/fx"
)

var errAborted = errors.New("admin not created")

func main() {
	var runErr error

	app := fx.New(
		fx.NopLogger,
		bootstrap.ConfigModule,
		bootstrap.LoggerModule,
		bootstrap.DBModule,
		bootstrap.MigrateModule,
		bootstrap.SecurityModule,
		components.PersistenceModule,
		components.UseCaseModule,
		fx.Invoke(func(lc fx.Lifecycle, shutdowner fx.Shutdowner, authCommands commands.AuthCommands) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					go func() {
						runErr = run(context.Background(), authCommands)
						_ = shutdowner.Shutdown()
					}()
					return nil
				},
			})
		}),
	)

	if err := app.Start(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "failed to start:", err)
		os.Exit(1)
	}
	<-app.Done()
	_ = app.Stop(context.Background())

	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	}
}

func run(ctx context.Context, authCommands commands.AuthCommands) error {
	in, err := promptAdmin(bufio.NewReader(os.Stdin), os.Stdout)
	if err != nil {
		return err
	}

	role := user.RoleAdmin
	result, err := authCommands.RegisterAdmin(ctx, reqdto.RegisterAdminRequest{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Role:     &role,
	})
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrEmailTaken):
			return fmt.Errorf("%w: email already registered", errAborted)
		case errs.Is(err, commands.ErrValidation):
			return fmt.Errorf("%w: %s", errAborted, errs.Cause(err))
		default:
			return err
		}
	}

	fmt.Println(result.UserID)
	return nil
}
