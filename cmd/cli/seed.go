package main

import (
	"context"
	"fmt"
	"proacolhe-service/internal/app/services/core/users"
	"proacolhe-service/internal/pkg/constvars"

	"github.com/spf13/cobra"
)

func newSeedCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the initial manager account when no staff exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, repositories, err := app.openStore()
			if err != nil {
				return err
			}
			defer b.Shutdown(context.Background())

			userUsecase := users.NewUserUsecase(repositories.User, app.internalConfig, b.Logger)
			seeded, err := userUsecase.EnsureInitialManager(cmd.Context())
			if err != nil {
				return err
			}

			if seeded {
				fmt.Fprintf(app.out, "initial manager %q created\n", constvars.InitialManagerUsername)
				return nil
			}
			fmt.Fprintln(app.out, "staff already present, nothing seeded")
			return nil
		},
	}
}
