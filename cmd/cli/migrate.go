package main

import (
	"proacolhe-service/internal/app/drivers/database"
	"proacolhe-service/internal/pkg/constvars"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newMigrateCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending sqlite migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.internalConfig.Storage.Driver != constvars.StorageDriverSQLite {
				app.log.WithField(constvars.LoggingStorageDriverKey, app.internalConfig.Storage.Driver).
					Info("migrations only apply to the sqlite driver, nothing to do")
				return nil
			}

			db, err := database.OpenSQLite(app.driverConfig.SQLite.Path)
			if err != nil {
				return err
			}
			defer db.Close()

			n, err := database.RunMigrations(db)
			if err != nil {
				return err
			}

			app.log.WithFields(logrus.Fields{
				"path":    app.driverConfig.SQLite.Path,
				"applied": n,
			}).Info("migrations applied")
			return nil
		},
	}
}
