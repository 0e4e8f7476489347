package main

import (
	"context"
	"errors"
	"fmt"
	"proacolhe-service/internal/app/contracts"
	"proacolhe-service/internal/app/drivers/storage"
	"proacolhe-service/internal/app/services/core/settings"
	"proacolhe-service/internal/app/services/core/users"
	minioStorage "proacolhe-service/internal/app/services/shared/storage"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errResetNotConfirmed = errors.New("refusing to reset without --yes")

func newResetCmd(app *cliApp) *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Snapshot and wipe all records, keeping the initial manager",
		Long: `Delete every consultation, patient and staff account except the
initial manager. When backups are enabled a JSON snapshot is uploaded to
the backup bucket first and the reset aborts if the upload fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return errResetNotConfirmed
			}

			b, repositories, err := app.openStore()
			if err != nil {
				return err
			}
			defer b.Shutdown(context.Background())

			var backupStorage contracts.Storage
			if app.internalConfig.Backup.Enabled {
				backupStorage = minioStorage.NewMinioStorage(storage.NewMinio(app.driverConfig))
			}

			userUsecase := users.NewUserUsecase(repositories.User, app.internalConfig, b.Logger)
			settingsUsecase := settings.NewSettingsUsecase(
				repositories.User,
				repositories.Patient,
				repositories.Consultation,
				userUsecase,
				nil,
				backupStorage,
				app.internalConfig,
				b.Logger,
			)

			result, err := settingsUsecase.ResetSystem(cmd.Context(), nil)
			if err != nil {
				return err
			}

			app.log.WithFields(logrus.Fields{
				"removed_patients":      result.RemovedPatients,
				"removed_consultations": result.RemovedConsultations,
				"removed_users":         result.RemovedUsers,
			}).Warn("system reset completed by operator")

			fmt.Fprintf(app.out, "removed %d patients, %d consultations and %d staff accounts\n",
				result.RemovedPatients, result.RemovedConsultations, result.RemovedUsers)
			if result.SnapshotObject != "" {
				fmt.Fprintf(app.out, "snapshot stored at %s/%s\n", app.internalConfig.Backup.BucketName, result.SnapshotObject)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirmed, "yes", false, "confirm the irreversible reset")
	return cmd
}
