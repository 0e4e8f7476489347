package main

import (
	"io"
	"os"
	"proacolhe-service/internal/app/config"
	"proacolhe-service/internal/app/drivers/logger"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// cliApp carries the configuration shared by every subcommand. Results are
// written to out, diagnostics go through log.
type cliApp struct {
	driverConfig   *config.DriverConfig
	internalConfig *config.InternalConfig
	log            *logrus.Logger
	out            io.Writer
}

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	app := &cliApp{
		driverConfig:   driverConfig,
		internalConfig: internalConfig,
		log:            logger.NewLogrusLogger(driverConfig, internalConfig),
		out:            os.Stdout,
	}

	if err := newRootCmd(app).Execute(); err != nil {
		app.log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

func newRootCmd(app *cliApp) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "proacolhe",
		Short: "Operator tooling for the ProAcolhe clinic service",
		Long: `Maintenance commands for the ProAcolhe clinic service.

Available subcommands:
  migrate  - Apply pending sqlite migrations
  seed     - Create the initial manager account when no staff exists
  reset    - Snapshot and wipe all records, keeping the initial manager
  protocol - Run the treatment protocol calculator offline`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(app.out)

	rootCmd.AddCommand(
		newMigrateCmd(app),
		newSeedCmd(app),
		newResetCmd(app),
		newProtocolCmd(app),
	)
	return rootCmd
}
