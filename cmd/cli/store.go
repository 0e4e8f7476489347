package main

import (
	"fmt"
	"proacolhe-service/internal/app/bootstrap"
	"proacolhe-service/internal/app/config"
	"proacolhe-service/internal/app/drivers/database"
	"proacolhe-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// openStore connects to the configured record store. Service logs are
// discarded so that command output stays readable.
func (app *cliApp) openStore() (*config.Bootstrap, *bootstrap.Repositories, error) {
	b := &config.Bootstrap{
		Logger:         zap.NewNop(),
		DriverConfig:   app.driverConfig,
		InternalConfig: app.internalConfig,
	}

	switch app.internalConfig.Storage.Driver {
	case constvars.StorageDriverMongo:
		b.MongoDB = database.NewMongoDB(app.driverConfig)
	default:
		db, err := database.OpenSQLite(app.driverConfig.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		if _, err := database.RunMigrations(db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to migrate sqlite database: %w", err)
		}
		b.SQLite = db
	}

	repositories, err := bootstrap.NewRepositories(b)
	if err != nil {
		return nil, nil, err
	}
	return b, repositories, nil
}
