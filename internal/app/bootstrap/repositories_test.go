package bootstrap

import (
	"path/filepath"
	"proacolhe-service/internal/app/config"
	"proacolhe-service/internal/app/drivers/database"
	"proacolhe-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewRepositories(t *testing.T) {
	t.Run("SQLite", func(t *testing.T) {
		db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "proacolhe.db"))
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })

		repos, err := NewRepositories(&config.Bootstrap{
			SQLite:         db,
			Logger:         zap.NewNop(),
			InternalConfig: &config.InternalConfig{Storage: config.AppStorage{Driver: constvars.StorageDriverSQLite}},
			DriverConfig:   &config.DriverConfig{},
		})
		require.NoError(t, err)
		assert.NotNil(t, repos.User)
		assert.NotNil(t, repos.Patient)
		assert.NotNil(t, repos.Consultation)
	})

	t.Run("Missing Connection", func(t *testing.T) {
		_, err := NewRepositories(&config.Bootstrap{
			Logger:         zap.NewNop(),
			InternalConfig: &config.InternalConfig{Storage: config.AppStorage{Driver: constvars.StorageDriverMongo}},
			DriverConfig:   &config.DriverConfig{},
		})
		assert.Error(t, err)
	})

	t.Run("Unknown Driver", func(t *testing.T) {
		_, err := NewRepositories(&config.Bootstrap{
			Logger:         zap.NewNop(),
			InternalConfig: &config.InternalConfig{Storage: config.AppStorage{Driver: "postgres"}},
			DriverConfig:   &config.DriverConfig{},
		})
		assert.Error(t, err)
	})
}
