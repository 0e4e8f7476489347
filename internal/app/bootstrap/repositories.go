package bootstrap

import (
	"fmt"
	"proacolhe-service/internal/app/config"
	"proacolhe-service/internal/app/contracts"
	"proacolhe-service/internal/app/services/core/consultations"
	"proacolhe-service/internal/app/services/core/patients"
	"proacolhe-service/internal/app/services/core/users"
	"proacolhe-service/internal/pkg/constvars"
)

// Repositories groups the record stores shared by the HTTP server and the
// operator CLI.
type Repositories struct {
	User         contracts.UserRepository
	Patient      contracts.PatientRepository
	Consultation contracts.ConsultationRepository
}

// NewRepositories picks the store implementation matching the configured
// storage driver. The matching connection must already be set on b.
func NewRepositories(b *config.Bootstrap) (*Repositories, error) {
	switch b.InternalConfig.Storage.Driver {
	case constvars.StorageDriverSQLite:
		if b.SQLite == nil {
			return nil, fmt.Errorf("storage driver %q selected without a sqlite connection", constvars.StorageDriverSQLite)
		}
		return &Repositories{
			User:         users.NewUserSQLiteRepository(b.SQLite, b.Logger),
			Patient:      patients.NewPatientSQLiteRepository(b.SQLite, b.Logger),
			Consultation: consultations.NewConsultationSQLiteRepository(b.SQLite, b.Logger),
		}, nil
	case constvars.StorageDriverMongo:
		if b.MongoDB == nil {
			return nil, fmt.Errorf("storage driver %q selected without a mongo connection", constvars.StorageDriverMongo)
		}
		dbName := b.DriverConfig.MongoDB.DbName
		return &Repositories{
			User:         users.NewUserMongoRepository(b.MongoDB, dbName),
			Patient:      patients.NewPatientMongoRepository(b.MongoDB, dbName),
			Consultation: consultations.NewConsultationMongoRepository(b.MongoDB, dbName),
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", b.InternalConfig.Storage.Driver)
	}
}
