package config

import "time"

type InternalConfig struct {
	App          App
	JWT          AppJWT
	Storage      AppStorage
	Auth         AppAuth
	Notification AppNotification
	Backup       AppBackup
	Clinic       AppClinic
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	EndpointPrefix             string
	AllowedOrigins             []string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	MaxTimeRequestsPerSeconds  int
	RequestBodyLimitInMegabyte int
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

// AppStorage selects the repository implementation, see constvars.StorageDriver*.
type AppStorage struct {
	Driver string
}

type AppAuth struct {
	SessionExpiredTimeInHours int
	LoginMaxAttempts          int
	LoginWindow               time.Duration
}

type AppNotification struct {
	Enabled bool
	Queue   string
}

type AppBackup struct {
	Enabled    bool
	BucketName string
	// Schedule is a cron spec for periodic snapshots, empty disables them.
	Schedule string
}

type AppClinic struct {
	InitialManagerPassword string
}
