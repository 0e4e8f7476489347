package constvars

type ContextKey string

const (
	ResourceAuth          = "auth"
	ResourceStaff         = "staff"
	ResourcePatients      = "patients"
	ResourceConsultations = "consultations"
	ResourcePrescriptions = "prescriptions"
	ResourceProtocols     = "protocols"
	ResourceDashboard     = "dashboard"
	ResourceSettings      = "settings"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_KEY              ContextKey = "session"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "PRAC_SVC_"
)

const (
	IDPrefixUser         = "user"
	IDPrefixPatient      = "patient"
	IDPrefixConsultation = "consult"
)

const (
	InitialManagerID        = "user-manager-initial"
	InitialManagerName      = "Gerente do Sistema"
	InitialManagerUsername  = "gerente"
	InitialManagerSusNumber = "000000000000000"
)

const (
	StorageDriverSQLite = "sqlite"
	StorageDriverMongo  = "mongo"
)

const (
	SQLiteTableUsers         = "users"
	SQLiteTablePatients      = "patients"
	SQLiteTableConsultations = "consultations"

	MongoCollectionUsers         = "users"
	MongoCollectionPatients      = "patients"
	MongoCollectionConsultations = "consultations"
)

const (
	DateFormatYYYYMMDD = "2006-01-02"
	// Fixed-width fraction keeps same-second timestamps in lexical order.
	TimestampFormatMillis = "2006-01-02T15:04:05.000Z07:00"
	SusNumberMaxLength = 15
	UnknownName        = "Desconhecido"
)

const (
	LoginLimiterGroupName = "LOGIN"
	SnapshotObjectFormat  = "snapshots/proacolhe-%s.json"
	SettingsResetLockKey  = "LOCK:settings:reset"
	BackupLeaderLockKey   = "LOCK:backup:leader"
	SessionKeyPrefix      = "session:"
)
