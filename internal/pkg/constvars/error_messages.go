package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":        "is required",
	"min":             "must be at least %s characters long",
	"max":             "maximum at %s characters long",
	"numeric":         "must be a number",
	"len":             "must be %s characters long",
	"oneof":           "must be one of [%s]",
	"gt":              "must be greater than %s",
	"gte":             "must be greater than or equal to %s",
	"lt":              "must be less than %s",
	"lte":             "must be less than or equal to %s",
	"required_if":     "is required when %s",
	"password":        "must be 6 to 72 bytes long, contain at least one special character, and one uppercase letter",
	"sus_number":      "must contain between 1 and 15 digits",
	"role":            "must be one of [admin, doctor, nurse, manager]",
	"date":            "must be a date in YYYY-MM-DD format",
	"not_future_date": "cannot be a future date",
	"username":        "may only contain letters, digits, dots, underscores and dashes",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":         true,
	"max":         true,
	"len":         true,
	"gt":          true,
	"gte":         true,
	"lt":          true,
	"lte":         true,
	"oneof":       true,
	"required_if": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientUsernameAlreadyExists         = "username already used"
	ErrClientPasswordRequired              = "password is required for new users"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientUserNotFound                  = "staff member not found"
	ErrClientConsultationNotFound          = "consultation not found"
	ErrClientPrescriptionIncomplete        = "prescription cannot be assembled, patient or doctor record is missing"
	ErrClientRoleNotCreatable              = "you are not allowed to assign this role"
	ErrClientCannotEditUser                = "you are not allowed to edit this staff member"
	ErrClientCannotDeleteUser              = "you are not allowed to delete this staff member"
	ErrClientCannotDeleteInitialManager    = "the initial manager cannot be deleted"
	ErrClientProtocolInputIncomplete       = "Preencha Peso, Altura e Data de Nascimento."
	ErrClientInvalidPathway                = "pathway must be either 'congenita' or 'adquirida'"
	ErrClientTooManyLoginAttempts          = "too many login attempts, please try again later"
	ErrClientTooManyRequests               = "too many requests, you are temporarily blocked"
	ErrClientResetInProgress               = "a system reset is already in progress"
	ErrClientBackupDisabled                = "backups are disabled on this server"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "request validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON          = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseDate            = "cannot parse the requested date"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevServerProcess              = "server failed to process the request"
	ErrDevFailedToHashPassword       = "failed to hash password"
	ErrDevInvalidCredentials         = "invalid username or password"
	ErrDevUsernameAlreadyExists      = "username already exists"
	ErrDevPasswordRequired           = "password missing on user creation"
	ErrDevUserNotExists              = "user does not exist"
	ErrDevPatientNotExists           = "patient does not exist"
	ErrDevConsultationNotExists      = "consultation does not exist"
	ErrDevPrescriptionIncomplete     = "consultation references a missing patient or doctor"
	ErrDevRoleNotCreatable           = "actor role cannot assign the requested role"
	ErrDevCannotEditUser             = "actor role cannot edit the target user"
	ErrDevCannotDeleteUser           = "actor role cannot delete the target user"
	ErrDevCannotDeleteInitialManager = "attempt to delete the initial manager"
	ErrDevActionForbidden            = "actor role is not allowed to perform this action"
	ErrDevProtocolInputIncomplete    = "protocol input is missing weight, height or birth date"
	ErrDevInvalidPathway             = "unknown protocol pathway"
	ErrDevAuthTokenMissing           = "authorization token missing"
	ErrDevAuthTokenInvalid           = "authorization token invalid"
	ErrDevAuthSigningMethod          = "unexpected token signing method"
	ErrDevAuthGenerateToken          = "failed to generate authorization token"
	ErrDevAuthInvalidSession         = "session not found or expired"
	ErrDevMissingRequestID           = "request id missing from context"
	ErrDevMissingSession             = "session missing from context"
	ErrDevTooManyLoginAttempts       = "login limiter quota exceeded"
	ErrDevTooManyRequests            = "per-ip limiter exceeded"
	ErrDevDBFailedToFindData         = "failed to find data"
	ErrDevDBFailedToInsertData       = "failed to insert data"
	ErrDevDBFailedToUpdateData       = "failed to update data"
	ErrDevDBFailedToDeleteData       = "failed to delete data"
	ErrDevDBFailedToIterateDataset   = "failed to iterate dataset"
	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevRedisGetData               = "failed to get data from redis"
	ErrDevRedisSetData               = "failed to set data in redis"
	ErrDevRedisDeleteData            = "failed to delete data from redis"
	ErrDevRedisIncrementValue        = "failed to increment value in redis"
	ErrDevRabbitMQPublishMessage     = "failed to publish message to queue %s"
	ErrDevMinioFailedToCreateObject  = "failed to create object in bucket %s"
	ErrDevRedisUnlock                = "failed to release redis lock"
	ErrDevResetInProgress            = "settings reset lock is held"
	ErrDevBackupDisabled             = "snapshot requested while backup storage is disabled"
)
