package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":           "is required",
	"email":              "must be a valid email",
	"min":                "must be at least %s characters long",
	"max":                "maximum at %s characters long",
	"numeric":            "must be a number",
	"oneof":              "must be one of [%s]",
	"gt":                 "must be greater than %s",
	"gte":                "must be greater than or equal to %s",
	"lt":                 "must be less than %s",
	"lte":                "must be less than or equal to %s",
	"phone_number":       "phone number must start with '+' followed by 10 to 15 digits",
	"image_content_type": "must be a JPEG, PNG, WebP or GIF image",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"oneof": true,
}

// Tags whose message already reads as a full sentence
var TagsWithStandaloneMessage = map[string]bool{
	"phone_number": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidImageFormat            = "only JPEG, PNG, WebP or GIF images are allowed"
	ErrClientImageTooLarge                 = "image size must be %d MB or less"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientCountryNotFound               = "country not found"
	ErrClientStateNotFound                 = "province or state not found"
	ErrClientQuestionnaireAlreadyCompleted = "you have already completed the onboarding questionnaire"
	ErrClientQuestionnaireSessionNotFound  = "no questionnaire in progress, please start again"
	ErrClientQuestionnaireResponseNotFound = "you have not completed the onboarding questionnaire yet"
	ErrClientQuestionnaireSubmitInProgress = "your answers are already being submitted"
	ErrClientQuestionnaireSessionBusy      = "your previous answer is still being saved, please try again"
	ErrClientSubmissionFailed              = "We could not save your answers. Please try again."
	ErrClientAvatarNotFound                = "no profile picture uploaded yet"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevURLParamValidationFailed = "parameter %s validation failed"

	// Validation messages
	ErrDevValidationFailed      = "validation failed"
	ErrDevImageValidationFailed = "image validation failed"
	ErrDevImageTooLarge         = "image exceeds the maximum upload size"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthSubjectMissing        = "token does not carry a subject claim"

	// Questionnaire messages
	ErrDevQuestionnaireAlreadyCompleted  = "a questionnaire response already exists for owner"
	ErrDevQuestionnaireSessionNotFound   = "no questionnaire session stored for owner"
	ErrDevQuestionnaireSessionCorrupted  = "stored questionnaire session cannot be restored"
	ErrDevQuestionnaireMutationRejected  = "questionnaire answer mutation rejected"
	ErrDevQuestionnaireSubmitLocked      = "questionnaire submit lock is held by another request"
	ErrDevQuestionnaireSessionLocked     = "questionnaire session lock was not released before the deadline"
	ErrDevQuestionnaireGatewayFailed     = "submission gateway failed to persist questionnaire response"
	ErrDevQuestionnaireResponseNotExists = "questionnaire response not found for owner"

	// Geography messages
	ErrDevGeographyCountryNotFound = "country %q not found in geographic dataset"
	ErrDevGeographyStateNotFound   = "state %q not found under country %q"

	// Database messages
	ErrDevDBFailedToInsertDocument = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument = "failed to update document into database"
	ErrDevDBFailedToFindDocument   = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument = "failed when do delete document on database"
	ErrDevDBFailedToCreateIndex    = "failed to create index on database"

	// Minio messages
	ErrDevMinioFailedToCreateObject          = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToListObjects           = "failed to list objects from minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetObjectPresignedURL = "failed to get object URL from minio storage with bucket name '%s'"
	ErrDevMinioObjectNotFound                = "no object found under the requested prefix"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"
	ErrDevRedisSetNX      = "failed to SETNX data into redis"
	ErrDevRedisUnlock     = "failed to release lock in redis"

	// RabbitMQ messages
	ErrDevRabbitMQOpenChannel    = "failed to open channel on rabbitmq connection"
	ErrDevRabbitMQPublishMessage = "failed to publish message into rabbitmq queue '%s'"

	// Server messages
	ErrDevServerProcess          = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerPanicRecovered   = "panic recovered while handling request"
	ErrDevRequestLimitExceeded   = "request limit exceeded"
)

const (
	ErrEnvParsing     = "Error parsing %s: %v, will use default value"
	ErrEnvKeyNotExist = "Error getting env key: %s, will use default value"
)
