package constvars

type ContextKey string

const (
	ResourceGeography     = "geography"
	ResourceQuestionnaire = "questionnaire"
	ResourceProfiles      = "profiles"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_OWNER_IDENTITY_KEY       ContextKey = "owner_identity"
)

const (
	REQUEST_ID_PREFIX = "PANEL_SVC_"
)

const (
	JWTClaimSubject = "sub"
)

// Redis keys
const (
	RedisKeyGeographyCountries       = "geography:countries"
	RedisKeyGeographyStatesFormat    = "geography:states:%s"
	RedisKeyGeographyCitiesFormat    = "geography:cities:%s:%s"
	RedisKeyQuestionnaireSession     = "questionnaire:session:%s"
	RedisKeyQuestionnaireSubmitLock  = "questionnaire:submit-lock:%s"
	RedisKeyQuestionnaireSessionLock = "questionnaire:session-lock:%s"
)

// Mongo collections
const (
	MongoCollectionQuestionnaireResponses = "questionnaire_responses"
	MongoCollectionUserProfiles           = "user_profiles"
)

const (
	AvatarObjectPrefixFormat = "profile-pictures/%s/"
	AvatarObjectNameFormat   = "profile-pictures/%s/avatar.%s"
	AvatarFormField          = "avatar"
)

const (
	EventQuestionnaireCompleted = "questionnaire.completed"
)
