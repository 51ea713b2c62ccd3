package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Geography messages
	GetCountriesSuccessMessage = "get countries successfully"
	GetStatesSuccessMessage    = "get states successfully"
	GetCitiesSuccessMessage    = "get cities successfully"

	// Questionnaire messages
	GetQuestionnaireDefinitionSuccessMessage = "get questionnaire definition successfully"
	GetQuestionnaireStatusSuccessMessage     = "get questionnaire status successfully"
	StartQuestionnaireSessionSuccessMessage  = "questionnaire session started successfully"
	GetQuestionnaireSessionSuccessMessage    = "get questionnaire session successfully"
	UpdateQuestionnaireAnswerSuccessMessage  = "questionnaire answer updated successfully"
	NavigateQuestionnaireSuccessMessage      = "questionnaire navigation processed"
	SubmitQuestionnaireSuccessMessage        = "questionnaire submitted successfully"
	AbandonQuestionnaireSuccessMessage       = "questionnaire session discarded"
	GetQuestionnaireResponseSuccessMessage   = "get questionnaire response successfully"

	// Profile messages
	GetProfileSuccessMessage    = "get profile successfully"
	UpdateProfileSuccessMessage = "profile updated successfully"
	UploadAvatarSuccessMessage  = "avatar uploaded successfully"
	GetAvatarSuccessMessage     = "get avatar successfully"
)
