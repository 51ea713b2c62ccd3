package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	MongoDB struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)

type InternalConfig struct {
	App           App
	JWT           AppJWT
	Minio         AppMinio
	RabbitMQ      AppRabbitMQ
	MongoDB       AppMongoDB
	Questionnaire AppQuestionnaire
	Geography     AppGeography
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Address                   string
	EndpointPrefix            string
	AllowedOrigins            string
	MaxRequests               int
	ShutdownTimeoutInSeconds  int
	RequestTimeoutInSeconds   int
	MaxTimeRequestsPerSeconds int
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppMinio struct {
	BucketName                            string
	ProfilePictureMaxUploadSizeInMB       int
	PreSignedUrlObjectExpiryTimeInMinutes int
}

type AppRabbitMQ struct {
	QuestionnaireCompletedQueue string
}

type AppMongoDB struct {
	PanelDBName string
}

type AppQuestionnaire struct {
	SessionTTLInMinutes     int
	SubmitLockTTLInSeconds  int
	SessionLockTTLInSeconds int
}

type AppGeography struct {
	CacheTTLInMinutes int
}
