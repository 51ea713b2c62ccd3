package config

import (
	"panel-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", "8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			Address:                   utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			AllowedOrigins:            utils.GetEnvString("APP_ALLOWED_ORIGINS", "*"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds:  utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:   utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 5),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 1),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
		},
		Minio: AppMinio{
			BucketName:                            utils.GetEnvString("APP_MINIO_BUCKET_NAME", "panel"),
			ProfilePictureMaxUploadSizeInMB:       utils.GetEnvInt("APP_MINIO_PROFILE_PICTURE_MAX_UPLOAD_SIZE_IN_MB", 5),
			PreSignedUrlObjectExpiryTimeInMinutes: utils.GetEnvInt("APP_MINIO_PRE_SIGNED_URL_OBJECT_EXPIRY_TIME_IN_MINUTES", 60),
		},
		RabbitMQ: AppRabbitMQ{
			QuestionnaireCompletedQueue: utils.GetEnvString("APP_RABBITMQ_QUESTIONNAIRE_COMPLETED_QUEUE", "questionnaire_completed"),
		},
		MongoDB: AppMongoDB{
			PanelDBName: utils.GetEnvString("APP_MONGODB_PANEL_DB_NAME", "panel"),
		},
		Questionnaire: AppQuestionnaire{
			SessionTTLInMinutes:     utils.GetEnvInt("APP_QUESTIONNAIRE_SESSION_TTL_IN_MINUTES", 60),
			SubmitLockTTLInSeconds:  utils.GetEnvInt("APP_QUESTIONNAIRE_SUBMIT_LOCK_TTL_IN_SECONDS", 30),
			SessionLockTTLInSeconds: utils.GetEnvInt("APP_QUESTIONNAIRE_SESSION_LOCK_TTL_IN_SECONDS", 30),
		},
		Geography: AppGeography{
			CacheTTLInMinutes: utils.GetEnvInt("APP_GEOGRAPHY_CACHE_TTL_IN_MINUTES", 1440),
		},
	}
}
