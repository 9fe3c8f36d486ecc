package config

import (
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Enabled:  utils.GetEnvBool("RABBITMQ_ENABLED", false),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                      utils.GetEnvString("APP_PORT", "8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "UTC"),
			CorsAllowedOrigins:        utils.GetEnvStringSlice("APP_CORS_ALLOWED_ORIGINS", []string{}),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeout:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:   utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 30),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
		},
		Tidepool: Tidepool{
			BaseUrl:              utils.GetEnvString("TIDEPOOL_BASE_URL", "http://localhost:8009"),
			ServerName:           utils.GetEnvString("TIDEPOOL_SERVER_NAME", "orca"),
			ServerSecret:         utils.GetEnvString("TIDEPOOL_SERVER_SECRET", ""),
			TokenTTLInMinutes:    utils.GetEnvInt("TIDEPOOL_TOKEN_TTL_IN_MINUTES", 50),
			MaxRequestsPerSecond: utils.GetEnvInt("TIDEPOOL_MAX_REQUESTS_PER_SECOND", 20),
			HTTPTimeoutInSeconds: utils.GetEnvInt("TIDEPOOL_HTTP_TIMEOUT_IN_SECONDS", 30),
			PageSize:             utils.GetEnvInt("TIDEPOOL_PAGE_SIZE", 100),
		},
		Auth: Auth{
			AssertionHeader: utils.GetEnvString("AUTH_ASSERTION_HEADER", "X-Pomerium-Jwt-Assertion"),
			DevBypass:       utils.GetEnvBool("AUTH_DEV_BYPASS", false),
			DevEmail:        utils.GetEnvString("AUTH_DEV_EMAIL", "developer@tidepool.org"),
			EditorGroups:    utils.GetEnvStringSlice("AUTH_EDITOR_GROUPS", []string{}),
		},
		Session: Session{
			Secret:           utils.GetEnvString("SESSION_SECRET", ""),
			MaxAgeInDays:     utils.GetEnvInt("SESSION_MAX_AGE_IN_DAYS", constvars.DefaultSessionMaxAgeInDay),
			SecureCookie:     utils.GetEnvBool("SESSION_SECURE_COOKIE", true),
			RecentItemsLimit: utils.GetEnvInt("SESSION_RECENT_ITEMS_LIMIT", constvars.DefaultRecentItemsLimit),
		},
		Report: Report{
			ArchiveEnabled:            utils.GetEnvBool("REPORT_ARCHIVE_ENABLED", false),
			BucketName:                utils.GetEnvString("REPORT_BUCKET_NAME", "orca-reports"),
			RetentionInDays:           utils.GetEnvInt("REPORT_RETENTION_IN_DAYS", 30),
			SweeperCronSpec:           utils.GetEnvString("REPORT_SWEEPER_CRON_SPEC", "@daily"),
			PresignedUrlExpiryInHours: utils.GetEnvInt("REPORT_PRESIGNED_URL_EXPIRY_IN_HOURS", 24),
			MaxPerMinute:              utils.GetEnvInt("REPORT_MAX_PER_MINUTE", 10),
		},
		Audit: Audit{
			Queue: utils.GetEnvString("AUDIT_QUEUE", "orca_audit"),
		},
	}
}
