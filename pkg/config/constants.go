package config

// EnvPrefix namespaces every environment variable consumed by the service.
const EnvPrefix = "DEMA"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv = "DEMA_APP_ENV"
	EnvPort   = "DEMA_APP_PORT"

	EnvDBDSN      = "DEMA_DB_DSN"
	EnvDBHost     = "DEMA_DB_HOST"
	EnvDBPort     = "DEMA_DB_PORT"
	EnvDBUser     = "DEMA_DB_USER"
	EnvDBPassword = "DEMA_DB_PASSWORD"
	EnvDBName     = "DEMA_DB_NAME"
	EnvDBSSLMode  = "DEMA_DB_SSLMODE"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
