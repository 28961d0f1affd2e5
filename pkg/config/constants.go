package config

// EnvPrefix scopes every variable envconfig reads.
const EnvPrefix = "FISHWEB"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv    = "FISHWEB_APP_ENV"
	EnvPort      = "FISHWEB_APP_PORT"
	EnvDBDSN     = "FISHWEB_DB_DSN"
	EnvDBHost    = "FISHWEB_DB_HOST"
	EnvDBUser    = "FISHWEB_DB_USER"
	EnvDBName    = "FISHWEB_DB_NAME"
	EnvRedisURL  = "FISHWEB_REDIS_URL"
	EnvJWTSecret = "FISHWEB_JWT_SECRET"
	EnvJWTIssuer = "FISHWEB_JWT_ISSUER"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
