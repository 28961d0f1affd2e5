package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App        AppConfig
	DB         DBConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Password   PasswordConfig
	Checkout   CheckoutConfig
	Storefront StorefrontConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FISHWEB_APP_ENV" required:"true"`
	Port         string `envconfig:"FISHWEB_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"FISHWEB_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FISHWEB_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"FISHWEB_DB_DSN"`
	Driver string `envconfig:"FISHWEB_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"FISHWEB_DB_HOST"`
	LegacyPort     int    `envconfig:"FISHWEB_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"FISHWEB_DB_USER"`
	LegacyPassword string `envconfig:"FISHWEB_DB_PASSWORD"`
	LegacyName     string `envconfig:"FISHWEB_DB_NAME"`
	LegacySSLMode  string `envconfig:"FISHWEB_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"FISHWEB_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"FISHWEB_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"FISHWEB_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"FISHWEB_DB_CONN_MAX_IDLE_TIME" default:"10m"`

	AutoMigrate bool `envconfig:"FISHWEB_AUTO_MIGRATE" default:"false"`
}

type RedisConfig struct {
	URL          string        `envconfig:"FISHWEB_REDIS_URL" required:"true"`
	Address      string        `envconfig:"FISHWEB_REDIS_ADDR"`
	Password     string        `envconfig:"FISHWEB_REDIS_PASSWORD"`
	DB           int           `envconfig:"FISHWEB_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"FISHWEB_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"FISHWEB_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"FISHWEB_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"FISHWEB_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"FISHWEB_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"FISHWEB_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"FISHWEB_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"FISHWEB_JWT_EXPIRATION_MINUTES" default:"30"`
	RefreshTokenTTLMinutes int    `envconfig:"FISHWEB_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"FISHWEB_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"FISHWEB_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"FISHWEB_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"FISHWEB_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"FISHWEB_ARGON_KEY_LEN" default:"32"`
}

type CheckoutConfig struct {
	IdempotencyTTL time.Duration `envconfig:"FISHWEB_CHECKOUT_IDEMPOTENCY_TTL" default:"24h"`
}

// StorefrontConfig feeds the client-side cart/wishlist stores.
type StorefrontConfig struct {
	APIBaseURL     string        `envconfig:"FISHWEB_STOREFRONT_API_URL" default:"http://localhost:8080"`
	StateDir       string        `envconfig:"FISHWEB_STOREFRONT_STATE_DIR" default:".fishweb"`
	RequestTimeout time.Duration `envconfig:"FISHWEB_STOREFRONT_REQUEST_TIMEOUT" default:"15s"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
