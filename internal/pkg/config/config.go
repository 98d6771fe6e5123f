package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, upstream bases, secrets)
// - default: Values common across all environments (TTLs, page size, timeouts)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Booking  BookingConfig
	Mail     MailConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// UpstreamConfig points at the external collaborators. All persistence lives
// behind these APIs; this service keeps no database of its own.
type UpstreamConfig struct {
	// Vehicle source, e.g. https://myfakeapi.com/api (GET {base}/cars).
	CarsBaseURL string `envconfig:"CARS_BASE_URL" required:"true"`
	// Mock CRUD API hosting /reservations and /users.
	RentalBaseURL string `envconfig:"RENTAL_BASE_URL" required:"true"`
	// Optional DummyJSON-style auth host (POST {base}/auth/login). When empty,
	// login falls back to the demo users lookup on the rental API.
	AuthBaseURL string        `envconfig:"AUTH_BASE_URL" default:""`
	Timeout     time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s"`
}

type RedisConfig struct {
	// Empty address selects the in-memory store and disables the shared
	// vehicle cache (single-process deployments, tests).
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type BookingConfig struct {
	// Source variants disagree on 7 vs 10; default follows the mounted wizard.
	PhoneMinLen          int           `envconfig:"BOOKING_PHONE_MIN_LEN" default:"7"`
	DraftTTL             time.Duration `envconfig:"BOOKING_DRAFT_TTL" default:"30m"`
	SessionTTL           time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	PageSize             int           `envconfig:"VEHICLE_PAGE_SIZE" default:"9"`
	VehicleCacheTTL      time.Duration `envconfig:"VEHICLE_CACHE_TTL" default:"6h"`
	CacheRefreshSpec     string        `envconfig:"VEHICLE_CACHE_REFRESH" default:"@every 1h"`
	ConfirmRedirectDelay time.Duration `envconfig:"CONFIRM_REDIRECT_DELAY" default:"3s"`
	Cookie               CookieConfig
}

type MailConfig struct {
	// Confirmation mail is skipped entirely when the key is unset.
	SendGridAPIKey string `envconfig:"SENDGRID_API_KEY" default:""`
	FromEmail      string `envconfig:"SENDGRID_FROM_EMAIL" default:""`
	FromName       string `envconfig:"SENDGRID_FROM_NAME" default:"Rent-a-Car"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Upstream: UpstreamConfig{
			CarsBaseURL:   "http://localhost:18080/api",
			RentalBaseURL: "http://localhost:18081",
			Timeout:       time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Booking: BookingConfig{
			PhoneMinLen:          7,
			DraftTTL:             30 * time.Minute,
			SessionTTL:           24 * time.Hour,
			PageSize:             9,
			VehicleCacheTTL:      6 * time.Hour,
			CacheRefreshSpec:     "@every 1h",
			ConfirmRedirectDelay: 3 * time.Second,
		},
	}
}
