package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Token issuer. Rotating JWTSecret invalidates every outstanding
	// token; that is the documented operational trade-off.
	JWTSecret                  string
	JWTIssuer                  string
	JWTExpiryDuration          time.Duration
	RefreshTokenExpiryDuration time.Duration

	// External OAuth providers
	GoogleClientID      string `mapstructure:"GOOGLE_CLIENT_ID"`
	TwitterClientID     string `mapstructure:"TWITTER_CLIENT_ID"`
	TwitterClientSecret string `mapstructure:"TWITTER_CLIENT_SECRET"`
	TwitterCallbackURL  string `mapstructure:"TWITTER_CALLBACK_URL"`
	// ProviderTimeout bounds every upstream provider HTTP call.
	ProviderTimeout time.Duration
	// OAuthStateTTL bounds how long a PKCE state/verifier pair stays
	// consumable.
	OAuthStateTTL time.Duration

	// State store backend: "memory" or "redis".
	StateStoreDriver string `mapstructure:"STATE_STORE_DRIVER"`
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisDB          int    `mapstructure:"REDIS_DB"`

	// SMTP for deletion-request confirmations. Empty host disables mail.
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUsername string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`

	PosthogAPIKey   string `mapstructure:"POSTHOG_API_KEY"`
	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`
}

// LoadConfig loads configuration from environment variables and a .env
// file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "academy-backend")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("TWITTER_CLIENT_ID", "")
	viper.SetDefault("TWITTER_CLIENT_SECRET", "")
	viper.SetDefault("TWITTER_CALLBACK_URL", "")
	viper.SetDefault("PROVIDER_TIMEOUT", "10s")
	viper.SetDefault("OAUTH_STATE_TTL", "10m")
	viper.SetDefault("STATE_STORE_DRIVER", "memory")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USERNAME", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_FROM", "no-reply@ecodeed.com")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key. THIS IS NOT FOR PRODUCTION.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.JWTExpiryDuration = parseDurationOr("JWT_EXPIRY_DURATION", time.Hour)
	cfg.RefreshTokenExpiryDuration = parseDurationOr("REFRESH_TOKEN_EXPIRY_DURATION", 7*24*time.Hour)
	cfg.ProviderTimeout = parseDurationOr("PROVIDER_TIMEOUT", 10*time.Second)
	cfg.OAuthStateTTL = parseDurationOr("OAUTH_STATE_TTL", 10*time.Minute)

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.TwitterClientID = viper.GetString("TWITTER_CLIENT_ID")
	cfg.TwitterClientSecret = viper.GetString("TWITTER_CLIENT_SECRET")
	cfg.TwitterCallbackURL = viper.GetString("TWITTER_CALLBACK_URL")
	if cfg.TwitterClientID == "" {
		log.Println("Warning: TWITTER_CLIENT_ID not set. Twitter OAuth will not function.")
	}

	cfg.StateStoreDriver = viper.GetString("STATE_STORE_DRIVER")
	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")
	cfg.RedisDB = viper.GetInt("REDIS_DB")

	cfg.SMTPHost = viper.GetString("SMTP_HOST")
	cfg.SMTPPort = viper.GetInt("SMTP_PORT")
	cfg.SMTPUsername = viper.GetString("SMTP_USERNAME")
	cfg.SMTPPassword = viper.GetString("SMTP_PASSWORD")
	cfg.SMTPFrom = viper.GetString("SMTP_FROM")

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	return cfg, nil
}

func parseDurationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
