package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	Env     string `mapstructure:"ENV"`
	AppPort string `mapstructure:"APP_PORT"`

	// Remote API configuration.
	APIBaseURL        string `mapstructure:"API_BASE_URL"`
	HTTPTimeoutSecs   int    `mapstructure:"HTTP_TIMEOUT_SECONDS"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Session store configuration.
	SessionBackend string `mapstructure:"SESSION_BACKEND"`
	SessionFile    string `mapstructure:"SESSION_FILE"`
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Dev server token settings.
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	AccessTokenTTLMins int    `mapstructure:"ACCESS_TOKEN_TTL_MIN"`
	RefreshTokenTTLHrs int    `mapstructure:"REFRESH_TOKEN_TTL_HOURS"`
	SeedDemoBookings   bool   `mapstructure:"SEED_DEMO_BOOKINGS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("ENV", "development")
	viper.SetDefault("APP_PORT", "5000")
	viper.SetDefault("API_BASE_URL", "http://localhost:5000/api")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 15)
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("SESSION_BACKEND", "file")
	viper.SetDefault("SESSION_FILE", "")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("JWT_SECRET", "utsavia-dev-secret")
	viper.SetDefault("ACCESS_TOKEN_TTL_MIN", 15)
	viper.SetDefault("REFRESH_TOKEN_TTL_HOURS", 168)
	viper.SetDefault("SEED_DEMO_BOOKINGS", false)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// HTTPTimeout returns the configured client timeout as a duration.
func HTTPTimeout() time.Duration {
	secs := AppConfig.HTTPTimeoutSecs
	if secs <= 0 {
		secs = 15
	}
	return time.Duration(secs) * time.Second
}

// AccessTokenTTL returns the dev server access token lifetime.
func AccessTokenTTL() time.Duration {
	mins := AppConfig.AccessTokenTTLMins
	if mins <= 0 {
		mins = 15
	}
	return time.Duration(mins) * time.Minute
}

// RefreshTokenTTL returns the dev server refresh token lifetime.
func RefreshTokenTTL() time.Duration {
	hrs := AppConfig.RefreshTokenTTLHrs
	if hrs <= 0 {
		hrs = 168
	}
	return time.Duration(hrs) * time.Hour
}
