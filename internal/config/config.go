// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment   string
	Server        ServerConfig
	Database      DatabaseConfig
	JWT           JWTConfig
	OpenFoodFacts OpenFoodFactsConfig
	AWS           AWSConfig
	FCM           FCMConfig
	Recommend     RecommendConfig
	History       HistoryConfig
	I18n          I18nConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Database     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  int
	LogLevel     string
}

type JWTConfig struct {
	SecretKey       string
	AccessTokenTTL  int // in hours
	RefreshTokenTTL int // in hours
}

type OpenFoodFactsConfig struct {
	BaseURL      string
	ImageBaseURL string
	Timeout      int // in seconds
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string
}

type FCMConfig struct {
	Endpoint  string
	ServerKey string
}

// RecommendConfig holds the similarity-search knobs: MinResults is the yield
// below which the category filter keeps relaxing, MaxResults caps every
// candidate query, DefaultLimit applies when a request gives no count.
type RecommendConfig struct {
	MinResults   int
	MaxResults   int
	DefaultLimit int
}

type HistoryConfig struct {
	Window int // number of most-recent scans in the rolling average
}

type I18nConfig struct {
	DefaultLocale string
	LocalesPath   string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", ""),
			Database:     getEnv("DB_NAME", "carbonwise"),
			SSLMode:      getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 25),
			MaxLifetime:  getEnvAsInt("DB_MAX_LIFETIME", 300),
			LogLevel:     getEnv("DB_LOG_LEVEL", "silent"),
		},
		JWT: JWTConfig{
			SecretKey:       getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			AccessTokenTTL:  getEnvAsInt("JWT_ACCESS_TTL", 24),   // 24 hours
			RefreshTokenTTL: getEnvAsInt("JWT_REFRESH_TTL", 168), // 7 days
		},
		OpenFoodFacts: OpenFoodFactsConfig{
			BaseURL:      getEnv("OFF_BASE_URL", "https://world.openfoodfacts.org"),
			ImageBaseURL: getEnv("OFF_IMAGE_BASE_URL", "https://images.openfoodfacts.org/images/products"),
			Timeout:      getEnvAsInt("OFF_TIMEOUT", 10),
		},
		AWS: AWSConfig{
			Region:          getEnv("AWS_REGION", "eu-west-1"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			S3Bucket:        getEnv("AWS_S3_BUCKET", "carbonwise-product-images"),
		},
		FCM: FCMConfig{
			Endpoint:  getEnv("FCM_ENDPOINT", "https://fcm.googleapis.com/fcm/send"),
			ServerKey: getEnv("FCM_SERVER_KEY", ""),
		},
		Recommend: RecommendConfig{
			MinResults:   getEnvAsInt("RECOMMEND_MIN_RESULTS", 2),
			MaxResults:   getEnvAsInt("RECOMMEND_MAX_RESULTS", 20),
			DefaultLimit: getEnvAsInt("RECOMMEND_DEFAULT_LIMIT", 10),
		},
		History: HistoryConfig{
			Window: getEnvAsInt("HISTORY_WINDOW", 5),
		},
		I18n: I18nConfig{
			DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
			LocalesPath:   getEnv("LOCALES_PATH", "./internal/i18n/locales"),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.JWT.SecretKey == "your-secret-key-change-in-production" && c.Environment == "production" {
		return fmt.Errorf("JWT secret key must be changed in production")
	}

	if c.Database.Password == "" && c.Environment == "production" {
		return fmt.Errorf("database password is required in production")
	}

	if c.Recommend.MinResults < 1 || c.Recommend.MaxResults < c.Recommend.MinResults {
		return fmt.Errorf("invalid recommendation thresholds: min=%d max=%d", c.Recommend.MinResults, c.Recommend.MaxResults)
	}

	if c.History.Window < 1 {
		return fmt.Errorf("history window must be positive")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
