package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, loaded from environment variables.
type Config struct {
	Port        string
	DatabaseURL string
	SQLitePath  string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	SessionTTL time.Duration

	BucketName   string
	BucketRegion string
	AWSAccessKey string
	AWSSecretKey string

	EmailAPIKey string
	EmailSender string

	LoginRatePerMinute int
	LoginRateBurst     int
}

// Load reads configuration from the environment. A .env file is honored if
// present but is not required.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        GetEnvAsString("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  GetEnvAsString("SQLITE_PATH", "./sharebnb.db"),

		RedisHost:     GetEnvAsString("REDIS_HOST", "localhost"),
		RedisPort:     GetEnvAsString("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       GetEnvAsInt("REDIS_DB", 0),

		SessionTTL: GetEnvAsDuration("SESSION_TTL", 24*time.Hour),

		BucketName:   GetEnvAsString("BUCKET_NAME", "eb-sharebnb-listing-photos"),
		BucketRegion: GetEnvAsString("BUCKET_REGION", "us-west-1"),
		AWSAccessKey: os.Getenv("ACCESS_KEY"),
		AWSSecretKey: os.Getenv("SECRET_KEY"),

		EmailAPIKey: os.Getenv("EMAIL_API_KEY"),
		EmailSender: GetEnvAsString("EMAIL_SENDER", "noreply@sharebnb.dev"),

		LoginRatePerMinute: GetEnvAsInt("LOGIN_RATE_PER_MINUTE", 10),
		LoginRateBurst:     GetEnvAsInt("LOGIN_RATE_BURST", 5),
	}
}

// GetEnvAsString gets environment variable as string with default value
func GetEnvAsString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets environment variable as int with default value
func GetEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvAsDuration gets environment variable as duration with default value
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
