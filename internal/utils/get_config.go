package utils

import (
	"errors"
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const DefaultConfigPath = "config.yaml"

type Config struct {
	// Server configuration
	AppPort            string `yaml:"APP_PORT"`
	LogPath            string `yaml:"LOG_PATH"`
	CORSOrigins        string `yaml:"CORS_ORIGINS"`
	RateLimitPerSecond int    `yaml:"RATE_LIMIT_PER_SECOND"`

	// Data source: "database" or "fixture"
	DataSource         string `yaml:"DATA_SOURCE"`
	FixtureInfoPath    string `yaml:"FIXTURE_INFO_PATH"`
	FixtureDetailsPath string `yaml:"FIXTURE_DETAILS_PATH"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBTimeZone string `yaml:"DB_TIMEZONE"`

	// JWT
	JWTSecret     string `yaml:"JWT_SECRET"`
	JWTTTLMinutes int    `yaml:"JWT_TTL_MINUTES"`

	// Redis cache
	RedisAddr       string `yaml:"REDIS_ADDR"`
	RedisPassword   string `yaml:"REDIS_PASSWORD"`
	RedisDB         int    `yaml:"REDIS_DB"`
	CacheTTLSeconds int    `yaml:"CACHE_TTL_SECONDS"`

	// Mailing configuration
	AppURL           string `yaml:"APP_URL"`
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Seeding
	SeedUserEmail    string `yaml:"SEED_USER_EMAIL"`
	SeedUserUsername string `yaml:"SEED_USER_USERNAME"`
	SeedUserPassword string `yaml:"SEED_USER_PASSWORD"`
}

var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		AppPort:            "3000",
		LogPath:            "./logs/app.log",
		CORSOrigins:        "*",
		RateLimitPerSecond: 10,
		DataSource:         "database",
		FixtureInfoPath:    "./data/info.json",
		FixtureDetailsPath: "./data/recipes-details.json",
		DBTimeZone:         "Asia/Ulaanbaatar",
		JWTTTLMinutes:      120,
		CacheTTLSeconds:    300,
		SeedUserEmail:      "recipes@recipesite.local",
		SeedUserUsername:   "recipesite",
	}
}

// LoadConfig reads the yaml file at path, then applies .env and process
// environment overrides. A missing yaml file is not an error.
func LoadConfig(path string) error {
	config = defaultConfig()

	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &config); err != nil {
			return err
		}
	case errors.Is(err, os.ErrNotExist):
		log.Warnf("config file %s not found, using defaults and environment", path)
	default:
		return err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("error loading .env file: %v", err)
	}

	applyEnvOverrides(&config)
	return nil
}

func applyEnvOverrides(c *Config) {
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				log.Warnf("ignoring %s=%q: not an integer", key, v)
				return
			}
			*dst = n
		}
	}

	str("APP_PORT", &c.AppPort)
	str("LOG_PATH", &c.LogPath)
	str("CORS_ORIGINS", &c.CORSOrigins)
	num("RATE_LIMIT_PER_SECOND", &c.RateLimitPerSecond)
	str("DATA_SOURCE", &c.DataSource)
	str("FIXTURE_INFO_PATH", &c.FixtureInfoPath)
	str("FIXTURE_DETAILS_PATH", &c.FixtureDetailsPath)
	str("DB_USER", &c.DBUser)
	str("DB_NAME", &c.DBName)
	str("DB_PASSWORD", &c.DBPassword)
	str("DB_PORT", &c.DBPort)
	str("DB_HOST", &c.DBHost)
	str("DB_TIMEZONE", &c.DBTimeZone)
	str("JWT_SECRET", &c.JWTSecret)
	num("JWT_TTL_MINUTES", &c.JWTTTLMinutes)
	str("REDIS_ADDR", &c.RedisAddr)
	str("REDIS_PASSWORD", &c.RedisPassword)
	num("REDIS_DB", &c.RedisDB)
	num("CACHE_TTL_SECONDS", &c.CacheTTLSeconds)
	str("APP_URL", &c.AppURL)
	str("SMTP_HOST", &c.SMTPHost)
	str("SMTP_PORT", &c.SMTPPort)
	str("SMTP_SENDER_NAME", &c.SMTPSenderName)
	str("SMTP_AUTH_EMAIL", &c.SMTPAuthEmail)
	str("SMTP_AUTH_PASSWORD", &c.SMTPAuthPassword)
	str("AWS_S3_BUCKET", &c.AWSS3Bucket)
	str("AWS_S3_REGION", &c.AWSS3Region)
	str("AWS_ACCESS_KEY", &c.AWSAccessKey)
	str("AWS_SECRET_KEY", &c.AWSSecretKey)
	str("SEED_USER_EMAIL", &c.SeedUserEmail)
	str("SEED_USER_USERNAME", &c.SeedUserUsername)
	str("SEED_USER_PASSWORD", &c.SeedUserPassword)
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "LOG_PATH":
		return config.LogPath
	case "CORS_ORIGINS":
		return config.CORSOrigins
	case "DATA_SOURCE":
		return config.DataSource
	case "FIXTURE_INFO_PATH":
		return config.FixtureInfoPath
	case "FIXTURE_DETAILS_PATH":
		return config.FixtureDetailsPath
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "DB_TIMEZONE":
		return config.DBTimeZone
	case "JWT_SECRET":
		return config.JWTSecret
	case "REDIS_ADDR":
		return config.RedisAddr
	case "REDIS_PASSWORD":
		return config.RedisPassword
	case "APP_URL":
		return config.AppURL
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "SEED_USER_EMAIL":
		return config.SeedUserEmail
	case "SEED_USER_USERNAME":
		return config.SeedUserUsername
	case "SEED_USER_PASSWORD":
		return config.SeedUserPassword
	default:
		return ""
	}
}

// GetConfigInt returns the integer setting for key, or def when it is unset or not positive.
func GetConfigInt(key string, def int) int {
	var v int
	switch key {
	case "RATE_LIMIT_PER_SECOND":
		v = config.RateLimitPerSecond
	case "JWT_TTL_MINUTES":
		v = config.JWTTTLMinutes
	case "REDIS_DB":
		return config.RedisDB
	case "CACHE_TTL_SECONDS":
		v = config.CacheTTLSeconds
	}
	if v <= 0 {
		return def
	}
	return v
}
