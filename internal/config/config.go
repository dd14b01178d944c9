package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Store drivers
const (
	StoreMemory = "memory"
	StoreMySQL  = "mysql"
	StoreRedis  = "redis"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	LogLevel string
	API      APIConfig
	Store    StoreConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
	Cookie   CookieConfig
}

// APIConfig points at the VetCare REST backend
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// StoreConfig selects where browser sessions are persisted
type StoreConfig struct {
	Driver  string
	SealKey string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// RedisConfig holds redis configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// SessionConfig holds browser session settings
type SessionConfig struct {
	CookieName  string
	Idle        time.Duration
	StartupWait time.Duration
	PurgeCron   string
}

// CookieConfig holds cookie configuration
type CookieConfig struct {
	Secure   bool
	SameSite string
	Domain   string
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env file not found, using environment variables")
	}

	// Trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	store, err := loadStoreConfig(appMode)
	if err != nil {
		return nil, err
	}
	session, err := loadSessionConfig()
	if err != nil {
		return nil, err
	}
	redis, err := loadRedisConfig()
	if err != nil {
		return nil, err
	}

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "3000"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		API:      loadAPIConfig(),
		Store:    store,
		Database: loadDatabaseConfig(appMode),
		Redis:    redis,
		Session:  session,
		Cookie:   loadCookieConfig(appMode),
	}

	AppConfig = config
	return config, nil
}

func loadAPIConfig() APIConfig {
	secs, err := strconv.Atoi(getEnv("API_TIMEOUT_SECONDS", "10"))
	if err != nil || secs <= 0 {
		secs = 10
	}
	return APIConfig{
		BaseURL: strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:5000"), "/"),
		Timeout: time.Duration(secs) * time.Second,
	}
}

// loadStoreConfig loads store config based on mode
func loadStoreConfig(mode string) (StoreConfig, error) {
	driver := strings.ToLower(getEnv("STORE_DRIVER", StoreMemory))
	switch driver {
	case StoreMemory, StoreMySQL, StoreRedis:
	default:
		return StoreConfig{}, fmt.Errorf("invalid STORE_DRIVER: '%s' (must be memory, mysql or redis)", driver)
	}

	return StoreConfig{
		Driver:  driver,
		SealKey: getEnv(modePrefix(mode)+"STORE_SEAL_KEY", ""),
	}, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := modePrefix(mode)

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "vetcare_web"),
	}
}

func loadRedisConfig() (RedisConfig, error) {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return RedisConfig{}, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	return RedisConfig{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}, nil
}

func loadSessionConfig() (SessionConfig, error) {
	idleHours, err := strconv.Atoi(getEnv("SESSION_IDLE_HOURS", "168"))
	if err != nil || idleHours <= 0 {
		return SessionConfig{}, fmt.Errorf("invalid SESSION_IDLE_HOURS: '%s'", getEnv("SESSION_IDLE_HOURS", ""))
	}
	waitMs, err := strconv.Atoi(getEnv("SESSION_STARTUP_WAIT_MS", "3000"))
	if err != nil || waitMs < 0 {
		return SessionConfig{}, fmt.Errorf("invalid SESSION_STARTUP_WAIT_MS: '%s'", getEnv("SESSION_STARTUP_WAIT_MS", ""))
	}

	return SessionConfig{
		CookieName:  getEnv("SESSION_COOKIE", "vetcare_sid"),
		Idle:        time.Duration(idleHours) * time.Hour,
		StartupWait: time.Duration(waitMs) * time.Millisecond,
		PurgeCron:   getEnv("PURGE_CRON", "@every 30m"),
	}, nil
}

// loadCookieConfig loads cookie config based on mode
func loadCookieConfig(mode string) CookieConfig {
	secure, _ := strconv.ParseBool(getEnv(modePrefix(mode)+"COOKIE_SECURE", getEnv("COOKIE_SECURE", "false")))

	return CookieConfig{
		Secure:   secure,
		SameSite: getEnv("COOKIE_SAMESITE", "lax"),
		Domain:   getEnv("COOKIE_DOMAIN", ""),
	}
}

func modePrefix(mode string) string {
	if mode == "prod" {
		return "PROD_"
	}
	return "DEV_"
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://vetcare.com.br"
	}
	return origins
}
