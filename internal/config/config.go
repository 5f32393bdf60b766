package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/klowq/admin-dashboard/pkg/logger"
)

// DevSessionSecret is used when SESSION_SECRET is unset. Never in production.
const DevSessionSecret = "klowq-dashboard-dev-secret-change-me"

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Admin     AdminConfig
	Session   SessionConfig
	MongoDB   MongoDBConfig
	Redis     RedisConfig
	MinIO     MinIOConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Production reports whether cookies should be marked Secure and gin run in release mode.
func (s ServerConfig) Production() bool {
	return strings.EqualFold(s.Environment, "production")
}

type DataConfig struct {
	Dir string
}

type AdminConfig struct {
	Email    string
	Password string
	Name     string
}

type SessionConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	// Backend is memory, redis or mongo.
	Backend string
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

func (m MinIOConfig) Enabled() bool { return m.Endpoint != "" }

type RateLimitConfig struct {
	Enabled    bool
	RPS        float64
	Burst      int
	UseRedis   bool
	Window     time.Duration
	LoginRPS   float64
	LoginBurst int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

func setDefaults() {
	viper.SetDefault("SERVER_PORT", "3000")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("ADMIN_EMAIL", "admin@klowq.com")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.SetDefault("ADMIN_NAME", "Admin")
	viper.SetDefault("SESSION_ACCESS_TTL", 60)
	viper.SetDefault("SESSION_REFRESH_TTL", 10080)
	viper.SetDefault("SESSION_BACKEND", "memory")
	viper.SetDefault("MONGODB_DATABASE", "dashboard")
	viper.SetDefault("MONGODB_TIMEOUT", 10)
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("MINIO_BUCKET", "dashboard")
	viper.SetDefault("RATE_LIMIT_ENABLED", false)
	viper.SetDefault("RATE_LIMIT_RPS", 10)
	viper.SetDefault("RATE_LIMIT_BURST", 20)
	viper.SetDefault("RATE_LIMIT_USE_REDIS", false)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 1)
	viper.SetDefault("LOGIN_RATE_RPS", 0.2)
	viper.SetDefault("LOGIN_RATE_BURST", 5)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
}

// LoadConfig loads configuration from environment variables and an optional .env file.
// Values bound through viper (for example CLI flags) take precedence over the environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()
	setDefaults()

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("SERVER_PORT"),
			Host:         viper.GetString("SERVER_HOST"),
			Environment:  viper.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Data: DataConfig{Dir: viper.GetString("DATA_DIR")},
		Admin: AdminConfig{
			Email:    viper.GetString("ADMIN_EMAIL"),
			Password: viper.GetString("ADMIN_PASSWORD"),
			Name:     viper.GetString("ADMIN_NAME"),
		},
		Session: SessionConfig{
			Secret:     viper.GetString("SESSION_SECRET"),
			AccessTTL:  time.Duration(viper.GetInt("SESSION_ACCESS_TTL")) * time.Minute,
			RefreshTTL: time.Duration(viper.GetInt("SESSION_REFRESH_TTL")) * time.Minute,
			Backend:    strings.ToLower(viper.GetString("SESSION_BACKEND")),
		},
		MongoDB: MongoDBConfig{
			URI:      viper.GetString("MONGODB_URI"),
			Database: viper.GetString("MONGODB_DATABASE"),
			Timeout:  time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		MinIO: MinIOConfig{
			Endpoint:  viper.GetString("MINIO_ENDPOINT"),
			AccessKey: viper.GetString("MINIO_ACCESS_KEY"),
			SecretKey: viper.GetString("MINIO_SECRET_KEY"),
			UseSSL:    viper.GetBool("MINIO_USE_SSL"),
			Bucket:    viper.GetString("MINIO_BUCKET"),
		},
		RateLimit: RateLimitConfig{
			Enabled:    viper.GetBool("RATE_LIMIT_ENABLED"),
			RPS:        viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:      viper.GetInt("RATE_LIMIT_BURST"),
			UseRedis:   viper.GetBool("RATE_LIMIT_USE_REDIS"),
			Window:     time.Duration(viper.GetInt("RATE_LIMIT_WINDOW_SECONDS")) * time.Second,
			LoginRPS:   viper.GetFloat64("LOGIN_RATE_RPS"),
			LoginBurst: viper.GetInt("LOGIN_RATE_BURST"),
		},
		CORS: CORSConfig{AllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
	}

	// Basic validation
	if cfg.Session.Secret == "" {
		logger.Warnf("SESSION_SECRET is not set; using a development secret")
		cfg.Session.Secret = DevSessionSecret
	}
	switch cfg.Session.Backend {
	case "memory", "redis", "mongo":
	default:
		logger.Warnf("unknown SESSION_BACKEND %q; falling back to memory", cfg.Session.Backend)
		cfg.Session.Backend = "memory"
	}
	if cfg.Session.Backend == "mongo" && cfg.MongoDB.URI == "" {
		logger.Warnf("SESSION_BACKEND=mongo without MONGODB_URI; falling back to memory")
		cfg.Session.Backend = "memory"
	}
	if cfg.Admin.Password == "admin123" && cfg.Server.Production() {
		logger.Warnf("ADMIN_PASSWORD is the default value in production")
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
