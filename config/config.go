package config

import (
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Auth     Auth
	Redis    Redis
	Gemini   Gemini
	Seed     Seed
	LogLevel string
}

type Server struct {
	Port    string
	GinMode string
	// AllowedOrigins may send credentialed cross-origin requests.
	AllowedOrigins []string
}

type Database struct {
	Driver     string // "postgres" or "sqlite"
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SQLitePath string
}

type Auth struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type Redis struct {
	Addr     string
	Password string
	DB       int
	StatsTTL time.Duration
}

type Gemini struct {
	ApiKey string
	Model  string
}

type Seed struct {
	OnStart       bool
	AdminUsername string
	AdminPassword string
}

// DevJWTSecret signs tokens when JWT_SECRET is unset. It is refused in release mode.
const DevJWTSecret = "campuspulse-dev-secret"

var ErrInsecureSecret = errors.New("JWT_SECRET must be set to a non-default value in release mode")

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_SQLITE_PATH", "campuspulse.db")
	viper.SetDefault("JWT_SECRET", DevJWTSecret)
	viper.SetDefault("JWT_TTL_HOURS", 24)
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("STATS_CACHE_TTL_SECONDS", 60)
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("SEED_ON_START", false)
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.GinMode = viper.GetString("GIN_MODE")
	config.Server.AllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	config.LogLevel = viper.GetString("LOG_LEVEL")

	config.Database.Driver = viper.GetString("DATABASE_DRIVER")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SQLitePath = viper.GetString("DATABASE_SQLITE_PATH")

	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")
	config.Auth.TokenTTL = time.Duration(viper.GetInt("JWT_TTL_HOURS")) * time.Hour

	config.Redis.Addr = viper.GetString("REDIS_ADDR")
	config.Redis.Password = viper.GetString("REDIS_PASSWORD")
	config.Redis.DB = viper.GetInt("REDIS_DB")
	config.Redis.StatsTTL = time.Duration(viper.GetInt("STATS_CACHE_TTL_SECONDS")) * time.Second

	config.Gemini.ApiKey = viper.GetString("GEMINI_API_KEY")
	config.Gemini.Model = viper.GetString("GEMINI_MODEL")

	config.Seed.OnStart = viper.GetBool("SEED_ON_START")
	config.Seed.AdminUsername = viper.GetString("ADMIN_USERNAME")
	config.Seed.AdminPassword = viper.GetString("ADMIN_PASSWORD")

	if err := config.Validate(); err != nil {
		return nil, err
	}
	log.Info().Interface("config", config.Redacted()).Msg("Config loaded")
	return &config, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate rejects settings that are only acceptable during development.
func (c *Config) Validate() error {
	secret := strings.TrimSpace(c.Auth.JWTSecret)
	if secret != "" && secret != DevJWTSecret {
		return nil
	}
	if c.Server.GinMode == "release" {
		return ErrInsecureSecret
	}
	log.Warn().Msg("JWT_SECRET is not set, tokens are signed with the development secret")
	return nil
}

// Redacted returns a copy safe to log.
func (c Config) Redacted() Config {
	mask := func(s string) string {
		if s == "" {
			return ""
		}
		return "***"
	}
	c.Database.Password = mask(c.Database.Password)
	c.Auth.JWTSecret = mask(c.Auth.JWTSecret)
	c.Redis.Password = mask(c.Redis.Password)
	c.Gemini.ApiKey = mask(c.Gemini.ApiKey)
	c.Seed.AdminPassword = mask(c.Seed.AdminPassword)
	return c
}
