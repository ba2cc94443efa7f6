package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// New reads the configuration from the environment. It is called once at start-up and the result
// is handed to everything that needs it.
func New() (Config, error) {
	var e env

	secret := e.require("JWT_SECRET")
	config := Config{
		BasePath:              e.get("BASE_PATH", ""),
		Port:                  e.getInt("PORT", 8081),
		PublicURL:             strings.TrimSuffix(e.get("PUBLIC_URL", "http://127.0.0.1:8081"), "/"),
		AllowedOrigins:        e.getList("ALLOWED_ORIGINS"),
		RequireAuthentication: e.getBool("REQUIRE_AUTHENTICATION", false),
		Postgresql: Postgresql{
			Host:         e.require("DATABASE_HOST"),
			Port:         e.requireInt("DATABASE_PORT"),
			Username:     e.require("DATABASE_USERNAME"),
			Password:     e.require("DATABASE_PASSWORD"),
			DatabaseName: e.require("DATABASE_NAME"),
		},
		Authentication: Authentication{
			Secret:                        secret,
			AccessTokenExpirationSeconds:  e.getInt("ACCESS_TOKEN_EXPIRATION_IN_SECONDS", 3600),
			RefreshTokenSecret:            e.get("REFRESH_TOKEN_SECRET", secret),
			RefreshTokenExpirationSeconds: e.getInt("REFRESH_TOKEN_EXPIRATION_IN_SECONDS", 7*24*3600),
		},
		Avatar: Avatar{
			Directory:  e.get("AVATAR_DIRECTORY", "uploads/avatars"),
			S3Bucket:   e.get("AVATAR_S3_BUCKET", ""),
			S3Region:   e.get("AVATAR_S3_REGION", "eu-west-1"),
			S3Endpoint: e.get("AVATAR_S3_ENDPOINT", ""),
		},
		Tracing: Tracing{
			JaegerEndpoint: e.get("JAEGER_ENDPOINT", ""),
			ServiceName:    e.get("SERVICE_NAME", "fair-finder"),
		},
		Logging: Logging{
			Level:  e.getLevel("LOG_LEVEL", slog.LevelInfo),
			Pretty: e.getBool("LOG_PRETTY", false),
		},
	}

	return config, errors.Join(e.errs...)
}

type Config struct {
	BasePath              string
	Port                  int
	PublicURL             string
	AllowedOrigins        []string
	RequireAuthentication bool
	Postgresql            Postgresql
	Authentication        Authentication
	Avatar                Avatar
	Tracing               Tracing
	Logging               Logging
}

type Postgresql struct {
	Host         string
	Port         int
	Username     string
	Password     string
	DatabaseName string
}

type Authentication struct {
	Secret                        string
	AccessTokenExpirationSeconds  int
	RefreshTokenSecret            string
	RefreshTokenExpirationSeconds int
}

// Avatar configures where uploaded profile pictures are stored. Files go to Directory unless
// S3Bucket is set.
type Avatar struct {
	Directory  string
	S3Bucket   string
	S3Region   string
	S3Endpoint string
}

func (a Avatar) UseS3() bool {
	return a.S3Bucket != ""
}

// Tracing is disabled when JaegerEndpoint is empty.
type Tracing struct {
	JaegerEndpoint string
	ServiceName    string
}

func (t Tracing) Enabled() bool {
	return t.JaegerEndpoint != ""
}

type Logging struct {
	Level  slog.Level
	Pretty bool
}

// env collects lookup errors so all missing variables are reported at once.
type env struct {
	errs []error
}

func (e *env) require(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		e.errs = append(e.errs, fmt.Errorf("can't find environment variable: %s", key))
	}
	return value
}

func (e *env) requireInt(key string) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		e.errs = append(e.errs, fmt.Errorf("can't find environment variable: %s", key))
		return 0
	}
	return e.parseInt(key, value)
}

func (e *env) get(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}

func (e *env) getInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return e.parseInt(key, value)
}

func (e *env) parseInt(key, value string) int {
	i, err := strconv.Atoi(value)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("can't parse %s as integer: %v", key, err))
	}
	return i
}

func (e *env) getBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("can't parse %s as boolean: %v", key, err))
	}
	return b
}

func (e *env) getList(key string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return nil
	}

	var values []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func (e *env) getLevel(key string, fallback slog.Level) slog.Level {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		e.errs = append(e.errs, fmt.Errorf("can't parse %s as log level: %v", key, err))
	}
	return level
}
