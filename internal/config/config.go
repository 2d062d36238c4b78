package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"coursematerials/internal/blobstore"
)

const (
	defaultAppEnv        = "dev"
	defaultHTTPAddr      = ":8080"
	defaultDatabaseURL   = "courses.db"
	defaultJWTSecret     = "change-me-jwt-secret"
	defaultAdminTokenTTL = "12h"
	defaultBlobBackend   = blobstore.BackendLocal
	defaultUploadDir     = "./uploads/images"
	defaultUploadURLBase = "/uploads/images"
	defaultMinioUseSSL   = "false"
	defaultCORSOrigins   = "http://localhost:3000"
)

type Config struct {
	AppEnv      string
	LogMode     string
	HTTPAddr    string
	DatabaseURL string

	JWTSecret         string
	AdminTokenTTL     time.Duration
	AdminPasswordHash string

	BlobBackend   string
	UploadDir     string
	UploadURLBase string
	BlobPublicURL string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	GCSBucket string

	CORSAllowedOrigins []string
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = defaultAppEnv
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.LogMode = strings.ToLower(strings.TrimSpace(getEnv("LOG_MODE", "")))
	if cfg.LogMode == "" {
		cfg.LogMode = "dev"
		if isProdLike(cfg.AppEnv) {
			cfg.LogMode = "prod"
		}
	}

	cfg.HTTPAddr = strings.TrimSpace(getEnv("HTTP_ADDR", defaultHTTPAddr))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.AdminTokenTTL, err = parseDurationEnv("ADMIN_TOKEN_TTL", defaultAdminTokenTTL)
	if err != nil {
		return nil, err
	}

	cfg.AdminPasswordHash = strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH"))
	if cfg.AdminPasswordHash == "" && !isProdLike(cfg.AppEnv) {
		if plain := os.Getenv("ADMIN_PASSWORD"); plain != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
			if err != nil {
				return nil, fmt.Errorf("hash ADMIN_PASSWORD: %w", err)
			}
			cfg.AdminPasswordHash = string(hash)
		}
	}

	cfg.BlobBackend = strings.ToLower(strings.TrimSpace(getEnv("BLOB_BACKEND", defaultBlobBackend)))
	cfg.UploadDir = strings.TrimSpace(getEnv("UPLOAD_DIR", defaultUploadDir))
	cfg.UploadURLBase = strings.TrimSpace(getEnv("UPLOAD_URL_BASE", defaultUploadURLBase))
	cfg.BlobPublicURL = strings.TrimSpace(os.Getenv("BLOB_PUBLIC_URL"))

	cfg.MinioEndpoint = strings.TrimSpace(os.Getenv("MINIO_ENDPOINT"))
	cfg.MinioAccessKey = strings.TrimSpace(os.Getenv("MINIO_ACCESS_KEY"))
	cfg.MinioSecretKey = strings.TrimSpace(os.Getenv("MINIO_SECRET_KEY"))
	cfg.MinioBucket = strings.TrimSpace(os.Getenv("MINIO_BUCKET_NAME"))
	cfg.MinioUseSSL = parseBoolEnv("MINIO_USE_SSL", defaultMinioUseSSL)

	cfg.GCSBucket = strings.TrimSpace(os.Getenv("GCS_BUCKET_NAME"))

	cfg.CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", defaultCORSOrigins))

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Blob returns the settings for blobstore.New.
func (c *Config) Blob() blobstore.Config {
	publicURL := c.BlobPublicURL
	if c.BlobBackend == blobstore.BackendLocal {
		publicURL = c.UploadURLBase
	}
	return blobstore.Config{
		Backend:        c.BlobBackend,
		PublicURL:      publicURL,
		LocalDir:       c.UploadDir,
		MinioEndpoint:  c.MinioEndpoint,
		MinioAccessKey: c.MinioAccessKey,
		MinioSecretKey: c.MinioSecretKey,
		MinioBucket:    c.MinioBucket,
		MinioUseSSL:    c.MinioUseSSL,
		GCSBucket:      c.GCSBucket,
	}
}

func (c *Config) IsProd() bool {
	return isProdLike(c.AppEnv)
}

func validateConfig(cfg *Config) error {
	if cfg.AdminTokenTTL <= 0 {
		return fmt.Errorf("ADMIN_TOKEN_TTL must be > 0")
	}
	if cfg.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.LogMode != "dev" && cfg.LogMode != "prod" {
		return fmt.Errorf("LOG_MODE must be one of: dev, prod")
	}

	switch cfg.BlobBackend {
	case blobstore.BackendLocal:
		if cfg.UploadDir == "" {
			return fmt.Errorf("UPLOAD_DIR must not be empty")
		}
	case blobstore.BackendMinio:
		if cfg.MinioEndpoint == "" || cfg.MinioBucket == "" {
			return fmt.Errorf("MINIO_ENDPOINT and MINIO_BUCKET_NAME are required when BLOB_BACKEND=minio")
		}
		if cfg.MinioAccessKey == "" || cfg.MinioSecretKey == "" {
			return fmt.Errorf("MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required when BLOB_BACKEND=minio")
		}
	case blobstore.BackendGCS:
		if cfg.GCSBucket == "" {
			return fmt.Errorf("GCS_BUCKET_NAME is required when BLOB_BACKEND=gcs")
		}
	default:
		return fmt.Errorf("BLOB_BACKEND must be one of: local, minio, gcs")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.AdminPasswordHash == "" {
			return fmt.Errorf("in prod/release ADMIN_PASSWORD_HASH must be set")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
