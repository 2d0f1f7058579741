package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultAccessTokenTTL      = "15m"
	defaultRefreshTokenTTL     = "240h"
	defaultCookieSecure        = "true"
	defaultCookieSameSite      = "Lax"
	defaultCookiePath          = "/"
	defaultTempDir             = "./public/temp"
	defaultAccessTokenSecret   = "change-me-access-secret"
	defaultRefreshTokenSecret  = "change-me-refresh-secret"
	defaultObjectStoreEndpoint = "localhost:9000"
	defaultObjectStoreBucket   = "vidtube-media"
)

// Config carries everything the process reads from the environment. Signing
// secrets and object-store credentials are injected from here; nothing else
// in the codebase touches os.Getenv.
type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string

	AccessTokenSecret  string
	AccessTokenTTL     time.Duration
	RefreshTokenSecret string
	RefreshTokenTTL    time.Duration

	CookieSecure   bool
	CookieSameSite string
	CookiePath     string

	// TempDir is where the request layer stages multipart uploads before
	// the media pipeline moves them to the object store.
	TempDir string

	ObjectStoreEndpoint  string
	ObjectStoreAccessKey string
	ObjectStoreSecretKey string
	ObjectStoreBucket    string
	ObjectStoreUseSSL    bool
	// MediaBaseURL is the public prefix for uploaded objects. Empty means
	// derive from the endpoint.
	MediaBaseURL string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", "8080"))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", "vidtube.db"))

	cfg.AccessTokenSecret = strings.TrimSpace(getEnv("ACCESS_TOKEN_SECRET", defaultAccessTokenSecret))
	cfg.RefreshTokenSecret = strings.TrimSpace(getEnv("REFRESH_TOKEN_SECRET", defaultRefreshTokenSecret))

	var err error
	cfg.AccessTokenTTL, err = parseDurationEnv("ACCESS_TOKEN_TTL", defaultAccessTokenTTL)
	if err != nil {
		return nil, err
	}
	cfg.RefreshTokenTTL, err = parseDurationEnv("REFRESH_TOKEN_TTL", defaultRefreshTokenTTL)
	if err != nil {
		return nil, err
	}

	cfg.CookieSecure = parseBoolEnv("COOKIE_SECURE", defaultCookieSecure)
	cfg.CookieSameSite = strings.TrimSpace(getEnv("COOKIE_SAMESITE", defaultCookieSameSite))
	cfg.CookiePath = strings.TrimSpace(getEnv("COOKIE_PATH", defaultCookiePath))

	cfg.TempDir = strings.TrimSpace(getEnv("TEMP_DIR", defaultTempDir))

	cfg.ObjectStoreEndpoint = strings.TrimSpace(getEnv("OBJECT_STORE_ENDPOINT", defaultObjectStoreEndpoint))
	cfg.ObjectStoreAccessKey = strings.TrimSpace(os.Getenv("OBJECT_STORE_ACCESS_KEY"))
	cfg.ObjectStoreSecretKey = strings.TrimSpace(os.Getenv("OBJECT_STORE_SECRET_KEY"))
	cfg.ObjectStoreBucket = strings.TrimSpace(getEnv("OBJECT_STORE_BUCKET", defaultObjectStoreBucket))
	cfg.ObjectStoreUseSSL = parseBoolEnv("OBJECT_STORE_USE_SSL", "false")
	cfg.MediaBaseURL = strings.TrimSpace(os.Getenv("MEDIA_BASE_URL"))

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.AccessTokenTTL <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_TTL must be > 0")
	}
	if cfg.RefreshTokenTTL <= 0 {
		return fmt.Errorf("REFRESH_TOKEN_TTL must be > 0")
	}
	if cfg.RefreshTokenTTL <= cfg.AccessTokenTTL {
		return fmt.Errorf("REFRESH_TOKEN_TTL must exceed ACCESS_TOKEN_TTL")
	}
	if cfg.CookiePath == "" {
		return fmt.Errorf("COOKIE_PATH must not be empty")
	}
	sameSite := strings.ToLower(cfg.CookieSameSite)
	if sameSite != "lax" && sameSite != "none" && sameSite != "strict" {
		return fmt.Errorf("COOKIE_SAMESITE must be one of: Lax, None, Strict")
	}
	if sameSite == "none" && !cfg.CookieSecure {
		return fmt.Errorf("COOKIE_SECURE must be true when COOKIE_SAMESITE=None")
	}
	if cfg.TempDir == "" {
		return fmt.Errorf("TEMP_DIR must not be empty")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.AccessTokenSecret, defaultAccessTokenSecret) {
			return fmt.Errorf("in prod/release ACCESS_TOKEN_SECRET must be set and not default")
		}
		if isEmptyOrDefault(cfg.RefreshTokenSecret, defaultRefreshTokenSecret) {
			return fmt.Errorf("in prod/release REFRESH_TOKEN_SECRET must be set and not default")
		}
		if cfg.AccessTokenSecret == cfg.RefreshTokenSecret {
			return fmt.Errorf("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET must differ")
		}
		if !cfg.CookieSecure {
			return fmt.Errorf("in prod/release COOKIE_SECURE must be true")
		}
		if cfg.ObjectStoreAccessKey == "" || cfg.ObjectStoreSecretKey == "" {
			return fmt.Errorf("in prod/release object store credentials must be set")
		}
	}

	return nil
}

func isProdLike(env string) bool {
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

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
