package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from defaults, dotenv, environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	UploadDir       string
	FrontendDir     string
	GeoBaseURL      string
	GeoTimeout      time.Duration
	ShutdownTimeout time.Duration
	MaxUploadBytes  int64
	TrustedProxies  []string
	CORSOrigins     []string
	LogLevel        slog.Level
}

const (
	defaultRunAddress      = ":8000"
	defaultGeoBaseURL      = "https://ipapi.co"
	defaultGeoTimeout      = 5 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultMaxUploadBytes  = 32 << 20
)

// Load parses configuration relative to the directory of the running executable.
func Load() (*Config, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolve executable: %w", err)
	}
	return load(os.Args[1:], os.LookupEnv, filepath.Dir(exe))
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup, baseDir string) (*Config, error) {
	lookup, err := withDotenv(lookup, baseDir)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", filepath.Join(baseDir, "database.db")),
		UploadDir:       getString(lookup, "UPLOAD_DIR", filepath.Join(baseDir, "selfies")),
		FrontendDir:     getString(lookup, "FRONTEND_DIR", filepath.Join(baseDir, "..", "frontend")),
		GeoBaseURL:      getString(lookup, "GEO_BASE_URL", defaultGeoBaseURL),
		GeoTimeout:      getDuration(lookup, "GEO_TIMEOUT", defaultGeoTimeout),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		MaxUploadBytes:  getInt64(lookup, "MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
	}

	fs := flag.NewFlagSet("krs", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		geoTimeoutStr      = cfg.GeoTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		trustedProxiesStr  = getString(lookup, "TRUSTED_PROXIES", "")
		corsOriginsStr     = getString(lookup, "CORS_ORIGINS", "")
		logLevelStr        = getString(lookup, "LOG_LEVEL", "info")
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "SQLite file path or PostgreSQL URI")
	fs.StringVar(&cfg.UploadDir, "upload-dir", cfg.UploadDir, "Directory for uploaded selfies")
	fs.StringVar(&cfg.FrontendDir, "frontend-dir", cfg.FrontendDir, "Directory with the frontend bundle")
	fs.StringVar(&cfg.GeoBaseURL, "geo-url", cfg.GeoBaseURL, "Geolocation provider base URL")
	fs.StringVar(&geoTimeoutStr, "geo-timeout", geoTimeoutStr, "Geolocation lookup timeout")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.Int64Var(&cfg.MaxUploadBytes, "max-upload", cfg.MaxUploadBytes, "Multipart memory limit in bytes")
	fs.StringVar(&trustedProxiesStr, "trusted-proxies", trustedProxiesStr, "Comma separated trusted proxy CIDRs")
	fs.StringVar(&corsOriginsStr, "cors-origins", corsOriginsStr, "Comma separated allowed CORS origins")
	fs.StringVar(&logLevelStr, "log-level", logLevelStr, "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.GeoTimeout, err = time.ParseDuration(geoTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid geo timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	cfg.TrustedProxies = splitList(trustedProxiesStr)
	cfg.CORSOrigins = splitList(corsOriginsStr)

	if cfg.GeoTimeout <= 0 {
		cfg.GeoTimeout = defaultGeoTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = defaultMaxUploadBytes
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.UploadDir == "" {
		return nil, fmt.Errorf("upload directory must be provided")
	}

	return cfg, nil
}

// withDotenv layers values from ENV_FILE (or baseDir/.env) under the real environment.
func withDotenv(lookup envLookup, baseDir string) (envLookup, error) {
	path, explicit := lookup("ENV_FILE")
	if !explicit || path == "" {
		path = filepath.Join(baseDir, ".env")
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return lookup, nil
		}
		return nil, fmt.Errorf("read env file: %w", err)
	}

	return func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, ok
		}
		v, ok := values[key]
		return v, ok
	}, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt64(lookup envLookup, key string, def int64) int64 {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
