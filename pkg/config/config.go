package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config carries every runtime setting of the console client.
type Config struct {
	Env string

	API     APIConfig
	Query   QueryConfig
	Upload  UploadConfig
	Log     LogConfig
	Metrics MetricsConfig
}

// APIConfig points the client at the backend REST gateway.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// QueryConfig tunes list fetching defaults.
type QueryConfig struct {
	PageSize int
	Debounce time.Duration
}

// UploadConfig bounds document uploads.
type UploadConfig struct {
	MaxFileSizeBytes int64
	DefaultFolder    string
}

// LogConfig controls structured logging output.
type LogConfig struct {
	Level  string
	Format string
}

// MetricsConfig toggles outbound request instrumentation.
type MetricsConfig struct {
	Enabled bool
}

// Load reads configuration from the environment, with .env support for
// local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.API = APIConfig{
		BaseURL: strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
		Timeout: parseDuration(v.GetString("API_TIMEOUT"), 30*time.Second),
	}

	cfg.Query = QueryConfig{
		PageSize: v.GetInt("QUERY_PAGE_SIZE"),
		Debounce: parseDuration(v.GetString("QUERY_DEBOUNCE"), 50*time.Millisecond),
	}

	cfg.Upload = UploadConfig{
		MaxFileSizeBytes: v.GetInt64("UPLOAD_MAX_FILE_SIZE"),
		DefaultFolder:    v.GetString("UPLOAD_DEFAULT_FOLDER"),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Metrics = MetricsConfig{Enabled: v.GetBool("ENABLE_METRICS")}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("API_BASE_URL", "http://localhost:8080/api")
	v.SetDefault("API_TIMEOUT", "30s")
	v.SetDefault("QUERY_PAGE_SIZE", 20)
	v.SetDefault("QUERY_DEBOUNCE", "50ms")
	v.SetDefault("UPLOAD_MAX_FILE_SIZE", int64(10*1024*1024))
	v.SetDefault("UPLOAD_DEFAULT_FOLDER", "general")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("ENABLE_METRICS", true)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
