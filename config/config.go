package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
//
//nolint:govet // Field alignment optimization would reduce readability
type Config struct {
	Server        ServerConfig
	Contact       ContactConfig
	Provider      ProviderConfig
	ReCAPTCHA     ReCAPTCHAConfig
	Content       ContentConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
	Profiling     ProfilingConfig
}

type ServerConfig struct {
	Port           string
	GinMode        string
	AppEnv         string
	AllowedOrigins []string
}

type ContactConfig struct {
	SubjectPrefix       string
	FromName            string
	MaxBodyBytes        int64
	SubmittedTriggerURL string
}

// ProviderConfig describes the email relay. AccessKey is a server-held
// secret and must never be sent to browsers.
type ProviderConfig struct {
	URL            string
	AccessKey      string
	TimeoutSeconds int // 0 keeps the transport default
	BreakerEnabled bool
}

type ReCAPTCHAConfig struct {
	SecretKey string
}

type ContentConfig struct {
	File string // optional YAML override of the embedded profile
}

type LoggingConfig struct {
	Level string
	Dir   string
}

type ObservabilityConfig struct {
	ExporterEndpoint  string
	ExporterInsecure  bool
	SampleRatio       float64
	ServiceName       string
	ServiceNamespace  string
	ServiceVersion    string
	ServiceInstanceID string
}

type ProfilingConfig struct {
	Enabled               bool
	Endpoint              string
	AppName               string
	SampleTypes           string
	UploadIntervalSeconds int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("ALLOWED_CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("WEB3FORMS_URL", "https://api.web3forms.com/submit")
	v.SetDefault("PROVIDER_TIMEOUT_SECONDS", 0)
	v.SetDefault("PROVIDER_BREAKER_ENABLED", true)
	v.SetDefault("CONTACT_SUBJECT_PREFIX", "New message from Portfolio Contact")
	v.SetDefault("CONTACT_FROM_NAME", "Portfolio Contact Form")
	v.SetDefault("CONTACT_MAX_BODY_BYTES", 64*1024)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "")
	v.SetDefault("O11Y_EXPORTER_ENDPOINT", "")
	v.SetDefault("O11Y_EXPORTER_INSECURE", true)
	v.SetDefault("O11Y_TRACE_SAMPLE_RATIO", 1.0)
	v.SetDefault("O11Y_BE_SERVICE_NAME", "portfolio-api")
	v.SetDefault("O11Y_SERVICE_NAMESPACE", "portfolio")
	v.SetDefault("O11Y_BE_SERVICE_VERSION", "1.0.0")
	v.SetDefault("O11Y_PROFILING_ENABLED", false)
	v.SetDefault("O11Y_PROFILING_APP_NAME", "portfolio-api")
	v.SetDefault("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS", 15)

	// Automatically read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			GinMode:        v.GetString("GIN_MODE"),
			AppEnv:         v.GetString("APP_ENV"),
			AllowedOrigins: splitList(v.GetString("ALLOWED_CORS_ORIGINS")),
		},
		Contact: ContactConfig{
			SubjectPrefix:       v.GetString("CONTACT_SUBJECT_PREFIX"),
			FromName:            v.GetString("CONTACT_FROM_NAME"),
			MaxBodyBytes:        v.GetInt64("CONTACT_MAX_BODY_BYTES"),
			SubmittedTriggerURL: v.GetString("CONTACT_SUBMITTED_TRIGGER_URL"),
		},
		Provider: ProviderConfig{
			URL:            v.GetString("WEB3FORMS_URL"),
			AccessKey:      v.GetString("WEB3FORMS_ACCESS_KEY"),
			TimeoutSeconds: v.GetInt("PROVIDER_TIMEOUT_SECONDS"),
			BreakerEnabled: v.GetBool("PROVIDER_BREAKER_ENABLED"),
		},
		ReCAPTCHA: ReCAPTCHAConfig{
			SecretKey: v.GetString("RECAPTCHA_SECRET_KEY"),
		},
		Content: ContentConfig{
			File: v.GetString("CONTENT_FILE"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		Observability: ObservabilityConfig{
			ExporterEndpoint:  v.GetString("O11Y_EXPORTER_ENDPOINT"),
			ExporterInsecure:  v.GetBool("O11Y_EXPORTER_INSECURE"),
			SampleRatio:       v.GetFloat64("O11Y_TRACE_SAMPLE_RATIO"),
			ServiceName:       v.GetString("O11Y_BE_SERVICE_NAME"),
			ServiceNamespace:  v.GetString("O11Y_SERVICE_NAMESPACE"),
			ServiceVersion:    v.GetString("O11Y_BE_SERVICE_VERSION"),
			ServiceInstanceID: v.GetString("SERVICE_INSTANCE_ID"),
		},
		Profiling: ProfilingConfig{
			Enabled:               v.GetBool("O11Y_PROFILING_ENABLED"),
			Endpoint:              v.GetString("O11Y_PROFILING_ENDPOINT"),
			AppName:               v.GetString("O11Y_PROFILING_APP_NAME"),
			SampleTypes:           v.GetString("O11Y_PROFILING_SAMPLE_TYPES"),
			UploadIntervalSeconds: v.GetInt("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS"),
		},
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// splitList parses a comma-separated list, dropping blanks
func splitList(raw string) []string {
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Validate checks if required configuration values are set.
// A missing WEB3FORMS_ACCESS_KEY is not an error here: the provider rejects
// the relay and that surfaces as a relay failure.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if len(c.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_CORS_ORIGINS is required")
	}

	if c.Provider.URL == "" {
		return fmt.Errorf("WEB3FORMS_URL is required")
	}
	if u, err := url.Parse(c.Provider.URL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("WEB3FORMS_URL must be an absolute URL")
	}
	if c.Provider.TimeoutSeconds < 0 {
		return fmt.Errorf("PROVIDER_TIMEOUT_SECONDS must not be negative")
	}

	if c.Contact.MaxBodyBytes <= 0 {
		return fmt.Errorf("CONTACT_MAX_BODY_BYTES must be positive")
	}

	if c.Observability.SampleRatio < 0 || c.Observability.SampleRatio > 1 {
		return fmt.Errorf("O11Y_TRACE_SAMPLE_RATIO must be between 0 and 1")
	}

	if c.Profiling.Enabled && c.Profiling.Endpoint == "" {
		return fmt.Errorf("O11Y_PROFILING_ENDPOINT is required when profiling is enabled")
	}

	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.GinMode == "debug"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.AppEnv == "production"
}
