// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Loads WordPress, server, logging and blog display settings and validates them

package config

import (
	"errors"
	"os"
	"strings"
	"time"

	coreerrors "wpblog-api/core/errors"
	"wpblog-api/pkg/utils/parse"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// WordPress contains the remote content API settings
	WordPress WordPressConfig

	// Log contains logger configuration
	Log LogConfig

	// Blog contains listing sizes and text settings
	Blog BlogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `validate:"required,numeric"`

	// RateLimit is the number of requests allowed per client in RateWindow
	RateLimit int `validate:"gte=0"`

	// RateWindow is the rate limiting window
	RateWindow time.Duration `validate:"gte=0"`
}

// WordPressConfig holds the remote API settings
type WordPressConfig struct {
	// APIURL is the REST base, e.g. https://blog.example.com/wp-json/wp/v2
	APIURL string `validate:"required,url"`

	// Timeout bounds each request to the API; 0 disables the client timeout
	Timeout time.Duration `validate:"gte=0"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is the minimum level logged
	Level string `validate:"oneof=debug info warn warning error"`

	// Format is "text" or "json"
	Format string `validate:"oneof=text json"`

	// File is an optional path that also receives logs, rotated by size
	File string
}

// BlogConfig holds settings that shape listings and derived text
type BlogConfig struct {
	PostsPerPage      int `validate:"gte=1,lte=100"`
	HomePosts         int `validate:"gte=1,lte=100"`
	TopCategories     int `validate:"gte=0"`
	RelatedPostsCount int `validate:"gte=0,lte=100"`
	WordsPerMinute    int `validate:"gte=1"`
	ExcerptLength     int `validate:"gte=1"`
}

// LoadFromEnv loads configuration from environment variables. A .env file in
// the working directory is read first when present; real environment wins.
func LoadFromEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, coreerrors.WrapError(err, "failed to read .env file")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:       getEnvOrDefault("PORT", "8000"),
			RateLimit:  getEnvAsIntOrDefault("RATE_LIMIT", 100),
			RateWindow: getEnvAsDurationOrDefault("RATE_WINDOW", time.Minute),
		},
		WordPress: WordPressConfig{
			APIURL:  getEnvOrDefault("WORDPRESS_API_URL", os.Getenv("NEXT_PUBLIC_WORDPRESS_API_URL")),
			Timeout: getEnvAsDurationOrDefault("HTTP_TIMEOUT", 30*time.Second),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnvOrDefault("LOG_FORMAT", "text")),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
		Blog: BlogConfig{
			PostsPerPage:      getEnvAsIntOrDefault("POSTS_PER_PAGE", 9),
			HomePosts:         getEnvAsIntOrDefault("HOME_POSTS", 6),
			TopCategories:     getEnvAsIntOrDefault("TOP_CATEGORIES", 6),
			RelatedPostsCount: getEnvAsIntOrDefault("RELATED_POSTS", 3),
			WordsPerMinute:    getEnvAsIntOrDefault("WORDS_PER_MINUTE", 200),
			ExcerptLength:     getEnvAsIntOrDefault("EXCERPT_LENGTH", 120),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value, ok := parse.Int(os.Getenv(key)); ok {
		return value
	}
	return defaultValue
}

// getEnvAsDurationOrDefault accepts Go durations ("30s") or whole seconds ("30")
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	if seconds, ok := parse.Int(value); ok {
		return time.Duration(seconds) * time.Second
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	return defaultValue
}

// envNames maps struct fields to the variables that set them, for error messages
var envNames = map[string]string{
	"Config.Server.Port":            "PORT",
	"Config.Server.RateLimit":       "RATE_LIMIT",
	"Config.Server.RateWindow":      "RATE_WINDOW",
	"Config.WordPress.APIURL":       "WORDPRESS_API_URL",
	"Config.WordPress.Timeout":      "HTTP_TIMEOUT",
	"Config.Log.Level":              "LOG_LEVEL",
	"Config.Log.Format":             "LOG_FORMAT",
	"Config.Blog.PostsPerPage":      "POSTS_PER_PAGE",
	"Config.Blog.HomePosts":         "HOME_POSTS",
	"Config.Blog.TopCategories":     "TOP_CATEGORIES",
	"Config.Blog.RelatedPostsCount": "RELATED_POSTS",
	"Config.Blog.WordsPerMinute":    "WORDS_PER_MINUTE",
	"Config.Blog.ExcerptLength":     "EXCERPT_LENGTH",
}

// Validate checks if the configuration is valid. The first failing setting is
// reported as a ConfigurationError wrapping a ValidationError.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	setting, ok := envNames[fe.Namespace()]
	if !ok {
		setting = fe.Namespace()
	}

	return &coreerrors.ConfigurationError{
		Setting: setting,
		Cause: &coreerrors.ValidationError{
			Field:   fe.Field(),
			Message: validationMessage(fe),
		},
	}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is not defined"
	case "url":
		return "must be an absolute URL"
	case "numeric":
		return "must be a number"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "failed '" + fe.Tag() + "' check"
	}
}
