// Package config loads the pageshell settings from the environment.
// Command-line flags bound with BindFlags override what the environment set.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// DefaultPerson is the name shown on the contact page.
const DefaultPerson = "Joel"

type Config struct {
	Addr      string
	Person    string
	SiteTitle string
	LogLevel  string
	LogFormat string
	Metrics   bool
}

// Load reads the environment. Port resolution prefers PAGESHELL_ADDR, then PORT, else :8080.
func Load() (Config, error) {
	c := Config{
		Addr:      ":8080",
		Person:    DefaultPerson,
		SiteTitle: "Page Shell",
		LogLevel:  "info",
		LogFormat: "text",
		Metrics:   true,
	}
	if port := os.Getenv("PORT"); port != "" {
		c.Addr = ":" + port
	}
	if addr := os.Getenv("PAGESHELL_ADDR"); addr != "" {
		c.Addr = addr
	}
	if v, ok := os.LookupEnv("PAGESHELL_PERSON"); ok {
		c.Person = v
	}
	if v := os.Getenv("PAGESHELL_TITLE"); v != "" {
		c.SiteTitle = v
	}
	if v := os.Getenv("PAGESHELL_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("PAGESHELL_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv("PAGESHELL_METRICS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c, fmt.Errorf("PAGESHELL_METRICS: %w", err)
		}
		c.Metrics = b
	}
	return c, c.Validate()
}

// BindFlags registers flags defaulting to the loaded values.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Addr, "addr", c.Addr, "HTTP listen address")
	fs.StringVar(&c.Person, "person", c.Person, "name shown on the contact page")
	fs.StringVar(&c.SiteTitle, "title", c.SiteTitle, "site title")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: text or json")
	fs.BoolVar(&c.Metrics, "metrics", c.Metrics, "expose Prometheus metrics on /metrics")
}

func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.Addr == "" {
		return fmt.Errorf("empty listen address")
	}
	return nil
}

func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return l, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}

// Logger builds the process logger.
func (c Config) Logger() *slog.Logger {
	level, _ := c.Level()
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
