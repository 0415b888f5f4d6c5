// Package config loads application settings from environment variables with
// the GSTPRO_ prefix.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	DB      DBConfig
	Log     LogConfig
	Invoice InvoiceConfig
	PDF     PDFConfig
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// InvoiceConfig holds invoice generation settings. DefaultStateCode is the
// place-of-supply fallback used when a state name matches nothing in the
// statutory table.
type InvoiceConfig struct {
	DefaultStateCode string `mapstructure:"default_state_code"`
	Currency         string `mapstructure:"currency"`
}

// PDFConfig holds PDF rendering settings. EnginePath points at the
// wkhtmltopdf binary; empty disables the HTML rendering tier.
type PDFConfig struct {
	EnginePath  string `mapstructure:"engine_path"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
	PageSize    string `mapstructure:"page_size"`
}

// Load reads configuration from environment variables with the GSTPRO_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GSTPRO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "gstpro")
	v.SetDefault("db.password", "gstpro_secret")
	v.SetDefault("db.name", "gstpro_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Invoice defaults
	v.SetDefault("invoice.default_state_code", "97")
	v.SetDefault("invoice.currency", "INR")

	// PDF defaults
	v.SetDefault("pdf.engine_path", "")
	v.SetDefault("pdf.timeout_secs", 30)
	v.SetDefault("pdf.page_size", "A4")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"db.host":                    "GSTPRO_DB_HOST",
		"db.port":                    "GSTPRO_DB_PORT",
		"db.user":                    "GSTPRO_DB_USER",
		"db.password":                "GSTPRO_DB_PASSWORD",
		"db.name":                    "GSTPRO_DB_NAME",
		"db.sslmode":                 "GSTPRO_DB_SSLMODE",
		"db.max_open":                "GSTPRO_DB_MAX_OPEN",
		"db.max_idle":                "GSTPRO_DB_MAX_IDLE",
		"log.level":                  "GSTPRO_LOG_LEVEL",
		"log.format":                 "GSTPRO_LOG_FORMAT",
		"invoice.default_state_code": "GSTPRO_INVOICE_DEFAULT_STATE_CODE",
		"invoice.currency":           "GSTPRO_INVOICE_CURRENCY",
		"pdf.engine_path":            "GSTPRO_PDF_ENGINE_PATH",
		"pdf.timeout_secs":           "GSTPRO_PDF_TIMEOUT_SECS",
		"pdf.page_size":              "GSTPRO_PDF_PAGE_SIZE",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	cfg := &Config{}

	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	cfg.Invoice = InvoiceConfig{
		DefaultStateCode: v.GetString("invoice.default_state_code"),
		Currency:         v.GetString("invoice.currency"),
	}

	cfg.PDF = PDFConfig{
		EnginePath:  v.GetString("pdf.engine_path"),
		TimeoutSecs: v.GetInt("pdf.timeout_secs"),
		PageSize:    v.GetString("pdf.page_size"),
	}

	return cfg, nil
}
