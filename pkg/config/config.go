package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env vars
// and optionally a file).
type Config struct {
	App   AppConfig
	Store StoreConfig
	DB    DBConfig
	HTTP  HTTPConfig
	SMTP  SMTPConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// Store drivers.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// StoreConfig selects the invoice record store backend. "postgres" talks to
// the hosted database; "memory" is the local fallback store for dev and
// offline use (same contract, nothing survives a restart).
type StoreConfig struct {
	Driver string
}

// DBConfig PostgreSQL settings. If DatabaseURL is non-empty it is used as the
// full connection string (e.g. the DATABASE_URL handed out by Supabase).
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString returns the DSN to use: DatabaseURL when set, otherwise
// one built from the individual fields.
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN builds the PostgreSQL connection string, URL-encoding the credentials
// so special characters in the password survive.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// HTTPConfig HTTP server settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SMTPConfig outbound mail settings. DisableTLSVerify skips certificate
// verification on the SMTP connection; insecure, dev/troubleshooting only.
type SMTPConfig struct {
	Host             string
	Port             int
	User             string
	Password         string
	From             string
	DisableTLSVerify bool
}

// Load reads configuration from environment variables and optionally from a
// .env / config file. Env vars win. Expected names: APP_ENV, STORE_DRIVER,
// DB_HOST, SMTP_HOST, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optional config file (.env or config.env); missing files are fine.
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "invoicing-api"),
		},
		Store: StoreConfig{
			Driver: getString(v, "STORE_DRIVER", StorePostgres),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "invoicing"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		SMTP: SMTPConfig{
			Host:             getString(v, "SMTP_HOST", "smtp.gmail.com"),
			Port:             getInt(v, "SMTP_PORT", 587),
			User:             getString(v, "SMTP_USER", ""),
			Password:         getString(v, "SMTP_PASS", ""),
			From:             getString(v, "SMTP_FROM", ""),
			DisableTLSVerify: getBool(v, "DISABLE_TLS_VERIFY", false),
		},
	}
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.User
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
