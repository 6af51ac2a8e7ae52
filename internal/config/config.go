package config

import (
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env          string
	HTTPPort     string
	RateRPS      int
	LogFile      string
	QueryTimeout time.Duration
	DB           DBConfig
}

// DBConfig holds what the connection provider needs to reach the store.
type DBConfig struct {
	URL          string // overrides the discrete fields when set
	Host         string
	Port         int
	Name         string
	User         string
	Password     string
	SSLMode      string
	MaxConns     int
	MaxIdleConns int
}

func Load() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "dev")
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("RATE_RPS", 100)
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("QUERY_TIMEOUT", 5*time.Second)

	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_NAME", "postgres")
	v.SetDefault("DB_USER", "default")
	v.SetDefault("DB_PASSWORD", "password")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 2)

	return Config{
		Env:          v.GetString("APP_ENV"),
		HTTPPort:     v.GetString("HTTP_PORT"),
		RateRPS:      v.GetInt("RATE_RPS"),
		LogFile:      v.GetString("LOG_FILE"),
		QueryTimeout: v.GetDuration("QUERY_TIMEOUT"),
		DB: DBConfig{
			URL:          v.GetString("DATABASE_URL"),
			Host:         v.GetString("DB_HOST"),
			Port:         v.GetInt("DB_PORT"),
			Name:         v.GetString("DB_NAME"),
			User:         v.GetString("DB_USER"),
			Password:     v.GetString("DB_PASSWORD"),
			SSLMode:      v.GetString("DB_SSLMODE"),
			MaxConns:     v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
		},
	}
}

// DSN renders a postgres:// connection string, escaping credentials.
func (c DBConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:   "/" + c.Name,
	}
	if c.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{c.SSLMode}}.Encode()
	}
	return u.String()
}
