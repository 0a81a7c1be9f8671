package config

import (
	"fmt"
	"net/url"

	"github.com/BharAnu2109/Cricket/internal/logger"
)

// AppConfig identifies the running service.
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env"`
}

// PostgresConfig carries connection and pool tuning parameters.
// Durations are in seconds.
type PostgresConfig struct {
	Host              string `mapstructure:"host"`
	Port              int    `mapstructure:"port"`
	User              string `mapstructure:"user"`
	Password          string `mapstructure:"password"`
	DBName            string `mapstructure:"dbname"`
	SSLMode           string `mapstructure:"sslmode"`
	MaxConns          int32  `mapstructure:"max_conns"`
	MinConns          int32  `mapstructure:"min_conns"`
	MaxConnLifetime   int    `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime   int    `mapstructure:"max_conn_idle_time"`
	HealthCheckPeriod int    `mapstructure:"health_check_period"`
}

// DSN assembles the Postgres connection string, escaping credentials
// through url.URL.
func (p PostgresConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", p.Host, p.Port),
		Path:   p.DBName,
	}
	if p.User != "" || p.Password != "" {
		u.User = url.UserPassword(p.User, p.Password)
	}
	q := u.Query()
	if p.SSLMode != "" {
		q.Set("sslmode", p.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// ServerConfig tunes the HTTP listener. Timeouts are in seconds.
type ServerConfig struct {
	Port            int `mapstructure:"port"`
	ReadTimeout     int `mapstructure:"read_timeout"`
	WriteTimeout    int `mapstructure:"write_timeout"`
	ShutdownTimeout int `mapstructure:"shutdown_timeout"`
}

// GatewayConfig maps each downstream resource family to its backend base
// URL. ProxyTimeout bounds a single proxied round trip, in seconds.
type GatewayConfig struct {
	Port         int    `mapstructure:"port"`
	Players      string `mapstructure:"players"`
	Teams        string `mapstructure:"teams"`
	Matches      string `mapstructure:"matches"`
	Statistics   string `mapstructure:"statistics"`
	ProxyTimeout int    `mapstructure:"proxy_timeout"`
}

type Config struct {
	App      AppConfig           `mapstructure:"app"`
	Logger   logger.LoggerConfig `mapstructure:"logger"`
	Postgres PostgresConfig      `mapstructure:"postgres"`
	Server   ServerConfig        `mapstructure:"server"`
	Gateway  GatewayConfig       `mapstructure:"gateway"`
}
