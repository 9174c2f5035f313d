// internal/common/config/config.go
package config

import (
	"fmt"
	"net/url"
)

// Config is the main application configuration struct.
type Config struct {
	App          AppConfig                `mapstructure:"app"`
	HTTP         HTTPConfig               `mapstructure:"http"`
	Database     DatabaseConfig           `mapstructure:"database"`
	Catalog      CatalogConfig            `mapstructure:"catalog"`
	Availability AvailabilityConfig       `mapstructure:"availability"`
	Chat         ChatConfig               `mapstructure:"chat"`
	Handlers     map[string]HandlerConfig `mapstructure:"handlers"`
	Logging      LoggingConfig            `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type HTTPConfig struct {
	Address           string `mapstructure:"address"`
	ReadHeaderTimeout int    `mapstructure:"read_header_timeout"` // milliseconds
	ShutdownTimeout   int    `mapstructure:"shutdown_timeout"`    // milliseconds
	BodyLimit         string `mapstructure:"body_limit"`
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
	RunMigrations  bool   `mapstructure:"run_migrations"`
}

// GetDSN returns the lib/pq keyword connection string.
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// GetURL returns the URL form required by the migration runner.
func (p PostgresConfig) GetURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     fmt.Sprintf("%s:%d", p.Host, p.Port),
		Path:     "/" + p.Database,
		RawQuery: "sslmode=" + url.QueryEscape(p.SSLMode),
	}
	return u.String()
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type CatalogConfig struct {
	CacheTTL int `mapstructure:"cache_ttl"` // milliseconds, 0 disables the room cache
}

type AvailabilityConfig struct {
	RefreshInterval int `mapstructure:"refresh_interval"` // milliseconds
}

type ChatConfig struct {
	Format       string      `mapstructure:"format"` // html, markdown or text
	RoomLinkBase string      `mapstructure:"room_link_base"`
	Hotel        HotelConfig `mapstructure:"hotel"`
}

// HotelConfig holds the facts quoted by the canned chat replies.
type HotelConfig struct {
	Name      string   `mapstructure:"name"`
	Email     string   `mapstructure:"email"`
	Phone     string   `mapstructure:"phone"`
	MapURL    string   `mapstructure:"map_url"`
	MapLabel  string   `mapstructure:"map_label"`
	EventsURL string   `mapstructure:"events_url"`
	Amenities []string `mapstructure:"amenities"`
	Distances []string `mapstructure:"distances"`
}

type HandlerConfig struct {
	Timeout int `mapstructure:"timeout"` // milliseconds
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
