package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")

	// HTTP_ADDRESS overrides http.address, and so on.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	v.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = v.MergeInConfig() // optional

	return finish(v)
}

func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return finish(v)
}

func finish(v *viper.Viper) (*Config, error) {
	expandEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		strVal, ok := v.Get(key).(string)
		if !ok {
			continue
		}
		if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
			// Unset variables expand to "" so required fields fail validation.
			expanded := os.ExpandEnv(strVal)
			if expanded != strVal {
				v.Set(key, expanded)
			}
		}
	}
}

func overrideEmptyConfig(cfg *Config) {
	if cfg.Database.Postgres.User == "" {
		if val := os.Getenv("DB_USER"); val != "" {
			cfg.Database.Postgres.User = val
		}
	}
	if cfg.Database.Postgres.Password == "" {
		if val := os.Getenv("DB_PASSWORD"); val != "" {
			cfg.Database.Postgres.Password = val
		}
	}
	if cfg.Database.Redis.Password == "" {
		if val := os.Getenv("REDIS_PASSWORD"); val != "" {
			cfg.Database.Redis.Password = val
		}
	}
	if cfg.HTTP.Address == "" {
		if val := os.Getenv("PORT"); val != "" {
			cfg.HTTP.Address = ":" + val
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "hotel-concierge"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}

	if cfg.HTTP.Address == "" && os.Getenv("PORT") == "" {
		cfg.HTTP.Address = ":8005"
	}
	if cfg.HTTP.ReadHeaderTimeout == 0 {
		cfg.HTTP.ReadHeaderTimeout = 5000
	}
	if cfg.HTTP.ShutdownTimeout == 0 {
		cfg.HTTP.ShutdownTimeout = 30000
	}
	if cfg.HTTP.BodyLimit == "" {
		cfg.HTTP.BodyLimit = "1M"
	}

	if cfg.Database.Postgres.Port == 0 {
		cfg.Database.Postgres.Port = 5432
	}
	if cfg.Database.Postgres.MaxConnections == 0 {
		cfg.Database.Postgres.MaxConnections = 25
	}
	if cfg.Database.Postgres.MaxIdle == 0 {
		cfg.Database.Postgres.MaxIdle = 5
	}
	if cfg.Database.Postgres.SSLMode == "" {
		cfg.Database.Postgres.SSLMode = "disable"
	}

	if cfg.Availability.RefreshInterval == 0 {
		cfg.Availability.RefreshInterval = int((24 * time.Hour).Milliseconds())
	}

	if cfg.Chat.Format == "" {
		cfg.Chat.Format = "html"
	}
	if cfg.Chat.RoomLinkBase == "" {
		cfg.Chat.RoomLinkBase = "http://localhost:8005"
	}
	applyHotelDefaults(&cfg.Chat.Hotel)

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}

	for key, h := range cfg.Handlers {
		if h.Timeout == 0 {
			h.Timeout = 10000
		}
		cfg.Handlers[key] = h
	}
}

func applyHotelDefaults(h *HotelConfig) {
	if h.Name == "" {
		h.Name = "Rambihari Palace"
	}
	if h.Email == "" {
		h.Email = "explore@testrj8.com"
	}
	if h.Phone == "" {
		h.Phone = "9024414017"
	}
	if h.MapURL == "" {
		h.MapURL = "https://www.google.com/maps?q=Ram+Bihari+Palace,+Alwar"
	}
	if h.MapLabel == "" {
		h.MapLabel = "Ram Bihari Palace, Alwar"
	}
	if h.EventsURL == "" {
		h.EventsURL = "rambiharipelece_events"
	}
	if len(h.Amenities) == 0 {
		h.Amenities = []string{"AC", "Geyser", "Free Wifi", "Power Backup", "Pool", "Garden", "Sports Equipment"}
	}
	if len(h.Distances) == 0 {
		h.Distances = []string{"Jaipur:-120", "Gurugram :-125", "Alwar:-10", "CP:- 165", "Mathura:-120", "Nimrana:-60"}
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Database.Postgres.Host == "" {
		return fmt.Errorf("database.postgres.host is required")
	}
	if cfg.Database.Postgres.Database == "" {
		return fmt.Errorf("database.postgres.database is required")
	}
	if cfg.Database.Postgres.User == "" {
		return fmt.Errorf("database.postgres.user is required")
	}

	if cfg.Database.Redis.Enabled && cfg.Database.Redis.Address == "" {
		return fmt.Errorf("database.redis.address is required when redis is enabled")
	}

	switch cfg.Chat.Format {
	case "html", "markdown", "text":
	default:
		return fmt.Errorf("chat.format must be one of html, markdown, text (got %q)", cfg.Chat.Format)
	}

	if cfg.Availability.RefreshInterval < 0 {
		return fmt.Errorf("availability.refresh_interval must not be negative")
	}

	return nil
}

func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}

// GetHandlerConfig returns the per-endpoint settings, falling back to defaults.
func GetHandlerConfig(cfg *Config, name string) HandlerConfig {
	if h, exists := cfg.Handlers[name]; exists {
		return h
	}
	return HandlerConfig{Timeout: 10000}
}
