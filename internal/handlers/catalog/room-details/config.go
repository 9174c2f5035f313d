package roomdetails

import (
	"time"

	"hotel-concierge/internal/common/config"
)

type Config struct {
	Timeout time.Duration
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		Timeout: config.GetDuration(config.GetHandlerConfig(cfg, Endpoint).Timeout),
	}
}
