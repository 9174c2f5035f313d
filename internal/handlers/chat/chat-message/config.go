package chatmessage

import (
	"time"

	"hotel-concierge/internal/common/config"
)

type Config struct {
	Timeout      time.Duration
	Format       string
	RoomLinkBase string
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		Timeout:      config.GetDuration(config.GetHandlerConfig(cfg, Endpoint).Timeout),
		Format:       cfg.Chat.Format,
		RoomLinkBase: cfg.Chat.RoomLinkBase,
	}
}
