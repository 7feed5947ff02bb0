package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// Core
	BotToken    string `env:"BOT_TOKEN,required,notEmpty"`
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// Downloads
	MaxTGBytes             int64  `env:"MAX_TG_BYTES" envDefault:"1900000000"`
	NoFFmpeg               bool   `env:"NO_FFMPEG" envDefault:"false"`
	FFmpegPath             string `env:"FFMPEG_PATH" envDefault:"ffmpeg"`
	FFprobePath            string `env:"FFPROBE_PATH" envDefault:"ffprobe"`
	DownloadDir            string `env:"DOWNLOAD_DIR"`
	MaxConcurrentDownloads int    `env:"MAX_CONCURRENT_DOWNLOADS" envDefault:"3"`

	// Instagram session cookie, enables private/age-gated reels
	IGSessionID string `env:"IG_SESSIONID"`

	// Admin
	AdminIDs []int64 `env:"ADMIN_IDS" envSeparator:","`

	// Bot behavior
	DropPendingUpdates bool `env:"BOT_DROP_PENDING_UPDATES" envDefault:"true"`
}

// Load reads an optional .env file from the working directory and parses
// the process environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsAdmin(telegramID int64) bool {
	for _, id := range c.AdminIDs {
		if id == telegramID {
			return true
		}
	}
	return false
}
