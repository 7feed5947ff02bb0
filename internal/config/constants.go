package config

import "time"

const (
	// Telegram limits
	MaxTelegramMessageLen = 4096

	// Download timeout per URL
	DownloadTimeout = 30 * time.Minute

	// Minimum delay between status message edits
	StatusEditThrottle = 3 * time.Second

	// Rate limits (messages per minute per chat)
	RateLimitPerMinute = 20

	// Cleanup intervals
	StaleCleanupInterval = 60 * time.Second
	StaleDownloadAge     = 45 * time.Minute
	RateLimitRetention   = 10 * time.Minute

	// History page size for /history
	HistoryPageSize = 10

	// Browser user agent sent to probed pages and yt-dlp targets
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)
