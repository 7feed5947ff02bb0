package domain

import "time"

// Download statuses as stored in the downloads table.
const (
	StatusDownloading = "downloading"
	StatusDone        = "done"
	StatusFailed      = "failed"
)

// DownloadRecord is one row of the per-chat download ledger.
type DownloadRecord struct {
	ID        string
	ChatID    int64
	URL       string
	Platform  string
	Title     string
	Quality   Quality
	SizeBytes int64
	Status    string
	Error     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Stats are aggregate ledger counters shown to admins.
type Stats struct {
	Total      int64
	Done       int64
	Failed     int64
	TotalBytes int64
	Chats      int64
}
