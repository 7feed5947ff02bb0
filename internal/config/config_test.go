package config

import "testing"

func TestLoadRequiresBotToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/clipfetch")

	if _, err := Load(); err == nil {
		t.Fatal("Load should fail without BOT_TOKEN")
	}
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load should fail without DATABASE_URL")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("DATABASE_URL", "postgres://localhost/clipfetch")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.MaxTGBytes != 1900000000 {
		t.Errorf("Expected default MaxTGBytes 1900000000, got %d", cfg.MaxTGBytes)
	}
	if cfg.NoFFmpeg {
		t.Error("NoFFmpeg should default to false")
	}
	if cfg.FFmpegPath != "ffmpeg" {
		t.Errorf("Expected default FFmpegPath ffmpeg, got %s", cfg.FFmpegPath)
	}
	if cfg.MaxConcurrentDownloads != 3 {
		t.Errorf("Expected default MaxConcurrentDownloads 3, got %d", cfg.MaxConcurrentDownloads)
	}
	if !cfg.DropPendingUpdates {
		t.Error("DropPendingUpdates should default to true")
	}
}

func TestIsAdmin(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("DATABASE_URL", "postgres://localhost/clipfetch")
	t.Setenv("ADMIN_IDS", "100,200")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !cfg.IsAdmin(100) {
		t.Error("100 should be admin")
	}
	if cfg.IsAdmin(300) {
		t.Error("300 should not be admin")
	}
}
