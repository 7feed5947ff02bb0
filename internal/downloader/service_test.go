package downloader

import (
	"testing"

	"github.com/lrstanley/go-ytdlp"
)

func TestHardenMutatesCommandInPlace(t *testing.T) {
	dl := ytdlp.New()
	got := harden(dl)
	if got == nil {
		t.Fatal("harden returned nil")
	}
	// Builder methods mutate the receiver, so the hardened options must
	// land on the command that actually runs
	if got != dl {
		t.Error("harden should return the same command it was given")
	}
}

func TestHardeningSettings(t *testing.T) {
	if downloadRetries != "3" {
		t.Errorf("Expected 3 retries, got %q", downloadRetries)
	}
	if concurrentFragments != 4 {
		t.Errorf("Expected 4 concurrent fragments, got %d", concurrentFragments)
	}
}
