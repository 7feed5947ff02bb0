package downloader

import (
	"strings"
	"testing"

	"github.com/clipfetch/clipfetch/internal/domain"
)

func TestFormatForWithFFmpeg(t *testing.T) {
	f := FormatFor(domain.Quality720, true)
	if !strings.Contains(f, "+ba") {
		t.Errorf("ffmpeg format should request merged audio, got %q", f)
	}
	if !strings.Contains(f, "height<=720") {
		t.Errorf("720 format should cap height at 720, got %q", f)
	}
}

func TestFormatForWithoutFFmpeg(t *testing.T) {
	for _, q := range domain.Qualities {
		f := FormatFor(q, false)
		if strings.Contains(f, "+") {
			t.Errorf("single-file format must not merge streams, got %q for %s", f, q)
		}
		if !strings.Contains(f, "height<="+q.String()) {
			t.Errorf("format for %s should cap height, got %q", q, f)
		}
	}
}

func TestFallbackChainOrder(t *testing.T) {
	chain := FallbackChain(domain.Quality720, true)
	if len(chain) != 4 {
		t.Fatalf("Expected 4 entries in chain, got %d: %v", len(chain), chain)
	}
	if chain[0] != FormatFor(domain.Quality720, true) {
		t.Error("chain should start with the preferred format")
	}
	if chain[len(chain)-1] != "b/best" {
		t.Errorf("chain should end with generic best, got %q", chain[len(chain)-1])
	}
}

func TestFallbackChainNoDuplicates(t *testing.T) {
	for _, ffmpegOK := range []bool{true, false} {
		for _, q := range domain.Qualities {
			chain := FallbackChain(q, ffmpegOK)
			seen := map[string]bool{}
			for _, f := range chain {
				if seen[f] {
					t.Errorf("duplicate format %q in chain for %s ffmpeg=%v", f, q, ffmpegOK)
				}
				seen[f] = true
			}
		}
	}
}

func TestFallbackChain480StartsAt480(t *testing.T) {
	chain := FallbackChain(domain.Quality480, false)
	if chain[0] != FormatFor(domain.Quality480, false) {
		t.Error("chain for 480 should start with the 480 format")
	}
	// 480 preferred equals the first downshift, so chain is shorter
	if len(chain) != 3 {
		t.Errorf("Expected 3 entries for 480 chain, got %d: %v", len(chain), chain)
	}
}
