package downloader

import "github.com/clipfetch/clipfetch/internal/domain"

// yt-dlp format selectors. The merging variants need ffmpeg on the host;
// the single-file variants work without it but top out at whatever single
// stream the platform serves.
const (
	formatFFmpeg720 = "bv*[ext=mp4][height<=720]+ba[ext=m4a]/" +
		"bv*+ba/b[ext=mp4][height<=720]/b/best"
	formatFFmpeg480 = "bv*[ext=mp4][height<=480]+ba[ext=m4a]/" +
		"bv*+ba/b[ext=mp4][height<=480]/b/best"
	formatFFmpeg360 = "bv*[ext=mp4][height<=360]+ba[ext=m4a]/" +
		"bv*+ba/b[ext=mp4][height<=360]/b/best"

	formatSingle720 = "best[ext=mp4][height<=720]/best[height<=720]/best"
	formatSingle480 = "best[ext=mp4][height<=480]/best[height<=480]/best"
	formatSingle360 = "best[ext=mp4][height<=360]/best[height<=360]/best"

	formatGenericFFmpeg = "b/best"
	formatGenericSingle = "best"
)

// FormatFor returns the yt-dlp format selector for a quality preset.
func FormatFor(q domain.Quality, ffmpegOK bool) string {
	if ffmpegOK {
		switch q {
		case domain.Quality720:
			return formatFFmpeg720
		case domain.Quality480:
			return formatFFmpeg480
		default:
			return formatFFmpeg360
		}
	}
	switch q {
	case domain.Quality720:
		return formatSingle720
	case domain.Quality480:
		return formatSingle480
	default:
		return formatSingle360
	}
}

// FallbackChain returns the ordered format selectors to try for a preset:
// the preferred selector, then progressively smaller ones, ending with a
// generic best. Used both when the preferred format is unavailable and when
// the result would exceed the size cap.
func FallbackChain(q domain.Quality, ffmpegOK bool) []string {
	chain := []string{FormatFor(q, ffmpegOK)}

	var downshifts []string
	if ffmpegOK {
		downshifts = []string{formatFFmpeg480, formatFFmpeg360, formatGenericFFmpeg}
	} else {
		downshifts = []string{formatSingle480, formatSingle360, formatGenericSingle}
	}

	for _, f := range downshifts {
		if !contains(chain, f) {
			chain = append(chain, f)
		}
	}
	return chain
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
