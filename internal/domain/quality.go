package domain

// Quality is a requested resolution cap for downloads.
type Quality string

const (
	Quality360 Quality = "360"
	Quality480 Quality = "480"
	Quality720 Quality = "720"
)

// Qualities lists the supported presets in ascending order.
// 720 is only meaningful when ffmpeg is available for merging.
var Qualities = []Quality{Quality360, Quality480, Quality720}

func (q Quality) Valid() bool {
	for _, known := range Qualities {
		if q == known {
			return true
		}
	}
	return false
}

func (q Quality) String() string {
	return string(q)
}

// DefaultQuality returns the preset used when a chat has no stored
// preference: 720p with ffmpeg, 480p without.
func DefaultQuality(ffmpegOK bool) Quality {
	if ffmpegOK {
		return Quality720
	}
	return Quality480
}
