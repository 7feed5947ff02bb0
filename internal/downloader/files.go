package downloader

import (
	"io/fs"
	"path/filepath"
	"strings"
)

var mediaExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".mkv":  true,
	".webm": true,
}

// pickFinalFile returns the media file yt-dlp most likely produced as the
// final output: mp4 is preferred over other containers, then the largest
// and newest file wins. Intermediate fragments and sidecar files lose
// naturally because they are smaller or not media at all.
func pickFinalFile(dir string) (string, bool) {
	type candidate struct {
		path    string
		size    int64
		modTime int64
	}

	var media []candidate
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if !mediaExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		media = append(media, candidate{path, info.Size(), info.ModTime().UnixNano()})
		return nil
	})
	if len(media) == 0 {
		return "", false
	}

	var mp4s []candidate
	for _, c := range media {
		if strings.EqualFold(filepath.Ext(c.path), ".mp4") {
			mp4s = append(mp4s, c)
		}
	}
	pool := media
	if len(mp4s) > 0 {
		pool = mp4s
	}

	best := pool[0]
	for _, c := range pool[1:] {
		if c.size > best.size || (c.size == best.size && c.modTime > best.modTime) {
			best = c
		}
	}
	return best.path, true
}
