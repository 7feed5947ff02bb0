// Package ffmpeg detects and queries the host's ffmpeg/ffprobe binaries.
package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Detect resolves the ffmpeg binary and verifies it actually runs.
// Returns the resolved path and whether a working binary was found.
func Detect(path string) (string, bool) {
	resolved, err := exec.LookPath(path)
	if err != nil {
		return "", false
	}
	if !isWorking(resolved) {
		return "", false
	}
	return resolved, true
}

func isWorking(path string) bool {
	return exec.Command(path, "-version").Run() == nil
}

// ProbeDuration returns the duration of a media file in seconds using ffprobe.
func ProbeDuration(ctx context.Context, ffprobePath, filePath string) (float64, error) {
	cmd := exec.CommandContext(ctx, ffprobePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "csv=p=0",
		filePath,
	)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("run ffprobe: %w", err)
	}
	return parseDuration(string(output))
}

func parseDuration(output string) (float64, error) {
	s := strings.TrimSpace(output)
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", s, err)
	}
	return d, nil
}
