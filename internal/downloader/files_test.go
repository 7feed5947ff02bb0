package downloader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name string, size int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(strings.Repeat("x", size)), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestPickFinalFilePrefersMP4(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "video.webm", 1000)
	want := writeFile(t, dir, "video.mp4", 100)

	got, ok := pickFinalFile(dir)
	if !ok {
		t.Fatal("pickFinalFile found nothing")
	}
	if got != want {
		t.Errorf("Expected mp4 to win over larger webm, got %s", got)
	}
}

func TestPickFinalFileLargestWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "small.mp4", 10)
	want := writeFile(t, dir, "large.mp4", 500)

	got, ok := pickFinalFile(dir)
	if !ok {
		t.Fatal("pickFinalFile found nothing")
	}
	if got != want {
		t.Errorf("Expected largest mp4, got %s", got)
	}
}

func TestPickFinalFileIgnoresNonMedia(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cookies.txt", 5000)
	writeFile(t, dir, "info.json", 5000)
	want := writeFile(t, dir, "clip.mkv", 10)

	got, ok := pickFinalFile(dir)
	if !ok {
		t.Fatal("pickFinalFile found nothing")
	}
	if got != want {
		t.Errorf("Expected mkv despite larger sidecar files, got %s", got)
	}
}

func TestPickFinalFileEmpty(t *testing.T) {
	dir := t.TempDir()
	if _, ok := pickFinalFile(dir); ok {
		t.Error("pickFinalFile should report nothing for an empty directory")
	}
}

func TestWriteInstagramCookies(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteInstagramCookies(dir, "sess-value")
	if err != nil {
		t.Fatalf("WriteInstagramCookies failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read cookies: %v", err)
	}
	content := string(data)

	if !strings.HasPrefix(content, "# Netscape HTTP Cookie File") {
		t.Error("cookies file missing Netscape header")
	}
	if !strings.Contains(content, ".instagram.com\tTRUE\t/\tTRUE\t2147483647\tsessionid\tsess-value") {
		t.Errorf("cookies file missing session line: %q", content)
	}
}
