package downloader

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteInstagramCookies writes a Netscape-format cookies file carrying the
// Instagram session cookie and returns its path.
func WriteInstagramCookies(dir, sessionID string) (string, error) {
	path := filepath.Join(dir, "cookies.txt")
	content := "# Netscape HTTP Cookie File\n" +
		fmt.Sprintf(".instagram.com\tTRUE\t/\tTRUE\t2147483647\tsessionid\t%s\n", sessionID)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", fmt.Errorf("write cookies file: %w", err)
	}
	return path, nil
}
