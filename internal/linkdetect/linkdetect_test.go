package linkdetect

import "testing"

func TestFindURLs(t *testing.T) {
	text := "check this https://youtu.be/abc123 and http://example.com/x too"
	urls := FindURLs(text)
	if len(urls) != 2 {
		t.Fatalf("Expected 2 URLs, got %d: %v", len(urls), urls)
	}
	if urls[0] != "https://youtu.be/abc123" {
		t.Errorf("Unexpected first URL: %s", urls[0])
	}
}

func TestFindURLsEmpty(t *testing.T) {
	if urls := FindURLs("no links here"); urls != nil {
		t.Errorf("Expected no URLs, got %v", urls)
	}
}

func TestPlatform(t *testing.T) {
	cases := []struct {
		url      string
		platform string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "youtube"},
		{"https://youtu.be/dQw4w9WgXcQ", "youtube"},
		{"https://m.youtube.com/watch?v=dQw4w9WgXcQ", "youtube"},
		{"https://www.instagram.com/reel/xyz/", "instagram"},
		{"https://instagr.am/p/xyz/", "instagram"},
		{"https://vm.tiktok.com/ZM123/", "tiktok"},
		{"https://www.tiktok.com/@user/video/123", "tiktok"},
		{"https://fb.watch/abc/", "facebook"},
		{"https://www.facebook.com/watch?v=123", "facebook"},
		{"https://twitter.com/user/status/123", "twitter"},
		{"https://x.com/user/status/123", "twitter"},
		{"https://vimeo.com/123456", "vimeo"},
		{"https://example.com/video", ""},
		{"https://notyoutube.com/watch", ""},
		{"not a url at all", ""},
	}

	for _, tc := range cases {
		if got := Platform(tc.url); got != tc.platform {
			t.Errorf("Platform(%q) = %q, want %q", tc.url, got, tc.platform)
		}
	}
}

func TestIsSupported(t *testing.T) {
	if !IsSupported("https://vimeo.com/123") {
		t.Error("vimeo.com should be supported")
	}
	if IsSupported("https://dailymotion.com/video/x1") {
		t.Error("dailymotion.com should not be supported")
	}
}

func TestIsInstagram(t *testing.T) {
	if !IsInstagram("https://www.instagram.com/reel/abc/") {
		t.Error("instagram.com should be detected")
	}
	if IsInstagram("https://youtu.be/abc") {
		t.Error("youtube link is not instagram")
	}
}

func TestSupportedURLs(t *testing.T) {
	text := "https://example.com/a https://youtu.be/b https://x.com/u/status/1"
	urls := SupportedURLs(text)
	if len(urls) != 2 {
		t.Fatalf("Expected 2 supported URLs, got %d: %v", len(urls), urls)
	}
}
