// Package linkdetect finds and classifies video platform links in
// message text.
package linkdetect

import (
	"net/url"
	"regexp"
	"strings"
)

var urlRe = regexp.MustCompile(`https?://\S+`)

// supportedDomains maps hostname suffixes to a platform name.
var supportedDomains = map[string]string{
	"youtube.com":   "youtube",
	"youtu.be":      "youtube",
	"instagram.com": "instagram",
	"instagr.am":    "instagram",
	"tiktok.com":    "tiktok",
	"facebook.com":  "facebook",
	"fb.watch":      "facebook",
	"twitter.com":   "twitter",
	"x.com":         "twitter",
	"vimeo.com":     "vimeo",
}

// FindURLs returns every http(s) URL found in text, in order.
func FindURLs(text string) []string {
	return urlRe.FindAllString(text, -1)
}

// Platform returns the platform name for a supported URL, or "" when the
// URL does not belong to a supported platform.
func Platform(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	for suffix, platform := range supportedDomains {
		if host == suffix || strings.HasSuffix(host, "."+suffix) {
			return platform
		}
	}
	return ""
}

// IsSupported reports whether the URL points at one of the supported
// video platforms.
func IsSupported(rawURL string) bool {
	return Platform(rawURL) != ""
}

// IsInstagram reports whether the URL belongs to Instagram, which may
// need a session cookie for private or age-gated media.
func IsInstagram(rawURL string) bool {
	return Platform(rawURL) == "instagram"
}

// SupportedURLs filters text down to the supported video links it contains.
func SupportedURLs(text string) []string {
	var out []string
	for _, u := range FindURLs(text) {
		if IsSupported(u) {
			out = append(out, u)
		}
	}
	return out
}
