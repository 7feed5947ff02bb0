package domain

import "testing"

func TestQualityValid(t *testing.T) {
	for _, q := range Qualities {
		if !q.Valid() {
			t.Errorf("%s should be a valid preset", q)
		}
	}
	for _, bad := range []Quality{"", "1080", "720p", "best"} {
		if bad.Valid() {
			t.Errorf("%q should not be a valid preset", bad)
		}
	}
}

func TestDefaultQuality(t *testing.T) {
	if q := DefaultQuality(true); q != Quality720 {
		t.Errorf("Expected 720 default with ffmpeg, got %s", q)
	}
	if q := DefaultQuality(false); q != Quality480 {
		t.Errorf("Expected 480 default without ffmpeg, got %s", q)
	}
}
