package ffmpeg

import "testing"

func TestParseDuration(t *testing.T) {
	d, err := parseDuration("123.456\n")
	if err != nil {
		t.Fatalf("parseDuration failed: %v", err)
	}
	if d != 123.456 {
		t.Errorf("Expected 123.456, got %f", d)
	}
}

func TestParseDurationInvalid(t *testing.T) {
	if _, err := parseDuration("N/A"); err == nil {
		t.Error("parseDuration should fail on non-numeric output")
	}
	if _, err := parseDuration(""); err == nil {
		t.Error("parseDuration should fail on empty output")
	}
}

func TestDetectMissingBinary(t *testing.T) {
	if path, ok := Detect("definitely-not-ffmpeg-binary"); ok {
		t.Errorf("Detect should fail for missing binary, got %s", path)
	}
}
