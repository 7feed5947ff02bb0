package domain

import "errors"

var (
	ErrTooLarge           = errors.New("media file exceeds size limit")
	ErrNoMediaFile        = errors.New("no media file produced")
	ErrInvalidQuality     = errors.New("invalid quality preset")
	ErrQualityNeedsFFmpeg = errors.New("quality requires ffmpeg")
)
