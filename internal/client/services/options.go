package services

import "time"

// Options are the editing-session policies. The required-field set is data
// rather than code because the product never settled on one answer; bio is
// always required regardless.
type Options struct {
	// MaxImages bounds the staged-image store.
	MaxImages int

	// MaxInterests and MaxInterestLen bound the interest (and hobby) tags.
	MaxInterests   int
	MaxInterestLen int

	// RequiredFields lists draft fields that must be non-empty at submit
	// time, in addition to bio. Recognized names: branch, hostel, batch,
	// interests.
	RequiredFields []string

	// SaveDelay is the debounce quiet period for draft-cache writes.
	// Zero means save synchronously (used in tests).
	SaveDelay time.Duration

	// MaxUploadBytes is the size above which a staged image is downscaled
	// before staging. Zero disables downscaling.
	MaxUploadBytes int

	// MaxImageWidth is the target width for downscaled images.
	MaxImageWidth int
}

// DefaultOptions mirrors the behavior of the production editor.
func DefaultOptions() Options {
	return Options{
		MaxImages:      5,
		MaxInterests:   5,
		MaxInterestLen: 20,
		RequiredFields: []string{"branch", "hostel"},
		SaveDelay:      400 * time.Millisecond,
		MaxUploadBytes: 1 << 20,
		MaxImageWidth:  1000,
	}
}
