// Package images provides the persistence layer for staged profile photos.
//
// A staged image is a photo the user attached to the draft but has not yet
// uploaded. The Repository keeps staged images in insertion order across
// process restarts; display order, upload order and store order are the same
// thing. The SQLite implementation is the default; the in-memory one is the
// degradation target when local storage is unavailable (the session then
// simply does not survive a restart).
//
// The maximum-image policy is enforced by the draft service, not here: the
// store faithfully persists whatever the single writer hands it.
package images
