// Package common defines shared constants and sentinel errors used across
// the Freshers Intro client. Callers should use errors.Is / errors.As to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Transport-level errors.
	ErrProfileNotFound = errors.New("profile not found")

	// Local persistence errors. When the local database cannot be opened or
	// written, the editor degrades to in-memory staging for the session.
	ErrStorageUnavailable = errors.New("local storage unavailable")

	// Editing-session errors.
	ErrNotConfirmStep = errors.New("submission is only allowed from the confirm step")
)

// ValidationError reports a draft field that failed validation at edit or
// submit time. No network call is made when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

// UploadError reports the first staged file whose upload step failed.
// The whole submission is aborted and local state is left intact.
type UploadError struct {
	Filename string
	Err      error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload failed for %s: %v", e.Filename, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// ServerError carries the status and human-readable detail text returned by
// the backend on a non-2xx response.
type ServerError struct {
	Status int
	Detail string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Detail)
}
