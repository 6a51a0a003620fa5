// Package services contains the draft controller: the single owner of all
// mutable profile-editing state.
//
// # Overview
//
// DraftService coordinates the draft cache, the staged-image store and the
// step wizard, and is the only component that talks to the backend. An
// editing session moves through three phases: hydration (Bootstrap), editing
// (field and image mutations, step navigation) and submission (sequential
// uploads followed by the profile write).
//
// # Concurrency
//
// All public methods serialize on one mutex, so each user action is a
// discrete unit and rapid successive mutations cannot lose updates. Draft
// saves are debounced; image writes are not, since image operations are
// discrete actions rather than keystrokes.
//
// # Failure policy
//
// Every failure is returned to the caller as a message-worthy error, and no
// failure path drops staged work: only an explicit user action or a fully
// successful submit clears local state.
package services
