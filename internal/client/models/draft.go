// Package models defines client-side data models for the Freshers Intro
// profile editor: the in-progress draft, staged images, and the wire shapes
// exchanged with the backend.
package models

// ProfileDraft is the in-progress, not-yet-submitted profile form state.
// It is persisted to the draft cache on every change (debounced) and cleared
// only after a fully successful submission.
type ProfileDraft struct {
	Bio       string            `json:"bio"`
	Branch    string            `json:"branch"`
	Batch     string            `json:"batch,omitempty"`
	Hostel    string            `json:"hostel"`
	Interests []string          `json:"interests"`
	Hobbies   []string          `json:"hobbies,omitempty"`
	Socials   map[string]string `json:"socials,omitempty"`
}

// EmptyDraft returns a draft with all collection fields initialized, used
// when the server reports no existing profile.
func EmptyDraft() *ProfileDraft {
	return &ProfileDraft{
		Interests: []string{},
		Socials:   map[string]string{},
	}
}

// IsLoaded reports whether the draft looks like it was seeded from a remote
// profile or from real user input, as opposed to a pristine empty draft.
// The draft cache and image store are only adopted together on hydration,
// and only when this holds for the cached draft.
func (d *ProfileDraft) IsLoaded() bool {
	return d.Bio != "" || d.Branch != "" || d.Hostel != "" || len(d.Interests) > 0
}
