package models

// RemoteImage is one already-uploaded profile photo as reported by the
// backend.
type RemoteImage struct {
	ID       int    `json:"id"`
	ImageURL string `json:"image_url"`
}

// RemoteUser is the nested user object of the profile read response.
type RemoteUser struct {
	ID       int           `json:"id"`
	Username string        `json:"username"`
	Email    string        `json:"email"`
	Images   []RemoteImage `json:"images"`
}

// RemoteProfile is the server's last-known profile representation. It is
// read-only to the editor and used solely to seed the draft on first load.
type RemoteProfile struct {
	Bio       string            `json:"bio"`
	Branch    string            `json:"branch"`
	Batch     string            `json:"batch,omitempty"`
	Hostel    string            `json:"hostel"`
	Interests []string          `json:"interests"`
	Hobbies   []string          `json:"hobbies,omitempty"`
	Socials   map[string]string `json:"socials,omitempty"`
	User      RemoteUser        `json:"user"`
}

// Draft maps the remote profile onto a fresh editable draft.
func (p *RemoteProfile) Draft() *ProfileDraft {
	d := &ProfileDraft{
		Bio:       p.Bio,
		Branch:    p.Branch,
		Batch:     p.Batch,
		Hostel:    p.Hostel,
		Interests: p.Interests,
		Hobbies:   p.Hobbies,
		Socials:   p.Socials,
	}
	if d.Interests == nil {
		d.Interests = []string{}
	}
	if d.Socials == nil {
		d.Socials = map[string]string{}
	}
	return d
}

// PresignedUpload is the storage broker's authorization for one direct
// upload: the target URL, the form fields that must accompany the file, and
// the object key the file will be stored under.
type PresignedUpload struct {
	UploadURL string            `json:"upload_url"`
	Fields    map[string]string `json:"fields"`
	Key       string            `json:"key"`
}

// WriteProfileRequest is the payload of the profile write endpoint. ImageKeys
// holds the object keys returned by the upload pipeline, in display order.
type WriteProfileRequest struct {
	Bio       string            `json:"bio"`
	Branch    string            `json:"branch"`
	Batch     string            `json:"batch,omitempty"`
	Hostel    string            `json:"hostel"`
	Interests []string          `json:"interests"`
	Hobbies   []string          `json:"hobbies,omitempty"`
	Socials   map[string]string `json:"socials,omitempty"`
	ImageKeys []string          `json:"image_keys"`
}
