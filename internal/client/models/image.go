package models

import (
	"encoding/base64"
	"fmt"
)

// StagedImage is one photo the user has attached to the draft but not yet
// uploaded. Ordering is significant: display order equals upload order equals
// store order. Images are owned by the local image store for the duration of
// editing and removed on explicit user action or on a fully successful submit.
type StagedImage struct {
	// Name is the original filename, used for presign requests and for
	// naming the file in upload failure reports.
	Name string

	// ContentType is the MIME type reported for the file (e.g. "image/jpeg").
	ContentType string

	// Data holds the raw image bytes.
	Data []byte

	// Preview is a content-derived data URI used as the lookup value for
	// remove-by-preview. Collisions require identical bytes, so matching on
	// it is safe in practice.
	Preview string
}

// NewStagedImage builds a StagedImage with its preview derived from the
// provided bytes.
func NewStagedImage(name, contentType string, data []byte) StagedImage {
	return StagedImage{
		Name:        name,
		ContentType: contentType,
		Data:        data,
		Preview:     DataURI(contentType, data),
	}
}

// DataURI encodes raw bytes as a base64 data URI for the given MIME type.
func DataURI(contentType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
}
