package model

import "strings"

// ImageState classifies the value held in an image field.
type ImageState int

const (
	// ImageNone means the field is empty.
	ImageNone ImageState = iota
	// ImagePending is a data URI that still has to be uploaded.
	ImagePending
	// ImageRemote is a URL the backend already stores.
	ImageRemote
	// ImageFailed is the marker the backend leaves after a failed upload.
	ImageFailed
	// ImageUnknown is anything else.
	ImageUnknown
)

func (s ImageState) String() string {
	switch s {
	case ImageNone:
		return "none"
	case ImagePending:
		return "pending"
	case ImageRemote:
		return "remote"
	case ImageFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ImageErrorPrefix starts every failed-upload marker.
const ImageErrorPrefix = "Error"

// ClassifyImage reports which state an image field is in.
func ClassifyImage(value string) ImageState {
	v := strings.TrimSpace(value)
	lower := strings.ToLower(v)
	switch {
	case v == "":
		return ImageNone
	case strings.HasPrefix(lower, "data:"):
		return ImagePending
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return ImageRemote
	case strings.HasPrefix(v, ImageErrorPrefix):
		return ImageFailed
	default:
		return ImageUnknown
	}
}

// PendingImage returns value when it is a data URI awaiting upload and ""
// otherwise. Only pending images belong in outgoing payloads.
func PendingImage(value string) string {
	if ClassifyImage(value) == ImagePending {
		return strings.TrimSpace(value)
	}
	return ""
}
