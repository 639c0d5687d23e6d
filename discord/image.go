package discord

import (
	"encoding/base64"
	"net/http"
)

// ImageDataURI encodes an image as the data URI discord expects for avatars, icons and emojis.
func ImageDataURI(data []byte) (string, error) {
	contentType := http.DetectContentType(data)

	switch contentType {
	case "image/png", "image/jpeg", "image/gif", "image/webp":
	default:
		return "", ErrUnsupportedImageType
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
