package storage

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var imageName = regexp.MustCompile(`(?i)^.*\.(jpe?g|gif|png|svg|webp)$`)

var imageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".png":  "image/png",
	".svg":  "image/svg+xml",
	".webp": "image/webp",
}

// IsImage reports whether filename carries an accepted image extension.
func IsImage(filename string) bool {
	return imageName.MatchString(filename)
}

// ImageContentType maps an image filename to its MIME type.
func ImageContentType(filename string) string {
	if ct, ok := imageTypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// BannerKey returns a fresh object key for an uploaded banner, keeping the extension.
func BannerKey(filename string) string {
	return "banners/" + uuid.NewString() + strings.ToLower(filepath.Ext(filename))
}
