package menu

import (
	"errors"
	"path/filepath"
	"strings"
)

var allowedPhotoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// ValidatePhotoExtension accepts only image formats the vision model reads.
func ValidatePhotoExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return errors.New("file has no extension")
	}
	if !allowedPhotoExtensions[ext] {
		return errors.New("unsupported file type: use jpg, png or webp")
	}
	return nil
}
