package gallery

import (
	"net/http"
	"path/filepath"
	"strings"
)

// Default limits matching the API's upload validation rules.
// NOTE: SVG is intentionally excluded due to XSS risk: SVG files can
// carry embedded scripts that execute when rendered. Enable only behind
// a server-side sanitizer.
const (
	mb = 1024 * 1024

	DefaultMaxImages        = 5
	DefaultMaxFileSizeBytes = 30 * mb
)

var DefaultAllowedMIMETypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/bmp",
	"image/webp",
}

var DefaultAllowedExtensions = []string{"jpg", "jpeg", "png", "gif", "bmp", "webp"}

// validateFile checks one candidate against the configured type and
// size limits and returns the typed reason on rejection. The MIME type
// is checked first; unrecognized MIME types fall back to the extension
// allow-list. Files without a declared type are sniffed from the first
// bytes.
func (m *Manager) validateFile(file File) (FailureReason, bool) {
	contentType := file.ContentType
	if contentType == "" && len(file.Data) > 0 {
		head := file.Data
		if len(head) > 512 {
			head = head[:512]
		}
		contentType = http.DetectContentType(head)
	}

	if !contains(m.opts.AllowedMIMETypes, contentType) {
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Name)), ".")
		if ext == "" || !contains(m.opts.AllowedExtensions, ext) {
			return ReasonInvalidType, false
		}
	}

	if file.Size > m.opts.MaxFileSizeBytes {
		return ReasonTooLarge, false
	}

	return "", true
}

func contains(list []string, value string) bool {
	for _, entry := range list {
		if entry == value {
			return true
		}
	}
	return false
}
