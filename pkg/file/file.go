package file

import (
	"mime"
	"path/filepath"
	"strings"
)

// SanitizeFilename reduces a client supplied filename to its base name.
// Directory parts (either separator) and NUL bytes are dropped; names that
// reduce to nothing become "unnamed".
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}

	return filename
}

// ContentType returns the media type declared by the part header, falling
// back to the filename extension.
func ContentType(header, filename string) string {
	if header != "" {
		if mediaType, _, err := mime.ParseMediaType(header); err == nil {
			return mediaType
		}
	}
	if ct := mime.TypeByExtension(filepath.Ext(filename)); ct != "" {
		mediaType, _, _ := mime.ParseMediaType(ct)
		return mediaType
	}
	return "application/octet-stream"
}
