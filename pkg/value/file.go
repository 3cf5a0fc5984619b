package value

import "time"

// FileRef describes an uploaded file that has already been written to disk
// by the body binder. It is never coerced or sanitized.
type FileRef struct {
	// Path is the location of the stored upload.
	Path string `json:"path"`
	// Name is the original filename supplied by the client.
	Name string `json:"name"`
	// Size is the stored size in bytes.
	Size int64 `json:"size"`
	// Type is the media type declared for the part.
	Type string `json:"type,omitempty"`
	// ModTime is the modification time of the stored file.
	ModTime time.Time `json:"mtime"`
}

// Valid reports whether the descriptor carries a path, an original filename
// and a modification time.
func (f FileRef) Valid() bool {
	return f.Path != "" && f.Name != "" && !f.ModTime.IsZero()
}

// Equal compares two descriptors field by field.
func (f FileRef) Equal(o FileRef) bool {
	return f.Path == o.Path &&
		f.Name == o.Name &&
		f.Size == o.Size &&
		f.Type == o.Type &&
		f.ModTime.Equal(o.ModTime)
}
