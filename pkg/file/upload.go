package file

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrymomot/paramkit/pkg/value"
)

// Dir is a per-request upload directory. Files are stored under their
// sanitized original names; all operations stay inside the directory.
type Dir struct {
	path string
}

// NewDir creates a fresh directory under base. An empty base means the OS
// temp directory.
func NewDir(base string) (*Dir, error) {
	if base == "" {
		base = os.TempDir()
	}

	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	path, err := os.MkdirTemp(abs, "upload-")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}
	return &Dir{path: path}, nil
}

// Path returns the absolute directory path.
func (d *Dir) Path() string { return d.path }

// Save streams src into the directory and describes the stored file.
// maxBytes <= 0 disables the size check. Partial files are removed on error.
func (d *Dir) Save(ctx context.Context, filename, contentType string, src io.Reader, maxBytes int64) (value.FileRef, error) {
	if err := ctx.Err(); err != nil {
		return value.FileRef{}, err
	}

	name := SanitizeFilename(filename)
	dst, absPath, err := d.create(name)
	if err != nil {
		return value.FileRef{}, err
	}
	defer func() { _ = dst.Close() }()

	fail := func(err error) (value.FileRef, error) {
		_ = dst.Close()
		_ = os.Remove(absPath)
		return value.FileRef{}, err
	}

	written := int64(0)
	buf := make([]byte, 32*1024)
	for {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}

		n, readErr := src.Read(buf)
		if n > 0 {
			if maxBytes > 0 && written+int64(n) > maxBytes {
				return fail(fmt.Errorf("%w: %s exceeds %d bytes", ErrFileTooLarge, name, maxBytes))
			}
			nw, writeErr := dst.Write(buf[:n])
			written += int64(nw)
			if writeErr != nil {
				return fail(fmt.Errorf("%w: %v", ErrFailedToWriteFile, writeErr))
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fail(fmt.Errorf("%w: %v", ErrFailedToReadFile, readErr))
		}
	}

	if err := dst.Close(); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrFailedToWriteFile, err))
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrFailedToReadFile, err))
	}

	return value.FileRef{
		Path:    absPath,
		Name:    name,
		Size:    written,
		Type:    ContentType(contentType, name),
		ModTime: info.ModTime(),
	}, nil
}

// Remove deletes the directory and everything in it.
func (d *Dir) Remove() error {
	if err := os.RemoveAll(d.path); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToDeleteDirectory, err)
	}
	return nil
}

// create opens a new file named name, adding a numeric suffix when a file
// with that name was already uploaded in this request.
func (d *Dir) create(name string) (*os.File, string, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for i := 0; ; i++ {
		candidate := name
		if i > 0 {
			candidate = stem + "-" + strconv.Itoa(i) + ext
		}

		absPath, err := d.resolve(candidate)
		if err != nil {
			return nil, "", err
		}

		f, err := os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, absPath, nil
		}
		if !os.IsExist(err) {
			return nil, "", fmt.Errorf("%w: %v", ErrFailedToCreateFile, err)
		}
	}
}

func (d *Dir) resolve(name string) (string, error) {
	absPath := filepath.Join(d.path, filepath.Clean(name))
	if !strings.HasPrefix(absPath, d.path+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, name)
	}
	return absPath, nil
}
