package binder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/dmitrymomot/paramkit/pkg/file"
	"github.com/dmitrymomot/paramkit/pkg/qs"
	"github.com/dmitrymomot/paramkit/pkg/value"
)

func parseMultipart(r *http.Request, boundary string, cfg Config, opts []qs.Option) (body *Body, err error) {
	ctx := r.Context()
	mr := multipart.NewReader(r.Body, boundary)

	b := &Body{}
	defer func() {
		if err != nil {
			_ = b.Cleanup()
		}
	}()

	var (
		pairs      []qs.Pair
		fieldBytes int64
		fileBytes  int64
	)
	for {
		part, perr := mr.NextPart()
		if perr == io.EOF {
			break
		}
		if perr != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, perr)
		}

		name := part.FormName()
		if name == "" {
			_ = part.Close()
			continue
		}

		if filename := part.FileName(); filename != "" {
			var size int64
			size, err = b.saveFile(ctx, cfg, name, filename, part, cfg.MaxFileSize-fileBytes)
			_ = part.Close()
			if err != nil {
				return nil, err
			}
			fileBytes += size
			continue
		}

		if len(pairs) >= cfg.MaxFields {
			_ = part.Close()
			return nil, fmt.Errorf("%w: more than %d", ErrTooManyFields, cfg.MaxFields)
		}
		data, rerr := readLimited(part, cfg.MaxFieldsSize-fieldBytes)
		_ = part.Close()
		if rerr != nil {
			if errors.Is(rerr, ErrBodyTooLarge) {
				return nil, fmt.Errorf("%w: form fields exceed %d bytes", ErrBodyTooLarge, cfg.MaxFieldsSize)
			}
			return nil, rerr
		}
		fieldBytes += int64(len(data))
		pairs = append(pairs, qs.Pair{Key: name, Value: string(data)})
	}

	b.values = b.merge(qs.DecodePairs(pairs, opts...))
	return b, nil
}

// saveFile stores one upload and returns its size. remaining is what is left
// of the per-request upload budget.
func (b *Body) saveFile(ctx context.Context, cfg Config, field, filename string, part *multipart.Part, remaining int64) (int64, error) {
	if remaining <= 0 {
		return 0, fmt.Errorf("%w: uploads exceed %d bytes", ErrBodyTooLarge, cfg.MaxFileSize)
	}
	if b.dir == nil {
		dir, err := file.NewDir(cfg.UploadDir)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrUpload, err)
		}
		b.dir = dir
	}

	ref, err := b.dir.Save(ctx, filename, part.Header.Get("Content-Type"), part, remaining)
	if err != nil {
		if errors.Is(err, file.ErrFileTooLarge) {
			return 0, fmt.Errorf("%w: uploads exceed %d bytes: %v", ErrBodyTooLarge, cfg.MaxFileSize, err)
		}
		return 0, fmt.Errorf("%w: %v", ErrUpload, err)
	}

	if b.files == nil {
		b.files = make(map[string][]value.FileRef)
	}
	key := strings.TrimSuffix(field, "[]")
	b.files[key] = append(b.files[key], ref)
	return ref.Size, nil
}

// merge lays uploads over the decoded fields. A single upload is a File
// value, repeated uploads under one key a Seq of files.
func (b *Body) merge(fields value.Value) value.Value {
	if len(b.files) == 0 {
		return fields
	}

	m := make(map[string]value.Value, len(b.files)+fields.Len())
	for _, k := range fields.Keys() {
		m[k], _ = fields.Get(k)
	}
	for k, refs := range b.files {
		if len(refs) == 1 {
			m[k] = value.File(refs[0])
			continue
		}
		items := make([]value.Value, len(refs))
		for i, ref := range refs {
			items[i] = value.File(ref)
		}
		m[k] = value.Seq(items...)
	}
	return value.Map(m)
}
