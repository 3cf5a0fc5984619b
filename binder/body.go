package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/dmitrymomot/paramkit/pkg/file"
	"github.com/dmitrymomot/paramkit/pkg/qs"
	"github.com/dmitrymomot/paramkit/pkg/value"
)

// Body is a parsed request body.
type Body struct {
	// Raw holds the JSON document as received.
	Raw []byte
	// Text holds a text/* body.
	Text string

	values value.Value
	files  map[string][]value.FileRef
	dir    *file.Dir
}

// Values returns the body fields as a Map, with uploads on top of
// same-named fields. A nil Body yields an empty Map.
func (b *Body) Values() value.Value {
	if b == nil || b.values.Kind() != value.KindMap {
		return value.Map(nil)
	}
	return b.values
}

// HasFile reports whether an upload was stored under the top-level key.
func (b *Body) HasFile(key string) bool {
	if b == nil {
		return false
	}
	return len(b.files[key]) > 0
}

// Files returns the uploads stored under key.
func (b *Body) Files(key string) []value.FileRef {
	if b == nil {
		return nil
	}
	return append([]value.FileRef(nil), b.files[key]...)
}

// Cleanup removes the request upload directory, if one was created.
func (b *Body) Cleanup() error {
	if b == nil || b.dir == nil {
		return nil
	}
	return b.dir.Remove()
}

// Parse reads the request body according to its content type.
//
// Only POST, PUT and PATCH bodies are parsed; other methods return nil.
// JSON objects become fields, urlencoded and multipart fields are decoded
// with qs bracket notation, text bodies are kept as Text. Unknown content
// types yield an empty Body. Multipart file parts are streamed to a fresh
// directory under cfg.UploadDir; call Cleanup when done with them.
func Parse(r *http.Request, cfg Config, opts ...qs.Option) (*Body, error) {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
	default:
		return nil, nil
	}
	if r.Body == nil || r.Body == http.NoBody {
		return &Body{}, nil
	}

	cfg = cfg.withDefaults()

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return &Body{}, nil
	}
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return &Body{}, nil
	}

	switch {
	case isJSON(mediaType):
		return parseJSON(r.Body, cfg.JSONLimit)
	case mediaType == "application/x-www-form-urlencoded":
		return parseForm(r.Body, cfg.FormLimit, opts)
	case mediaType == "multipart/form-data":
		boundary := params["boundary"]
		if boundary == "" {
			return nil, fmt.Errorf("%w: missing multipart boundary", ErrInvalidForm)
		}
		return parseMultipart(r, boundary, cfg, opts)
	case strings.HasPrefix(mediaType, "text/"):
		data, err := readLimited(r.Body, cfg.TextLimit)
		if err != nil {
			return nil, err
		}
		return &Body{Text: string(data)}, nil
	default:
		return &Body{}, nil
	}
}

func isJSON(mediaType string) bool {
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func parseJSON(r io.Reader, limit int64) (*Body, error) {
	data, err := readLimited(r, limit)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return &Body{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after JSON document", ErrInvalidJSON)
	}

	body := &Body{Raw: data}
	if m, ok := doc.(map[string]any); ok {
		body.values = value.FromAny(m)
	}
	return body, nil
}

func parseForm(r io.Reader, limit int64, opts []qs.Option) (*Body, error) {
	data, err := readLimited(r, limit)
	if err != nil {
		return nil, err
	}
	return &Body{values: qs.Decode(string(data), opts...)}, nil
}

func readLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("%w: %v", ErrBodyTooLarge, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: exceeds %d bytes", ErrBodyTooLarge, limit)
	}
	return data, nil
}
