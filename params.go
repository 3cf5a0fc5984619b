package paramkit

import (
	"github.com/dmitrymomot/paramkit/pkg/keypath"
	"github.com/dmitrymomot/paramkit/pkg/sanitizer"
	"github.com/dmitrymomot/paramkit/pkg/value"
)

// Params are the parameters of one request. Lookups never fail: absent
// parameters come back as "" from Get and as an empty sequence from GetAll.
type Params struct {
	a         *Accessor
	source    value.Value
	body      value.Value
	fromQuery bool
}

// Get returns a single parameter. A sequence yields its first element.
//
// key is either a flat name ("page") or a dotted path into nested data
// ("user.name", "items.0.id"). Strings are escaped unless Sanitize(false)
// is given or the body holds an upload under key.
func (p *Params) Get(key string, opts ...GetOption) value.Value {
	o := newGetOptions(opts)
	v := p.resolve(key, o)

	switch {
	case v.IsMissing():
		v = value.String("")
	case v.Kind() == value.KindSeq:
		v = v.Index(0)
		if v.IsMissing() {
			v = value.String("")
		}
	}
	return p.sanitize(key, v, o)
}

// GetAll returns a parameter as a sequence. A single value is wrapped in a
// one-element sequence.
func (p *Params) GetAll(key string, opts ...GetOption) value.Value {
	o := newGetOptions(opts)
	v := p.resolve(key, o)

	switch {
	case v.IsMissing():
		v = value.Seq()
	case v.Kind() != value.KindSeq:
		v = value.Seq(v)
	}
	return p.sanitize(key, v, o)
}

// Has reports whether key resolves to a non-empty value.
func (p *Params) Has(key string) bool {
	return !keypath.Resolve(p.root(), key).IsMissing()
}

// All returns every parameter of the selected source, coerced but not
// sanitized.
func (p *Params) All() value.Value {
	return p.root()
}

// FromQuery reports whether parameters were read from the query string.
func (p *Params) FromQuery() bool {
	return p != nil && p.fromQuery
}

// String returns the parameter rendered as text, or fallback when absent.
func (p *Params) String(key, fallback string, opts ...GetOption) string {
	v := p.Get(key, opts...)
	if v.IsMissing() {
		return fallback
	}
	return v.String()
}

// Int returns an integral numeric parameter, or fallback.
func (p *Params) Int(key string, fallback int) int {
	if n, ok := p.Get(key, Sanitize(false)).AsInt(); ok {
		return int(n)
	}
	return fallback
}

// Float returns a numeric parameter, or fallback.
func (p *Params) Float(key string, fallback float64) float64 {
	if f, ok := p.Get(key, Sanitize(false)).AsFloat(); ok {
		return f
	}
	return fallback
}

// Bool returns a "true"/"false" parameter, or fallback.
func (p *Params) Bool(key string, fallback bool) bool {
	if b, ok := p.Get(key, Sanitize(false)).AsBool(); ok {
		return b
	}
	return fallback
}

// Strings returns every value of key rendered as text.
func (p *Params) Strings(key string, opts ...GetOption) []string {
	items := p.GetAll(key, opts...).Items()
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.String())
	}
	return out
}

func (p *Params) root() value.Value {
	if p == nil {
		return value.Map(nil)
	}
	return p.source
}

func (p *Params) accessor() *Accessor {
	if p == nil || p.a == nil {
		return defaultAccessor
	}
	return p.a
}

func (p *Params) resolve(key string, o getOptions) value.Value {
	v := keypath.Resolve(p.root(), key)
	if v.IsMissing() && o.hasDefault {
		v = p.accessor().coerceDefault(o.def)
	}
	return v
}

func (p *Params) sanitize(key string, v value.Value, o getOptions) value.Value {
	if !o.sanitize || p.hasUpload(key) {
		return v
	}
	return sanitizer.Walk(v, p.accessor().escape)
}

// hasUpload reports whether the body stores a file directly under key.
func (p *Params) hasUpload(key string) bool {
	if p == nil || p.body.Kind() != value.KindMap {
		return false
	}
	e, ok := p.body.Get(key)
	if !ok {
		return false
	}
	if e.Kind() == value.KindFile {
		return true
	}
	for _, item := range e.Items() {
		if item.Kind() == value.KindFile {
			return true
		}
	}
	return false
}
