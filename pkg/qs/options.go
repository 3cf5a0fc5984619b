package qs

// Default decoding limits.
const (
	DefaultDepth          = 5
	DefaultArrayLimit     = 20
	DefaultParameterLimit = 1000
)

// Options controls how keys are expanded into nested values.
type Options struct {
	// Depth is the maximum number of bracket segments expanded per key.
	// Remaining brackets are kept as one literal segment.
	Depth int
	// ArrayLimit is the largest explicit index ("a[20]") that builds a
	// sequence. Larger indices become map keys.
	ArrayLimit int
	// ParameterLimit is the maximum number of pairs decoded. Zero or less
	// means unlimited.
	ParameterLimit int
	// AllowDots treats "a.b" in keys like "a[b]".
	AllowDots bool
}

// DefaultOptions returns the limits used when no options are given.
func DefaultOptions() Options {
	return Options{
		Depth:          DefaultDepth,
		ArrayLimit:     DefaultArrayLimit,
		ParameterLimit: DefaultParameterLimit,
	}
}

// Option configures decoding.
type Option func(*Options)

func WithDepth(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.Depth = n
		}
	}
}

func WithArrayLimit(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.ArrayLimit = n
		}
	}
}

func WithParameterLimit(n int) Option {
	return func(o *Options) { o.ParameterLimit = n }
}

func WithAllowDots() Option {
	return func(o *Options) { o.AllowDots = true }
}

func newOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
