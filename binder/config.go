package binder

// Default body limits.
const (
	DefaultJSONLimit     int64 = 1 << 20
	DefaultFormLimit     int64 = 56 << 10
	DefaultTextLimit     int64 = 56 << 10
	DefaultMaxFields           = 1000
	DefaultMaxFieldsSize int64 = 2 << 20
	DefaultMaxFileSize   int64 = 200 << 20
)

// Config holds body parsing limits. Zero values fall back to the defaults.
// MaxFileSize caps the combined size of all uploads in one request.
type Config struct {
	JSONLimit     int64  `env:"PARAM_JSON_LIMIT" envDefault:"1048576"`
	FormLimit     int64  `env:"PARAM_FORM_LIMIT" envDefault:"57344"`
	TextLimit     int64  `env:"PARAM_TEXT_LIMIT" envDefault:"57344"`
	MaxFields     int    `env:"PARAM_MAX_FIELDS" envDefault:"1000"`
	MaxFieldsSize int64  `env:"PARAM_MAX_FIELDS_SIZE" envDefault:"2097152"`
	MaxFileSize   int64  `env:"PARAM_MAX_FILE_SIZE" envDefault:"209715200"`
	UploadDir     string `env:"PARAM_UPLOAD_DIR"`
}

// DefaultConfig returns the default limits with uploads going to the OS temp dir.
func DefaultConfig() Config {
	return Config{
		JSONLimit:     DefaultJSONLimit,
		FormLimit:     DefaultFormLimit,
		TextLimit:     DefaultTextLimit,
		MaxFields:     DefaultMaxFields,
		MaxFieldsSize: DefaultMaxFieldsSize,
		MaxFileSize:   DefaultMaxFileSize,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.JSONLimit <= 0 {
		c.JSONLimit = d.JSONLimit
	}
	if c.FormLimit <= 0 {
		c.FormLimit = d.FormLimit
	}
	if c.TextLimit <= 0 {
		c.TextLimit = d.TextLimit
	}
	if c.MaxFields <= 0 {
		c.MaxFields = d.MaxFields
	}
	if c.MaxFieldsSize <= 0 {
		c.MaxFieldsSize = d.MaxFieldsSize
	}
	if c.MaxFileSize <= 0 {
		c.MaxFileSize = d.MaxFileSize
	}
	return c
}
