package types

import "errors"

// Config holds the file locations for Open. Zero values are filled in by the
// CLI from the resolved data directory.
type Config struct {
	// DBPath is the user database file. Created (or seeded from TemplatePath)
	// when missing.
	DBPath string `json:"db_path" yaml:"db_path"`

	// TemplatePath is an optional pre-populated database shipped with the
	// application. When DBPath does not exist and TemplatePath does, the
	// template is copied verbatim before first open.
	TemplatePath string `json:"template_path" yaml:"template_path"`
}

// ErrDBPathEmpty is returned by Validate when no database path is set.
var ErrDBPathEmpty = errors.New("db path must not be empty")

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return ErrDBPathEmpty
	}
	return nil
}
