package types

import "errors"

// Config holds backend and server parameters for Store.Attach and the HTTP
// server.
type Config struct {
	DBPath     string `json:"db_path" yaml:"db_path"`
	ListenAddr string `json:"listen_addr" yaml:"listen_addr"`
	CORSOrigin string `json:"cors_origin" yaml:"cors_origin"`
}

// Config validation errors.
var (
	ErrDBPathEmpty = errors.New("db_path must not be empty")
)

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return ErrDBPathEmpty
	}
	return nil
}
