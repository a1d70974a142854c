// Package props implements the read-only configuration lookup consumed by the
// composition root. Values come from the process environment, optionally
// preloaded from a .env file. A missing or blank key is a PropertyError,
// never an empty default.
package props

import (
	"os"
	"strings"

	"kebabhouse/internal/pkg/errs"

	"github.com/joho/godotenv"
)

// Provider resolves configuration keys against the process environment.
type Provider struct {
	lookup func(key string) (string, bool)
}

// NewProvider creates a Provider backed by os.LookupEnv.
func NewProvider() *Provider {
	return &Provider{lookup: os.LookupEnv}
}

// NewProviderFromMap creates a Provider backed by a fixed map. Used in tests
// and anywhere env access is undesirable.
func NewProviderFromMap(values map[string]string) *Provider {
	return &Provider{lookup: func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}}
}

// Load reads the given .env file into the process environment. Existing
// variables are not overridden. A missing file is reported to the caller,
// which decides whether that is fatal.
func Load(filename string) error {
	if err := godotenv.Load(filename); err != nil {
		return errs.NewPropertyErrorWithCause(filename, err)
	}
	return nil
}

// Get returns the value for key, failing with PropertyError when the key is
// absent or blank.
func (p *Provider) Get(key string) (string, error) {
	value, ok := p.lookup(key)
	if !ok || strings.TrimSpace(value) == "" {
		return "", errs.NewPropertyError(key)
	}
	return value, nil
}

// GetDefault returns the value for key, or def when the key is absent or blank.
// Used only for genuinely optional properties.
func (p *Provider) GetDefault(key, def string) string {
	value, ok := p.lookup(key)
	if !ok || strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
