// Package credential resolves the model provider API key.
package credential

import (
	"errors"
	"io/fs"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// DefaultSecretsKey is the key looked up in the secrets file
const DefaultSecretsKey = "GOOGLE_API_KEY"

// ErrTagSecretsFile marks failures reading or parsing the secrets file
var ErrTagSecretsFile = goerr.NewTag("secrets_file")

// Resolver resolves an API key from an explicit value, falling back to a
// TOML secrets file. Resolving to "" is not an error.
type Resolver struct {
	Value       string
	SecretsFile string
	SecretsKey  string
}

// Resolve returns the API key, or "" if none is configured. A missing
// secrets file is not an error; an unreadable or malformed one is.
func (r *Resolver) Resolve() (string, error) {
	if r.Value != "" {
		return r.Value, nil
	}
	if r.SecretsFile == "" {
		return "", nil
	}

	data, err := os.ReadFile(r.SecretsFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", goerr.Wrap(err, "failed to read secrets file",
			goerr.V("path", r.SecretsFile),
			goerr.T(ErrTagSecretsFile))
	}

	var secrets map[string]any
	if err := toml.Unmarshal(data, &secrets); err != nil {
		return "", goerr.Wrap(err, "failed to parse secrets file",
			goerr.V("path", r.SecretsFile),
			goerr.T(ErrTagSecretsFile))
	}

	key := r.SecretsKey
	if key == "" {
		key = DefaultSecretsKey
	}

	switch v := secrets[key].(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	default:
		return "", goerr.New("secret is not a string",
			goerr.V("path", r.SecretsFile),
			goerr.V("key", key),
			goerr.T(ErrTagSecretsFile))
	}
}
