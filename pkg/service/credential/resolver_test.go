package credential_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/issue-triage/pkg/service/credential"
)

func writeSecrets(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "secrets.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestResolver(t *testing.T) {
	t.Run("explicit value wins", func(t *testing.T) {
		r := credential.Resolver{
			Value:       "from-env",
			SecretsFile: writeSecrets(t, `GOOGLE_API_KEY = "from-file"`),
		}
		key, err := r.Resolve()
		gt.NoError(t, err)
		gt.Equal(t, key, "from-env")
	})

	t.Run("falls back to secrets file", func(t *testing.T) {
		r := credential.Resolver{SecretsFile: writeSecrets(t, `GOOGLE_API_KEY = "from-file"`)}
		key, err := r.Resolve()
		gt.NoError(t, err)
		gt.Equal(t, key, "from-file")
	})

	t.Run("custom secrets key", func(t *testing.T) {
		r := credential.Resolver{
			SecretsFile: writeSecrets(t, "GEMINI_KEY = \"k\"\n"),
			SecretsKey:  "GEMINI_KEY",
		}
		key, err := r.Resolve()
		gt.NoError(t, err)
		gt.Equal(t, key, "k")
	})

	t.Run("nothing configured", func(t *testing.T) {
		key, err := (&credential.Resolver{}).Resolve()
		gt.NoError(t, err)
		gt.Equal(t, key, "")
	})

	t.Run("missing secrets file is not an error", func(t *testing.T) {
		r := credential.Resolver{SecretsFile: filepath.Join(t.TempDir(), "missing.toml")}
		key, err := r.Resolve()
		gt.NoError(t, err)
		gt.Equal(t, key, "")
	})

	t.Run("key absent from secrets file", func(t *testing.T) {
		r := credential.Resolver{SecretsFile: writeSecrets(t, `OTHER = "x"`)}
		key, err := r.Resolve()
		gt.NoError(t, err)
		gt.Equal(t, key, "")
	})

	t.Run("malformed secrets file", func(t *testing.T) {
		r := credential.Resolver{SecretsFile: writeSecrets(t, `GOOGLE_API_KEY = `)}
		_, err := r.Resolve()
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, credential.ErrTagSecretsFile))
	})

	t.Run("non-string secret", func(t *testing.T) {
		r := credential.Resolver{SecretsFile: writeSecrets(t, `GOOGLE_API_KEY = 42`)}
		_, err := r.Resolve()
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, credential.ErrTagSecretsFile))
	})
}
