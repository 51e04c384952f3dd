package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// fastConfig keeps every password driver cheap enough for unit tests.
const fastConfig = `
hashing:
  default: scrypt
  bcrypt:
    cost: 4
  argon2:
    memory: 16
    time: 1
    threads: 2
    key_len: 16
    salt_len: 8
  scrypt:
    n: 16
    r: 1
    p: 1
    key_len: 16
    salt_len: 8
`

type runResult struct {
	stdout string
	stderr string
	code   int
}

// isolate points HOME at an empty directory and clears CRYPTOKIT_ variables
// that may be set in the developer's shell.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, kv := range os.Environ() {
		if name, _, _ := strings.Cut(kv, "="); strings.HasPrefix(name, "CRYPTOKIT_") {
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}
	}
	return home
}

func writeFastConfig(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(fastConfig), 0o600))
	return p
}

func runCLI(t *testing.T, stdin string, args ...string) runResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	var in io.Reader = strings.NewReader(stdin)
	code := run(context.Background(), BuildInfo{Version: "test"}, args, in, &stdout, &stderr)
	return runResult{stdout: stdout.String(), stderr: stderr.String(), code: code}
}
