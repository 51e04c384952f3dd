package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-crypto-utils/codec"
	"github.com/hasbyte1/go-crypto-utils/internal/config"
	"github.com/hasbyte1/go-crypto-utils/result"
)

// report prints err as "<Category>: <cause>" on stderr.  The category is
// also logged at debug level for scripted callers running with -v.
func (a *app) report(cmd *cobra.Command, err error) {
	if err == nil {
		return
	}
	event := a.logger.Debug().Err(err).Int("exit_code", ExitCodeForError(err))
	var f *result.Failure
	if errors.As(err, &f) {
		event = event.Str("category", f.Category.String())
	}
	event.Msg("command failed")
	_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err.Error())
}

// writeBytes prints b in the configured output format followed by a newline.
func (a *app) writeBytes(cmd *cobra.Command, b []byte) error {
	var r result.Result[string]
	switch a.cfg.Output.Format {
	case config.FormatBase64:
		r = codec.BytesToBase64(b)
	default:
		r = codec.BytesToHex(b)
	}
	s, err := r.Unwrap()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
	return err
}

// readInput returns args[0], or stdin when there is no argument or the
// argument is "-".  A single trailing newline is stripped from stdin so that
// "echo foo | cryptokit hash sha256" digests "foo".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) > 0 && args[0] != "-" {
		return []byte(args[0]), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	s := strings.TrimSuffix(string(b), "\n")
	return []byte(strings.TrimSuffix(s, "\r")), nil
}

// hexFlag decodes an optional hex-encoded flag.  Unset flags yield nil so
// that "not given" and "given but empty" stay distinguishable.
func hexFlag(cmd *cobra.Command, name, value string) ([]byte, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	b, err := codec.HexToBytes(value).Unwrap()
	if err != nil {
		return nil, fmt.Errorf("%w: --%s: %w", ErrInvalidInput, name, err)
	}
	if b == nil {
		b = []byte{}
	}
	return b, nil
}

// argsInvalid wraps a cobra positional-args validator so its errors map to
// ExitInvalidInput.
func argsInvalid(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil
	}
}
