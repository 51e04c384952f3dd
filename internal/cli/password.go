package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-crypto-utils/hashing"
)

func newPasswordCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Hash and verify passwords",
		Long: `Hash and verify passwords with bcrypt, argon2d, argon2i, argon2id or scrypt.

The default driver and its costs come from the hashing section of the
configuration.  Passwords are read from the argument, from stdin, or from an
echo-free prompt when stdin is a terminal.`,
		Args: argsInvalid(cobra.NoArgs),
	}
	cmd.AddCommand(
		newPasswordMakeCmd(a),
		newPasswordCheckCmd(a),
		newPasswordInfoCmd(a),
		newPasswordRehashCmd(a),
	)
	return cmd
}

func newPasswordMakeCmd(a *app) *cobra.Command {
	var driver string
	cmd := &cobra.Command{
		Use:     "make [password|-]",
		Short:   "Hash a password with the default driver",
		Example: `  cryptokit password make --driver scrypt`,
		Args:    argsInvalid(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.manager()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("driver") {
				if err := m.SetDefaultDriver(hashing.DriverName(driver)); err != nil {
					return fmt.Errorf("%w: %w", ErrInvalidInput, err)
				}
			}
			password, err := readPassword(cmd, args)
			if err != nil {
				return err
			}
			a.logger.Debug().Str("driver", string(m.DefaultDriver())).Msg("hashing password")
			hash, err := m.Make(password)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}
	cmd.Flags().StringVarP(&driver, "driver", "d", "", "driver to use instead of hashing.default")
	return cmd
}

func newPasswordCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <hash> [password|-]",
		Short: "Verify a password against a stored hash",
		Long: `Verify a password against a stored hash.  The driver is detected from the
hash.  Prints "ok" and exits 0 on a match, prints "mismatch" and exits 1
otherwise.`,
		Args: argsInvalid(cobra.RangeArgs(1, 2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.manager()
			if err != nil {
				return err
			}
			password, err := readPassword(cmd, args[1:])
			if err != nil {
				return err
			}
			ok, err := m.CheckWithDetect(password, args[0])
			if err != nil {
				return err
			}
			a.logger.Debug().Bool("match", ok).Msg("password checked")
			if !ok {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "mismatch")
				return ErrPasswordMismatch
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return err
		},
	}
}

func newPasswordInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <hash>",
		Short: "Show the driver and parameters of a stored hash",
		Args:  argsInvalid(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.manager()
			if err != nil {
				return err
			}
			info, err := m.InfoWithDetect(args[0])
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(info); err != nil {
				return fmt.Errorf("encode hash info: %w", err)
			}
			return enc.Close()
		},
	}
}

func newPasswordRehashCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "needs-rehash <hash>",
		Short: "Report whether a hash was made with outdated settings",
		Long: `Print "true" when the hash was produced by a driver other than the default,
or by the default driver with different costs, and "false" otherwise.`,
		Args: argsInvalid(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.manager()
			if err != nil {
				return err
			}
			needs, err := m.NeedsRehash(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), needs)
			return err
		},
	}
}

func (a *app) manager() (*hashing.Manager, error) {
	m, err := hashing.NewManagerWithOptions(a.cfg.Hashing)
	if err != nil {
		return nil, fmt.Errorf("build password hasher: %w", err)
	}
	return m, nil
}

// readPassword reads the password from args, an interactive prompt when
// stdin is a terminal, or stdin.
func readPassword(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
			b, err := term.ReadPassword(int(f.Fd()))
			_, _ = fmt.Fprintln(cmd.ErrOrStderr())
			if err != nil {
				return "", fmt.Errorf("read password: %w", err)
			}
			return string(b), nil
		}
	}
	b, err := readInput(cmd, args)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
