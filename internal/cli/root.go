// Package cli provides the command-line interface for cryptokit.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-crypto-utils/internal/config"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// GlobalFlags holds flags available to all commands.
type GlobalFlags struct {
	// ConfigFile overrides ~/.cryptokit/config.yaml.
	ConfigFile string
	// Format selects hex or base64 for binary output.
	Format string
	// Verbose enables debug-level logging.
	Verbose bool
	// Quiet suppresses everything below warn.
	Quiet bool
}

// app carries the state shared by every subcommand once the root command's
// PersistentPreRunE has run.
type app struct {
	flags  *GlobalFlags
	cfg    *config.Config
	logger zerolog.Logger
}

func newApp() *app {
	return &app{flags: &GlobalFlags{}, cfg: config.Default(), logger: zerolog.Nop()}
}

// AddGlobalFlags adds global flags to a command.
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	cmd.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", "", "config file (default ~/.cryptokit/config.yaml)")
	cmd.PersistentFlags().StringVarP(&flags.Format, "format", "f", string(config.FormatHex), "binary output format (hex|base64)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "log warnings and errors only")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

func newRootCmd(a *app, info BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cryptokit",
		Short: "Encode, digest and derive keys from the command line",
		Long: `cryptokit exposes the encoding, digest and password-hashing facades.

Every operation reports failures as <Category>: <cause>, where the category
is EncodingError, HashingError or PasswordHashingError.

Binary results are printed as hex unless --format base64 is given or
output.format is set in the configuration.`,
		Version: formatVersion(info),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	})

	AddGlobalFlags(cmd, a.flags)

	cmd.AddCommand(
		newHashCmd(a),
		newKDFCmd(a),
		newEncodeCmd(a),
		newDecodeCmd(a),
		newRandomCmd(a),
		newPasswordCmd(a),
		newConfigCmd(a),
	)
	return cmd
}

// setup loads configuration and builds the logger.  Flags win over the
// environment, which wins over the config file.
func (a *app) setup(cmd *cobra.Command) error {
	a.logger = InitLogger(cmd.ErrOrStderr(), a.flags.Verbose, a.flags.Quiet, "")
	ctx := a.logger.WithContext(cmd.Context())

	overrides := &config.Config{}
	if cmd.Flags().Changed("format") {
		if err := overrides.Output.Format.UnmarshalText([]byte(a.flags.Format)); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	cfg, err := config.LoadWithOverrides(ctx, a.flags.ConfigFile, overrides)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.logger = InitLogger(cmd.ErrOrStderr(), a.flags.Verbose, a.flags.Quiet, cfg.Log.Level)
	cmd.SetContext(a.logger.WithContext(cmd.Context()))
	a.logger.Debug().Str("command", cmd.CommandPath()).Msg("starting")
	return nil
}

func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the CLI with os.Args and returns the process exit code.
func Execute(ctx context.Context, info BuildInfo) int {
	return run(ctx, info, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(ctx context.Context, info BuildInfo, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := newApp()
	cmd := newRootCmd(a, info)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.ExecuteContext(ctx)
	a.report(cmd, err)
	return ExitCodeForError(err)
}
