package cli

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-crypto-utils/codec"
	"github.com/hasbyte1/go-crypto-utils/internal/config"
)

func newEncodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <hex|base64> [input|-]",
		Short: "Encode UTF-8 text as hex or base64",
		Example: `  cryptokit encode hex hello
  cryptokit encode base64 - < file.txt`,
		Args:      argsInvalid(cobra.RangeArgs(1, 2)),
		ValidArgs: []string{string(config.FormatHex), string(config.FormatBase64)},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(args[0])
			if err != nil {
				return err
			}
			in, err := readInput(cmd, args[1:])
			if err != nil {
				return err
			}
			a.logger.Debug().Str("format", string(format)).Int("input_len", len(in)).Msg("encoding")
			a.cfg.Output.Format = format
			return a.writeBytes(cmd, in)
		},
	}
}

func newDecodeCmd(a *app) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "decode <hex|base64> [text|-]",
		Short: "Decode hex or base64 text",
		Long: `Decode hex or base64 text and print the bytes as UTF-8.

With --raw the decoded bytes are written unchanged, without a trailing newline.
Bytes that are not valid UTF-8 are printed as a quoted Go string otherwise.

URL-safe base64 may start with "-"; pass it after "--" or on stdin so it is
not read as a flag.`,
		Example: `  cryptokit decode hex 68656c6c6f
  cryptokit decode base64 aGVsbG8= --raw > out.bin
  cryptokit decode base64 -- -_8AEA==`,
		Args:      argsInvalid(cobra.RangeArgs(1, 2)),
		ValidArgs: []string{string(config.FormatHex), string(config.FormatBase64)},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(args[0])
			if err != nil {
				return err
			}
			in, err := readInput(cmd, args[1:])
			if err != nil {
				return err
			}
			a.logger.Debug().Str("format", string(format)).Int("input_len", len(in)).Msg("decoding")

			decode := codec.HexToBytes
			if format == config.FormatBase64 {
				decode = codec.Base64ToBytes
			}
			b, err := decode(string(in)).Unwrap()
			if err != nil {
				return err
			}
			if raw {
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}
			text := codec.BytesToUTF8(b)
			if !utf8.Valid(b) {
				text = strconv.Quote(text)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "write decoded bytes unchanged")
	return cmd
}

func parseFormat(s string) (config.Format, error) {
	var f config.Format
	if err := f.UnmarshalText([]byte(s)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return f, nil
}
