package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-crypto-utils/codec"
)

// maxRandomLength bounds "random" so a typo cannot allocate gigabytes.
const maxRandomLength = 1 << 20

func newRandomCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "random [length]",
		Short: "Print cryptographically random bytes",
		Long: fmt.Sprintf(`Print length random bytes from the operating system CSPRNG.

length defaults to %d and may not exceed %d.`, codec.DefaultRandomLength, maxRandomLength),
		Example: `  cryptokit random
  cryptokit random 16 --format base64`,
		Args: argsInvalid(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := codec.DefaultRandomLength
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil || v < 0 || v > maxRandomLength {
					return fmt.Errorf("%w: length must be an integer in [0, %d], got %q",
						ErrInvalidInput, maxRandomLength, args[0])
				}
				n = v
			}
			a.logger.Debug().Int("length", n).Msg("generating random bytes")
			return a.writeBytes(cmd, codec.RandomBytes(n))
		},
	}
}
