// Command cuuidbase is a small stdin/stdout front end for the base-59
// codec: it encodes arbitrary bytes to text with a trailing checksum
// character, or decodes text back to bytes, verifying that checksum. Input
// starting with a 0x00 byte does not round-trip — see the EncodeToString
// doc comment in package basex — so this is a codec for CUUID's own
// nonzero-tagged records, not a general-purpose byte-to-text tool.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/compactid/cuuid/basex"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var decode bool

	cmd := &cobra.Command{
		Use:   "cuuidbase",
		Short: "Encode or decode stdin using the CUUID base-59 alphabet",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := io.ReadAll(bufio.NewReader(cmd.InOrStdin()))
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}

			if decode {
				text := trimNewline(input)
				out, err := basex.Base59.DecodeString(string(text))
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}

			out := basex.Base59.EncodeToString(input)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVarP(&decode, "decode", "d", false, "decode stdin instead of encoding it")
	return cmd
}

func trimNewline(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}
