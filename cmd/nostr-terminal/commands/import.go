package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// import [nsec]: read an nsec from the argument or the first line of stdin.
func importCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "import [nsec]",
		Short: "Store an existing nsec secret key securely",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureWritable(force); err != nil {
				return err
			}
			pass := cfg.Passphrase(passphrase)
			if pass == "" {
				return fmt.Errorf("passphrase required (-p)")
			}

			var encoded string
			if len(args) == 1 {
				encoded = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read nsec from stdin: %w", err)
				}
				encoded = line
			}
			if strings.TrimSpace(encoded) == "" {
				return fmt.Errorf("no nsec given")
			}

			pk, err := wire.Identity.ImportKey(pass, encoded)
			if err != nil {
				return err
			}
			printPublicKey(cmd, "Key imported.", pk)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing key")
	return cmd
}
