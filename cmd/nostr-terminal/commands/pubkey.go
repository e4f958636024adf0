package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pnmeka/nostr-terminal/internal/domain"
)

func pubkeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey",
		Short: "Print the public key of the configured secret key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pk, err := wire.Identity.PublicKey(cfg.Passphrase(passphrase))
			if err != nil {
				return err
			}
			printPublicKey(cmd, "", pk)
			return nil
		},
	}
}

func printPublicKey(cmd *cobra.Command, header string, pk domain.PublicKey) {
	out := cmd.OutOrStdout()
	if header != "" {
		fmt.Fprintln(out, header)
	}
	fmt.Fprintf(out, "Public key (hex): %s\nnpub: %s\nFingerprint: %s\n", pk.Hex, pk.NPub, pk.Fingerprint)
}
