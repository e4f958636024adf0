package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a secret key and store it securely",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureWritable(force); err != nil {
				return err
			}
			pass := cfg.Passphrase(passphrase)
			if pass == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			pk, err := wire.Identity.GenerateKey(pass)
			if err != nil {
				return err
			}
			printPublicKey(cmd, "Key created.", pk)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing key")
	return cmd
}

// ensureWritable refuses to replace a stored key unless force is set.
func ensureWritable(force bool) error {
	if force {
		return nil
	}
	ok, err := wire.Keys.HasSecretKey()
	if err != nil {
		return err
	}
	if ok {
		return fmt.Errorf("a key is already stored in %s (use --force to replace it)", cfg.Home)
	}
	return nil
}
