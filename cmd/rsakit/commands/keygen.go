package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"rsakit/internal/domain"
)

// keygen <name>: generate a key pair and store it under <name>.
func keygenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen <name>",
		Short: "Generate a key pair and store it in the keyring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			entry, err := wire.Keys.Generate(cmd.Context(), passphrase, domain.KeyName(args[0]), cfg.Bits)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Key %s created (%d bits).\nFingerprint: %s\n", entry.Name, entry.Bits, entry.Fingerprint)
			return nil
		},
	}
	cmd.Flags().Int("bits", 1024, "modulus size in bits")
	return cmd
}
