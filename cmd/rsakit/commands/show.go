package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"rsakit/internal/domain"
)

func showCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a stored public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := wire.Keys.Entry(domain.KeyName(args[0]))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(e.PublicKey)
			}
			fmt.Fprintf(out, "Name:        %s\nBits:        %d\nFingerprint: %s\ne:           %s\nn:           %s\n",
				e.Name, e.Bits, e.Fingerprint, e.PublicKey.E, e.PublicKey.N)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the public key as {\"e\",\"n\"} JSON")
	return cmd
}
