package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := wire.Keys.List()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no keys")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tBITS\tFINGERPRINT\tCREATED")
			for _, e := range entries {
				created := time.Unix(e.CreatedUTC, 0).UTC().Format(time.RFC3339)
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", e.Name, e.Bits, e.Fingerprint, created)
			}
			return tw.Flush()
		},
	}
}
