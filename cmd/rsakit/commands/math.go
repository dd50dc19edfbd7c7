package commands

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"rsakit/internal/crypto"
)

func isPrimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "isprime <n>",
		Short: "Report whether n is probably prime (Miller-Rabin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}
			verdict := "composite"
			if crypto.IsProbablyPrime(n) {
				verdict = "probably prime"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", n, verdict)
			return nil
		},
	}
}

func modInvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modinv <a> <m>",
		Short: "Compute the inverse of a modulo m",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseInt(args[0])
			if err != nil {
				return err
			}
			m, err := parseInt(args[1])
			if err != nil {
				return err
			}
			x, err := crypto.ModInverse(a, m)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), x)
			return nil
		},
	}
}

// parseInt accepts decimal or 0x/0o/0b prefixed integers.
func parseInt(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an integer", crypto.ErrInvalidParameter, s)
	}
	return n, nil
}
