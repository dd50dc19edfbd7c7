package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"rsakit/internal/crypto"
	"rsakit/internal/domain"
)

// encrypt <name> [message]: encrypt with the public key stored under <name>.
func encryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt <name> [message]",
		Short: "Encrypt a message (or stdin) with a stored public key",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := crypto.ParseEncoding(cfg.Encoding)
			if err != nil {
				return err
			}
			msg, err := argOrStdin(cmd, args, 1, true)
			if err != nil {
				return err
			}
			out, err := wire.Keys.Encrypt(domain.KeyName(args[0]), msg, enc)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	addEncodingFlag(cmd)
	return cmd
}

// decrypt <name> [ciphertext]: decrypt with the private key stored under <name>.
func decryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt <name> [ciphertext]",
		Short: "Decrypt a ciphertext (or stdin) with a stored private key",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			enc, err := crypto.ParseEncoding(cfg.Encoding)
			if err != nil {
				return err
			}
			// Every character of a runes ciphertext is a unit, whitespace included.
			trim := enc != crypto.EncodingRunes
			text, err := argOrStdin(cmd, args, 1, trim)
			if err != nil {
				return err
			}
			if trim {
				text = strings.TrimSpace(text)
			}
			msg, err := wire.Keys.Decrypt(passphrase, domain.KeyName(args[0]), text, enc)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
	addEncodingFlag(cmd)
	return cmd
}

func addEncodingFlag(cmd *cobra.Command) {
	names := make([]string, len(crypto.Encodings))
	for i, e := range crypto.Encodings {
		names[i] = e.String()
	}
	cmd.Flags().String("encoding", crypto.EncodingDecimal.String(), "ciphertext encoding ("+strings.Join(names, ", ")+")")
}

// argOrStdin returns args[i], or all of stdin when the argument is absent.
// trimNewline drops one trailing newline from stdin.
func argOrStdin(cmd *cobra.Command, args []string, i int, trimNewline bool) (string, error) {
	if len(args) > i {
		return args[i], nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	if trimNewline {
		return strings.TrimSuffix(string(b), "\n"), nil
	}
	return string(b), nil
}
