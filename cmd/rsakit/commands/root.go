package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"rsakit/internal/app"
	"rsakit/internal/config"
	"rsakit/internal/logging"
)

const passphraseEnv = "RSAKIT_PASSPHRASE"

var (
	configFile string
	passphrase string
	cfg        config.Config
	wire       *app.Wire
)

// Execute runs the CLI, cancelling long operations on interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	configFile, passphrase = "", ""
	cfg, wire = config.Config{}, nil

	root := &cobra.Command{
		Use:          "rsakit",
		Short:        "Textbook RSA key generation and encryption",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetOutput(cmd.ErrOrStderr())

			file := configFile
			if cmd.Name() == "init" {
				// init creates the file, so it need not exist yet.
				file = ""
			}
			c, err := config.Load(cmd, file)
			if err != nil {
				return err
			}
			if err := logging.SetLevel(c.Log.Level); err != nil {
				return err
			}
			cfg = c
			logging.Debugf("home %s, bits %d, encoding %s", cfg.Home, cfg.Bits, cfg.Encoding)

			if passphrase == "" {
				passphrase = os.Getenv(passphraseEnv)
			}

			w, err := app.NewWire(app.Config{
				Home:             cfg.Home,
				MaxKeyAttempts:   cfg.Generation.MaxKeyAttempts,
				MaxPrimeAttempts: cfg.Generation.MaxPrimeAttempts,
			})
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.String("home", "", "keyring dir (default ~/.rsakit)")
	pf.StringVar(&configFile, "config", "", "config file (default <home>/rsakit.yaml)")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting private keys (or $"+passphraseEnv+")")
	pf.Int("max-key-attempts", 0, "key pair resample cap (0 = default)")
	pf.Int("max-prime-attempts", 0, "candidate cap per prime (0 = scale with size)")

	root.AddCommand(
		initCmd(),
		keygenCmd(),
		listCmd(),
		showCmd(),
		rmCmd(),
		encryptCmd(),
		decryptCmd(),
		isPrimeCmd(),
		modInvCmd(),
	)

	root.SetErrPrefix("rsakit:")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w\nsee '%s --help'", err, cmd.CommandPath())
	})
	return root
}

func requirePassphrase() error {
	if passphrase == "" {
		return fmt.Errorf("passphrase required (-p or $%s)", passphraseEnv)
	}
	return nil
}
