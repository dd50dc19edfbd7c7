package app

import "io"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home             string    // keyring directory, e.g. $HOME/.rsakit
	MaxKeyAttempts   int       // key pair resample cap; 0 selects the default
	MaxPrimeAttempts int       // candidate cap per prime; 0 scales with bit length
	Rand             io.Reader // optional; defaults to crypto/rand.Reader
}
