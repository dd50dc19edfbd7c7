// Package commands defines the rsakit CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init      Create the home directory and a default rsakit.yaml
//   - keygen    Generate a named key pair into the keyring
//   - list      List stored keys
//   - show      Print a stored public key
//   - rm        Delete a stored key
//   - encrypt   Encrypt a message with a stored public key
//   - decrypt   Decrypt a ciphertext with a stored private key
//   - isprime   Run the Miller-Rabin test on an integer
//   - modinv    Compute a modular inverse
//
// # Implementation
//
// The root command resolves configuration (flags, RSAKIT_* environment,
// rsakit.yaml, defaults) and builds the dependency graph before any subcommand
// runs. Results go to stdout and logs to stderr.
package commands
