// Package crypto implements the textbook RSA primitives used by rsakit.
//
// Contents
//
//   - Probable-prime generation and Miller-Rabin testing (PrimeGenerator,
//     IsProbablyPrime)
//   - Modular inverse by iterative extended Euclid (ModInverse)
//   - Key pair generation with e = 65537 (KeyGenerator)
//   - Per-code-point encryption and decryption (Encrypt, Decrypt)
//   - Ciphertext transport encodings (EncodeCiphertext, DecodeCiphertext)
//   - Short public-key fingerprints for display (Fingerprint)
//
// # Errors
//
// Failures are reported through four sentinels matched with errors.Is:
// ErrInvalidParameter, ErrInvalidKeyMaterial, ErrNonTerminatingGeneration and
// ErrEncodingOverflow. Every generation loop is bounded, so a pathological
// random source ends in ErrNonTerminatingGeneration rather than a hang.
//
// # Notes
//
// There is no padding and no blinding. Each message unit is one Unicode code
// point, so identical characters encrypt to identical ciphertext units. Use
// this for learning, not for protecting data.
package crypto
