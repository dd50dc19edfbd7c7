package domain

import (
	interfaces "rsakit/internal/domain/interfaces"
	types "rsakit/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	KeyName           = types.KeyName
	Fingerprint       = types.Fingerprint
	Encoding          = types.Encoding
	EncodedPublicKey  = types.EncodedPublicKey
	EncodedPrivateKey = types.EncodedPrivateKey
	EncodedKeyPair    = types.EncodedKeyPair
	KeyEntry          = types.KeyEntry
)

const (
	EncodingDecimal = types.EncodingDecimal
	EncodingBase64  = types.EncodingBase64
	EncodingRunes   = types.EncodingRunes
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyService   = interfaces.KeyService
	KeyringStore = interfaces.KeyringStore
)
