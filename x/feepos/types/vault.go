// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// x/feepos - Vault Identity
//
// VaultID is the opaque 32-byte tag that scopes all per-deployment state
// (spec.md section 3). It is immutable once a Policy exists for it.

package types

import (
	"encoding/hex"
	"fmt"
)

// VaultID is a 32-byte opaque identifier scoping Policy and Progress state.
type VaultID [32]byte

// String renders the vault id as a lowercase hex string, mirroring the
// 64-character hex identifiers used elsewhere in the stack for hashes.
func (v VaultID) String() string {
	return hex.EncodeToString(v[:])
}

// Bytes returns the vault id's raw bytes, suitable for use as a store key
// suffix.
func (v VaultID) Bytes() []byte {
	return v[:]
}

// IsZero reports whether the vault id is the zero value (never a valid,
// initialized vault).
func (v VaultID) IsZero() bool {
	return v == VaultID{}
}

// ParseVaultID decodes a 64-character hex string into a VaultID.
func ParseVaultID(s string) (VaultID, error) {
	var v VaultID
	if len(s) != 64 {
		return v, fmt.Errorf("invalid vault id length: expected 64 hex characters, got %d", len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return v, fmt.Errorf("invalid vault id: %w", err)
	}
	copy(v[:], b)
	return v, nil
}
