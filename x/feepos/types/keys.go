// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// x/feepos - Constants and Store Keys

package types

import "github.com/sovrn-protocol/feepos/shared"

const (
	// ModuleName defines the module name
	ModuleName = shared.ModuleName

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_feepos"
)

// Store key prefixes. Policy and Progress are both keyed by vault identity,
// so they live under disjoint prefixes of the same module store.
var (
	// PolicyPrefix prefixes a vault's immutable-after-init Policy record.
	PolicyPrefix = []byte{0x01}

	// ProgressPrefix prefixes a vault's mutable Progress record.
	ProgressPrefix = []byte{0x02}
)

// PolicyKey returns the store key for a vault's Policy record.
func PolicyKey(vault VaultID) []byte {
	return append(append([]byte{}, PolicyPrefix...), vault[:]...)
}

// ProgressKey returns the store key for a vault's Progress record.
func ProgressKey(vault VaultID) []byte {
	return append(append([]byte{}, ProgressPrefix...), vault[:]...)
}
