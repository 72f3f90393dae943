// Package shared holds protocol-wide constants referenced by more than one
// x/feepos component, so that the window length, basis-point denominator
// and module account naming scheme live in exactly one place.
package shared

import "time"

// ============================================================================
// Protocol identity
// ============================================================================

const (
	// ModuleName is the canonical name of the fee-distribution module.
	ModuleName = "feepos"

	// ProtocolTagline documents the module's purpose for CLI banners.
	ProtocolTagline = "Honorary-position quote-fee distribution engine"
)

// ============================================================================
// Distribution window
// ============================================================================

const (
	// WindowLength is the crank window: at most one claim per vault per
	// WindowLength, per spec.md section 4.5.
	WindowLength = 24 * time.Hour

	// WindowLengthSeconds is WindowLength expressed in the unix-second
	// arithmetic the keeper actually stores and compares.
	WindowLengthSeconds int64 = 86400
)

// ============================================================================
// Basis-point arithmetic
// ============================================================================

const (
	// BpsDenominator is the scale of all basis-point fields (investor share,
	// eligible share, f_locked). 10000 bps == 100%.
	BpsDenominator uint64 = 10000
)

// ============================================================================
// Module account naming
// ============================================================================

const (
	// TreasuryAccountSuffix is the position-owner naming seed. The keeper
	// does not use it: every vault's treasury is the single feepos module
	// account returned by Keeper.TreasuryAddress.
	TreasuryAccountSuffix = "investor_fee_pos_owner"
)
