// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// x/feepos - Expected Keeper Interfaces
//
// Narrow capability interfaces for the collaborators spec.md section 6
// calls out as external: the AMM, the vesting/streaming oracle, and the
// token-transfer primitive. A host chain supplies concrete implementations;
// tests supply in-memory fakes (see testutil).

package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// AccountKeeper defines the expected account keeper interface, used to
// resolve the module-owned treasury account.
type AccountKeeper interface {
	GetModuleAddress(name string) sdk.AccAddress
	GetModuleAccount(ctx sdk.Context, name string) authtypes.ModuleAccountI
}

// BankKeeper defines the expected bank keeper interface: the black-box
// transfer(from, to, amount) primitive of spec.md section 1, plus balance
// reads. The keeper does not call the balance reads; it performs no
// quote-asset denomination check on recipients.
type BankKeeper interface {
	SendCoinsFromModuleToAccount(ctx sdk.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx sdk.Context, addr sdk.AccAddress, denom string) sdk.Coin
	GetAllBalances(ctx sdk.Context, addr sdk.AccAddress) sdk.Coins
}

// AmmKeeper is the collaborator owning the honorary position and
// its quote-only fee accrual (spec.md section 1, "out of scope"). Claiming
// is the only operation the engine needs from it.
type AmmKeeper interface {
	// ClaimFees claims accrued fees from position into the treasury module
	// account and reports the amounts claimed, split by asset role. The
	// engine requires baseAmount == 0; a non-zero base amount is a hard
	// failure (spec.md section 7, BaseFeesInClaim).
	ClaimFees(ctx sdk.Context, position string, treasury sdk.AccAddress) (quoteAmount sdk.Coin, baseAmount sdk.Coin, err error)
}

// VestingKeeper is the read-only streaming-vesting oracle of spec.md
// section 4.4: a pure function of external state at the current
// timestamp, returning the still-locked amount for a stream reference.
type VestingKeeper interface {
	// LockedOf returns the currently-locked amount for streamRef. It must
	// fail with an error the keeper maps to InvalidStreamAccount if
	// streamRef does not belong to the expected cohort or quote asset.
	LockedOf(ctx sdk.Context, streamRef string) (uint64, error)
}
