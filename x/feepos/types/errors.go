// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// x/feepos - Error Definitions
//
// One sentinel per row of the error taxonomy. DailyCapExceeded is
// deliberately absent from this list: the engine truncates to the
// remaining cap internally and never surfaces it to the caller.

package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var (
	ErrPolicyAlreadyExists   = sdkerrors.Register(ModuleName, 2, "policy already initialized for vault")
	ErrPolicyNotFound        = sdkerrors.Register(ModuleName, 3, "no policy initialized for vault")
	ErrInvalidShareBps       = sdkerrors.Register(ModuleName, 4, "investor share bps must be in [0, 10000]")
	ErrInvalidY0             = sdkerrors.Register(ModuleName, 5, "y0 must be non-zero")
	ErrInvalidQuoteMint      = sdkerrors.Register(ModuleName, 6, "account is not denominated in the vault's quote asset")
	ErrInvalidTreasury       = sdkerrors.Register(ModuleName, 7, "treasury is not denominated in the vault's quote asset")
	ErrBaseFeesInClaim       = sdkerrors.Register(ModuleName, 8, "AMM claim returned a non-zero base-asset amount")
	ErrCooldownNotElapsed    = sdkerrors.Register(ModuleName, 9, "24h window has not elapsed since window_start_ts")
	ErrInvalidPaginationCursor = sdkerrors.Register(ModuleName, 10, "expected_cursor does not match stored cursor, or first page is not the full cohort")
	ErrInvalidStreamAccount  = sdkerrors.Register(ModuleName, 11, "stream account does not belong to the expected cohort or quote asset")
	ErrArithmeticOverflow    = sdkerrors.Register(ModuleName, 12, "128-bit intermediate product exceeds the arithmetic domain")
	ErrDistributionComplete  = sdkerrors.Register(ModuleName, 13, "window is already day_complete; nothing to finalize")
	ErrEmptyCohortPage       = sdkerrors.Register(ModuleName, 14, "page must contain at least one cohort entry")
)
