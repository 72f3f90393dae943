// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// x/feepos - Locked-Amount Reader
//
// Thin wrapper around the vesting oracle collaborator (spec.md section
// 4.4): a pure function of external state at the current block time, with
// no caching or memoization beyond what the window controller freezes into
// Progress.LockedTotalThisWindow for the duration of one window.

package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/sovrn-protocol/feepos/x/feepos/types"
)

// LockedOf returns the still-locked amount for streamRef as of ctx's block
// time, delegating to the configured VestingKeeper.
func (k Keeper) LockedOf(ctx sdk.Context, streamRef string) (uint64, error) {
	locked, err := k.vestingKeeper.LockedOf(ctx, streamRef)
	if err != nil {
		return 0, sdkerrors.Wrap(types.ErrInvalidStreamAccount, err.Error())
	}
	return locked, nil
}

// sumLockedRefs reads LockedOf for every stream reference in refs (the
// full cohort declared at window open) and returns the total, failing
// closed on the first unreadable reference.
func (k Keeper) sumLockedRefs(ctx sdk.Context, refs []string) (uint64, error) {
	var total uint64
	for _, ref := range refs {
		locked, err := k.LockedOf(ctx, ref)
		if err != nil {
			return 0, err
		}
		total += locked
	}
	return total, nil
}
