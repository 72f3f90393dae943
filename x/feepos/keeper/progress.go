// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// x/feepos - Progress Store Accessors

package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/sovrn-protocol/feepos/x/feepos/types"
)

// GetProgress fetches the Progress record for vault, if one exists.
func (k Keeper) GetProgress(ctx sdk.Context, vault types.VaultID) (types.Progress, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.ProgressKey(vault))
	if bz == nil {
		return types.Progress{}, false
	}

	var progress types.Progress
	k.cdc.MustUnmarshalBinaryBare(bz, &progress)
	return progress, true
}

// setProgress writes progress to the store, overwriting any prior record.
func (k Keeper) setProgress(ctx sdk.Context, progress types.Progress) {
	store := ctx.KVStore(k.storeKey)
	bz := k.cdc.MustMarshalBinaryBare(&progress)
	store.Set(types.ProgressKey(progress.Vault), bz)
}
