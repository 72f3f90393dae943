// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// x/feepos - Genesis Import/Export

package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/sovrn-protocol/feepos/x/feepos/types"
)

// SetProgressForGenesis overwrites vault's Progress record directly,
// bypassing the distribution engine. Used only during InitGenesis, after
// InitPolicy has already created the zeroed default.
func (k Keeper) SetProgressForGenesis(ctx sdk.Context, progress types.Progress) {
	k.setProgress(ctx, progress)
}

// ExportGenesis dumps every Policy and its paired Progress record.
func (k Keeper) ExportGenesis(ctx sdk.Context) types.GenesisState {
	store := ctx.KVStore(k.storeKey)

	var policies []types.Policy
	policyIter := sdk.KVStorePrefixIterator(store, types.PolicyPrefix)
	defer policyIter.Close()
	for ; policyIter.Valid(); policyIter.Next() {
		var policy types.Policy
		k.cdc.MustUnmarshalBinaryBare(policyIter.Value(), &policy)
		policies = append(policies, policy)
	}

	var progresses []types.Progress
	progressIter := sdk.KVStorePrefixIterator(store, types.ProgressPrefix)
	defer progressIter.Close()
	for ; progressIter.Valid(); progressIter.Next() {
		var progress types.Progress
		k.cdc.MustUnmarshalBinaryBare(progressIter.Value(), &progress)
		progresses = append(progresses, progress)
	}

	return types.GenesisState{
		Policies:   policies,
		Progresses: progresses,
	}
}
