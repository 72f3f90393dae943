// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// x/feepos - Policy Store Accessors

package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/sovrn-protocol/feepos/x/feepos/types"
)

// GetPolicy fetches the Policy record for vault, if one exists.
func (k Keeper) GetPolicy(ctx sdk.Context, vault types.VaultID) (types.Policy, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.PolicyKey(vault))
	if bz == nil {
		return types.Policy{}, false
	}

	var policy types.Policy
	k.cdc.MustUnmarshalBinaryBare(bz, &policy)
	return policy, true
}

// setPolicy writes policy to the store, overwriting any prior record.
func (k Keeper) setPolicy(ctx sdk.Context, policy types.Policy) {
	store := ctx.KVStore(k.storeKey)
	bz := k.cdc.MustMarshalBinaryBare(&policy)
	store.Set(types.PolicyKey(policy.Vault), bz)
}

// HasPolicy reports whether vault has already been initialized.
func (k Keeper) HasPolicy(ctx sdk.Context, vault types.VaultID) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has(types.PolicyKey(vault))
}

// InitPolicy creates vault's Policy and zeroed Progress record. It fails if
// a policy already exists for vault (spec.md section 4.1: "one-time setup,
// fails if already initialized").
func (k Keeper) InitPolicy(ctx sdk.Context, policy types.Policy) error {
	if err := policy.Validate(); err != nil {
		return err
	}
	if k.HasPolicy(ctx, policy.Vault) {
		return types.ErrPolicyAlreadyExists
	}

	k.setPolicy(ctx, policy)
	k.setProgress(ctx, types.NewProgress(policy.Vault))

	k.Logger(ctx).Info("feepos: vault initialized",
		"vault", policy.Vault.String(),
		"position", policy.Position,
		"investor_share_bps", policy.InvestorShareBps,
	)

	return nil
}
