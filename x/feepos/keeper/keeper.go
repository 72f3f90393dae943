// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// x/feepos - Keeper
//
// The feepos keeper owns Policy and Progress state for every vault and
// coordinates the window/claim controller and distribution engine against
// the AMM, vesting oracle and bank collaborators.

package keeper

import (
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/sovrn-protocol/feepos/x/feepos/types"
)

// Keeper of the feepos store.
type Keeper struct {
	cdc      *codec.LegacyAmino
	storeKey sdk.StoreKey
	memKey   sdk.StoreKey

	accountKeeper types.AccountKeeper
	bankKeeper    types.BankKeeper
	ammKeeper     types.AmmKeeper
	vestingKeeper types.VestingKeeper
}

// NewKeeper creates a new feepos Keeper instance.
func NewKeeper(
	cdc *codec.LegacyAmino,
	storeKey sdk.StoreKey,
	memKey sdk.StoreKey,
	accountKeeper types.AccountKeeper,
	bankKeeper types.BankKeeper,
	ammKeeper types.AmmKeeper,
	vestingKeeper types.VestingKeeper,
) Keeper {
	return Keeper{
		cdc:           cdc,
		storeKey:      storeKey,
		memKey:        memKey,
		accountKeeper: accountKeeper,
		bankKeeper:    bankKeeper,
		ammKeeper:     ammKeeper,
		vestingKeeper: vestingKeeper,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// TreasuryAddress returns the module account that holds claimed quote-asset
// fees in transit between claim and distribution.
func (k Keeper) TreasuryAddress() sdk.AccAddress {
	return k.accountKeeper.GetModuleAddress(types.ModuleName)
}
