// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// testutil - In-Memory Keeper Harness
//
// Builds a feepos Keeper backed by a real bank/auth keeper pair over an
// in-memory store, so distribution tests exercise real coin transfers
// instead of a faked bank.

package testutil

import (
	"testing"

	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/store"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	paramskeeper "github.com/cosmos/cosmos-sdk/x/params/keeper"
	paramstypes "github.com/cosmos/cosmos-sdk/x/params/types"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	tmdb "github.com/tendermint/tm-db"

	"github.com/sovrn-protocol/feepos/x/feepos/keeper"
	"github.com/sovrn-protocol/feepos/x/feepos/types"
)

// Fixture bundles a feepos Keeper with the in-memory bank it settles
// transfers against, for assertions on recipient balances.
type Fixture struct {
	Ctx        sdk.Context
	Keeper     keeper.Keeper
	BankKeeper bankkeeper.Keeper
	Vesting    *FakeVestingKeeper
	Amm        *FakeAmmKeeper
}

var maccPerms = map[string][]string{
	types.ModuleName:       {authtypes.Minter, authtypes.Burner},
	authtypes.FeeCollectorName: nil,
}

// NewFixture builds a feepos Keeper over fresh in-memory stores, with a
// real bank/auth keeper pair and fakeable Amm/vesting collaborators.
func NewFixture(t testing.TB) Fixture {
	storeKey := sdk.NewKVStoreKey(types.StoreKey)
	memKey := storetypes.NewMemoryStoreKey(types.MemStoreKey)
	bankStoreKey := sdk.NewKVStoreKey(banktypes.StoreKey)
	authStoreKey := sdk.NewKVStoreKey(authtypes.StoreKey)
	paramsStoreKey := sdk.NewKVStoreKey(paramstypes.StoreKey)
	paramsTStoreKey := sdk.NewTransientStoreKey(paramstypes.TStoreKey)

	db := tmdb.NewMemDB()
	stateStore := store.NewCommitMultiStore(db)
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(memKey, storetypes.StoreTypeMemory, nil)
	stateStore.MountStoreWithDB(bankStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(authStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(paramsStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(paramsTStoreKey, storetypes.StoreTypeTransient, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	authtypes.RegisterInterfaces(registry)
	banktypes.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)
	legacyAmino := codec.NewLegacyAmino()

	paramsKeeper := paramskeeper.NewKeeper(cdc, legacyAmino, paramsStoreKey, paramsTStoreKey)
	paramsKeeper.Subspace(authtypes.ModuleName)
	paramsKeeper.Subspace(banktypes.ModuleName)
	authSubspace, _ := paramsKeeper.GetSubspace(authtypes.ModuleName)
	bankSubspace, _ := paramsKeeper.GetSubspace(banktypes.ModuleName)

	accountKeeper := authkeeper.NewAccountKeeper(
		cdc, authStoreKey, authSubspace, authtypes.ProtoBaseAccount, maccPerms,
	)
	bk := bankkeeper.NewBaseKeeper(
		cdc, bankStoreKey, accountKeeper, bankSubspace, nil,
	)

	ctx := sdk.NewContext(stateStore, tmproto.Header{}, false, log.NewNopLogger())

	amm := &FakeAmmKeeper{Bank: bk}
	vesting := NewFakeVestingKeeper()

	k := keeper.NewKeeper(legacyAmino, storeKey, memKey, accountKeeper, bk, amm, vesting)

	return Fixture{
		Ctx:        ctx,
		Keeper:     k,
		BankKeeper: bk,
		Vesting:    vesting,
		Amm:        amm,
	}
}
