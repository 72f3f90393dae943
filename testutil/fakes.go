// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// testutil - In-Memory Collaborator Fakes
//
// Minimal stand-ins for the external collaborators spec.md section 9 says
// should be modeled as capability interfaces precisely so tests can fake
// them: the AMM's claim primitive and the vesting oracle's locked_of.

package testutil

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"

	"github.com/sovrn-protocol/feepos/x/feepos/types"
)

// FakeAmmKeeper returns a scripted sequence of claims: each call to
// ClaimFees pops the next entry, minting the claimed coins into the
// feepos module account so the keeper's later transfers to investors and
// the creator have real balance behind them, the same way a real AMM
// claim would actually move funds into the treasury.
type FakeAmmKeeper struct {
	Claims []FakeClaim
	Bank   bankkeeper.Keeper
	calls  int
}

// FakeClaim is one scripted response from ClaimFees.
type FakeClaim struct {
	Quote sdk.Coin
	Base  sdk.Coin
	Err   error
}

func (f *FakeAmmKeeper) ClaimFees(ctx sdk.Context, position string, treasury sdk.AccAddress) (sdk.Coin, sdk.Coin, error) {
	if f.calls >= len(f.Claims) {
		panic(fmt.Sprintf("FakeAmmKeeper: no scripted claim left for call %d", f.calls))
	}
	claim := f.Claims[f.calls]
	f.calls++
	if claim.Err != nil {
		return claim.Quote, claim.Base, claim.Err
	}

	minted := sdk.NewCoins()
	if claim.Quote.IsPositive() {
		minted = minted.Add(claim.Quote)
	}
	if claim.Base.IsPositive() {
		minted = minted.Add(claim.Base)
	}
	if !minted.IsZero() {
		if err := f.Bank.MintCoins(ctx, types.ModuleName, minted); err != nil {
			return claim.Quote, claim.Base, err
		}
	}

	return claim.Quote, claim.Base, nil
}

// FakeVestingKeeper returns a fixed locked amount per stream reference.
type FakeVestingKeeper struct {
	Locked map[string]uint64
}

func NewFakeVestingKeeper() *FakeVestingKeeper {
	return &FakeVestingKeeper{Locked: make(map[string]uint64)}
}

func (f *FakeVestingKeeper) LockedOf(ctx sdk.Context, streamRef string) (uint64, error) {
	amount, ok := f.Locked[streamRef]
	if !ok {
		return 0, fmt.Errorf("unknown stream ref: %s", streamRef)
	}
	return amount, nil
}
