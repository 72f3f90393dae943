package keeper_test

import (
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/sovrn-protocol/feepos/testutil"
	"github.com/sovrn-protocol/feepos/x/feepos/types"
)

func addr(b byte) sdk.AccAddress {
	raw := make([]byte, 20)
	for i := range raw {
		raw[i] = b
	}
	return sdk.AccAddress(raw)
}

func vaultOf(b byte) types.VaultID {
	var v types.VaultID
	v[0] = b
	return v
}

// atTime returns f's context stamped with block time sec, the only
// source Distribute ever reads "now" from.
func atTime(f testutil.Fixture, sec int64) sdk.Context {
	return f.Ctx.WithBlockTime(time.Unix(sec, 0))
}

func mustInit(t *testing.T, f testutil.Fixture, vault types.VaultID, shareBps, dailyCap, minPayout, y0 uint64, creator sdk.AccAddress) {
	t.Helper()
	policy := types.Policy{
		Vault:            vault,
		Position:         "honorary-position-1",
		InvestorShareBps: shareBps,
		DailyCap:         dailyCap,
		MinPayout:        minPayout,
		Y0:               y0,
		QuoteAsset:       "uusdc",
		CreatorAccount:   creator.String(),
	}
	require.NoError(t, f.Keeper.InitPolicy(f.Ctx, policy))
}

// Scenario 1: happy path, one page (spec.md section 8, scenario 1).
func TestDistributeHappyPathOnePage(t *testing.T) {
	f := testutil.NewFixture(t)
	vault := vaultOf(1)
	creator := addr(0xC1)
	mustInit(t, f, vault, 7500, 0, 1000, 10_000_000, creator)

	f.Amm.Claims = []testutil.FakeClaim{
		{Quote: sdk.NewCoin("uusdc", sdk.NewInt(2_000_000)), Base: sdk.NewCoin("uusdc", sdk.NewInt(0))},
	}
	f.Vesting.Locked["s1"] = 5_000_000
	f.Vesting.Locked["s2"] = 3_000_000
	f.Vesting.Locked["s3"] = 2_000_000

	pairs := []types.CohortEntry{
		{StreamRef: "s1", Recipient: addr(1)},
		{StreamRef: "s2", Recipient: addr(2)},
		{StreamRef: "s3", Recipient: addr(3)},
	}

	result, err := f.Keeper.Distribute(atTime(f, 1000), vault, 0, []string{"s1", "s2", "s3"}, pairs)
	require.NoError(t, err)
	require.True(t, result.WindowOpened)
	require.True(t, result.DayClosed)
	require.Equal(t, uint64(1_500_000), result.PageTotal)
	require.Equal(t, uint64(500_000), result.CreatorAmount)

	progress, found := f.Keeper.GetProgress(f.Ctx, vault)
	require.True(t, found)
	require.Equal(t, uint64(0), progress.CarryOver)
	require.Equal(t, uint64(1_500_000), progress.DistributedToInvestors)
}

// Scenario 2: dust carry (spec.md section 8, scenario 2).
func TestDistributeDustCarry(t *testing.T) {
	f := testutil.NewFixture(t)
	vault := vaultOf(2)
	creator := addr(0xC2)
	mustInit(t, f, vault, 7500, 0, 500_000, 10_000_000, creator)

	f.Amm.Claims = []testutil.FakeClaim{
		{Quote: sdk.NewCoin("uusdc", sdk.NewInt(2_000_000)), Base: sdk.NewCoin("uusdc", sdk.NewInt(0))},
	}
	f.Vesting.Locked["s1"] = 5_000_000
	f.Vesting.Locked["s2"] = 3_000_000
	f.Vesting.Locked["s3"] = 2_000_000

	pairs := []types.CohortEntry{
		{StreamRef: "s1", Recipient: addr(1)},
		{StreamRef: "s2", Recipient: addr(2)},
		{StreamRef: "s3", Recipient: addr(3)},
	}

	result, err := f.Keeper.Distribute(atTime(f, 1000), vault, 0, []string{"s1", "s2", "s3"}, pairs)
	require.NoError(t, err)
	require.Equal(t, uint64(750_000), result.PageTotal)
	require.Equal(t, uint64(1_250_000), result.CreatorAmount)

	progress, found := f.Keeper.GetProgress(f.Ctx, vault)
	require.True(t, found)
	require.Equal(t, uint64(750_000), progress.CarryOver)
}

// Scenario 3: daily cap truncation (spec.md section 8, scenario 3).
func TestDistributeDailyCapTruncates(t *testing.T) {
	f := testutil.NewFixture(t)
	vault := vaultOf(3)
	creator := addr(0xC3)
	mustInit(t, f, vault, 7500, 1_000_000, 1000, 10_000_000, creator)

	f.Amm.Claims = []testutil.FakeClaim{
		{Quote: sdk.NewCoin("uusdc", sdk.NewInt(2_000_000)), Base: sdk.NewCoin("uusdc", sdk.NewInt(0))},
	}
	f.Vesting.Locked["s1"] = 5_000_000
	f.Vesting.Locked["s2"] = 3_000_000
	f.Vesting.Locked["s3"] = 2_000_000

	pairs := []types.CohortEntry{
		{StreamRef: "s1", Recipient: addr(1)},
		{StreamRef: "s2", Recipient: addr(2)},
		{StreamRef: "s3", Recipient: addr(3)},
	}

	result, err := f.Keeper.Distribute(atTime(f, 1000), vault, 0, []string{"s1", "s2", "s3"}, pairs)
	require.NoError(t, err)
	require.Equal(t, uint64(1_000_000), result.PageTotal)
	require.Equal(t, uint64(1_000_000), result.CreatorAmount)
}

// Scenario 4: zero locked (spec.md section 8, scenario 4).
func TestDistributeZeroLocked(t *testing.T) {
	f := testutil.NewFixture(t)
	vault := vaultOf(4)
	creator := addr(0xC4)
	mustInit(t, f, vault, 7500, 0, 1000, 10_000_000, creator)

	f.Amm.Claims = []testutil.FakeClaim{
		{Quote: sdk.NewCoin("uusdc", sdk.NewInt(2_000_000)), Base: sdk.NewCoin("uusdc", sdk.NewInt(0))},
	}
	f.Vesting.Locked["s1"] = 0
	f.Vesting.Locked["s2"] = 0

	pairs := []types.CohortEntry{
		{StreamRef: "s1", Recipient: addr(1)},
		{StreamRef: "s2", Recipient: addr(2)},
	}

	result, err := f.Keeper.Distribute(atTime(f, 1000), vault, 0, []string{"s1", "s2"}, pairs)
	require.NoError(t, err)
	require.Equal(t, uint64(0), result.PageTotal)
	require.Equal(t, uint64(2_000_000), result.CreatorAmount)
}

// Scenario 5: cooldown violation (spec.md section 8, scenario 5).
func TestDistributeCooldownViolation(t *testing.T) {
	f := testutil.NewFixture(t)
	vault := vaultOf(5)
	creator := addr(0xC5)
	mustInit(t, f, vault, 7500, 0, 1000, 10_000_000, creator)

	f.Amm.Claims = []testutil.FakeClaim{
		{Quote: sdk.NewCoin("uusdc", sdk.NewInt(1_000_000)), Base: sdk.NewCoin("uusdc", sdk.NewInt(0))},
	}
	f.Vesting.Locked["s1"] = 1_000_000

	pairs := []types.CohortEntry{{StreamRef: "s1", Recipient: addr(1)}}

	result, err := f.Keeper.Distribute(atTime(f, 1000), vault, 0, []string{"s1"}, pairs)
	require.NoError(t, err)
	require.True(t, result.DayClosed)

	_, err = f.Keeper.Distribute(atTime(f, 1500), vault, 0, nil, pairs)
	require.ErrorIs(t, err, types.ErrCooldownNotElapsed)
}

// Scenario 6: pagination resume and stale-cursor rejection (spec.md
// section 8, scenario 6).
func TestDistributePaginationResume(t *testing.T) {
	f := testutil.NewFixture(t)
	vault := vaultOf(6)
	creator := addr(0xC6)
	mustInit(t, f, vault, 10000, 0, 0, 5_000_000, creator)

	f.Amm.Claims = []testutil.FakeClaim{
		{Quote: sdk.NewCoin("uusdc", sdk.NewInt(5_000_000)), Base: sdk.NewCoin("uusdc", sdk.NewInt(0))},
	}
	for i, ref := range []string{"s1", "s2", "s3", "s4", "s5"} {
		f.Vesting.Locked[ref] = uint64(1_000_000 * (i + 1))
	}

	full := []types.CohortEntry{
		{StreamRef: "s1", Recipient: addr(1)},
		{StreamRef: "s2", Recipient: addr(2)},
		{StreamRef: "s3", Recipient: addr(3)},
		{StreamRef: "s4", Recipient: addr(4)},
		{StreamRef: "s5", Recipient: addr(5)},
	}

	cohortRefs := []string{"s1", "s2", "s3", "s4", "s5"}
	ctx := atTime(f, 1000)

	page1 := full[0:2]
	result1, err := f.Keeper.Distribute(ctx, vault, 0, cohortRefs, page1)
	require.NoError(t, err)
	require.False(t, result1.DayClosed)
	require.Equal(t, uint64(2), result1.NextCursor)

	page2 := full[2:4]
	result2, err := f.Keeper.Distribute(ctx, vault, 2, nil, page2)
	require.NoError(t, err)
	require.False(t, result2.DayClosed)
	require.Equal(t, uint64(4), result2.NextCursor)

	_, err = f.Keeper.Distribute(ctx, vault, 2, nil, page2)
	require.ErrorIs(t, err, types.ErrInvalidPaginationCursor)

	page3 := full[4:5]
	result3, err := f.Keeper.Distribute(ctx, vault, 4, nil, page3)
	require.NoError(t, err)
	require.True(t, result3.DayClosed)
}
