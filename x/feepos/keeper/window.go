// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// x/feepos - Window/Claim Controller
//
// Decides when a new 24h window opens and performs the at-most-once claim
// from the honorary position into the treasury (spec.md section 4.5).

package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/sovrn-protocol/feepos/economics"
	"github.com/sovrn-protocol/feepos/shared"
	"github.com/sovrn-protocol/feepos/x/feepos/types"
)

// openWindow performs the Closed -> Open transition: claims fees into the
// treasury, freezes locked_total and investor_budget for the window, and
// resets the per-window counters. cohortRefs must list the entire cohort
// (spec.md section 4.5) so locked_total is exact before any payout in this
// or later pages depends on it; the page actually paid in this same call
// (Distribute's pairs) may be a strict sub-range of the cohort. now is always
// Distribute's ctx.BlockTime()-derived value, never a caller-supplied
// field, so window_start_ts can never be forged ahead of the chain's own
// clock.
func (k Keeper) openWindow(
	ctx sdk.Context,
	policy types.Policy,
	progress types.Progress,
	now int64,
	cohortRefs []string,
) (types.Progress, error) {
	treasury := k.TreasuryAddress()

	quoteAmount, baseAmount, err := k.ammKeeper.ClaimFees(ctx, policy.Position, treasury)
	if err != nil {
		return progress, err
	}
	if !baseAmount.IsZero() {
		return progress, types.ErrBaseFeesInClaim
	}
	if quoteAmount.Denom != policy.QuoteAsset {
		return progress, types.ErrInvalidQuoteMint
	}

	lockedTotal, err := k.sumLockedRefs(ctx, cohortRefs)
	if err != nil {
		return progress, err
	}

	eligibleBps, err := eligibleShareBps(policy, lockedTotal)
	if err != nil {
		return progress, err
	}

	claimed := quoteAmount.Amount.Uint64()
	budget, err := economics.BpsApply(claimed, eligibleBps)
	if err != nil {
		return progress, err
	}

	progress.WindowStartTS = now
	progress.DayComplete = false
	progress.Cursor = 0
	progress.CohortSize = uint64(len(cohortRefs))
	progress.ClaimedThisWindow = claimed
	progress.LockedTotalThisWindow = lockedTotal
	progress.InvestorBudgetThisWindow = budget
	progress.DistributedToInvestors = 0
	progress.PendingDustThisWindow = 0

	eventID := k.emitClaimed(ctx, policy.Vault, claimed)
	k.Logger(ctx).Info("feepos: window opened",
		"vault", policy.Vault.String(),
		"claimed", claimed,
		"eligible_share_bps", eligibleBps,
		"investor_budget", budget,
		"event_id", eventID,
	)

	return progress, nil
}

// eligibleShareBps implements spec.md section 4.5's eligible-share formula:
// f_locked_bps = floor(locked_total * 10000 / y0), capped at 10000;
// eligible_share_bps = min(investor_share_bps, f_locked_bps).
func eligibleShareBps(policy types.Policy, lockedTotal uint64) (uint64, error) {
	if lockedTotal == 0 {
		return 0, nil
	}

	fLockedBps, err := economics.Weighted(10000, lockedTotal, policy.Y0)
	if err != nil {
		return 0, err
	}
	if fLockedBps > shared.BpsDenominator {
		fLockedBps = shared.BpsDenominator
	}

	if policy.InvestorShareBps < fLockedBps {
		return policy.InvestorShareBps, nil
	}
	return fLockedBps, nil
}
