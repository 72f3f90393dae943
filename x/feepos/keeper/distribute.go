// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// x/feepos - Distribution Engine
//
// Consumes one page of (stream, recipient) pairs, computes each recipient's
// payout from locked weight and the eligible investor share, issues
// transfers, updates progress, enforces caps and dust rules, and finalizes
// the day with the creator remainder on the last page (spec.md section
// 4.6).

package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/sovrn-protocol/feepos/economics"
	"github.com/sovrn-protocol/feepos/shared"
	"github.com/sovrn-protocol/feepos/x/feepos/types"
)

// DistributeResult reports what one Distribute call did, for the message
// server to translate into MsgDistributeResponse.
type DistributeResult struct {
	WindowOpened  bool
	InvestorsPaid uint64
	PageTotal     uint64
	DayClosed     bool
	CreatorAmount uint64
	NextCursor    uint64
}

// Distribute runs one page of the distribution engine for vault. pairs
// must begin at expectedCursor; a mismatch fails InvalidPaginationCursor
// with no side effects. cohortRefs is required iff this call opens a new
// window (spec.md section 4.5) and must list the entire cohort; it is
// ignored on mid-window pages. "Now" for cooldown gating and the
// window_start_ts a newly-opened window is stamped with always comes from
// ctx.BlockTime() — never from the caller — so no submitter can forge a
// premature window open or a future timestamp that permanently wedges the
// vault's cooldown.
func (k Keeper) Distribute(
	ctx sdk.Context,
	vault types.VaultID,
	expectedCursor uint64,
	cohortRefs []string,
	pairs []types.CohortEntry,
) (DistributeResult, error) {
	policy, found := k.GetPolicy(ctx, vault)
	if !found {
		return DistributeResult{}, types.ErrPolicyNotFound
	}
	progress, found := k.GetProgress(ctx, vault)
	if !found {
		return DistributeResult{}, types.ErrPolicyNotFound
	}

	now := ctx.BlockTime().Unix()
	var result DistributeResult

	if progress.DayComplete {
		if !progress.CooldownElapsed(now, shared.WindowLengthSeconds) {
			return DistributeResult{}, types.ErrCooldownNotElapsed
		}
		if expectedCursor != 0 {
			return DistributeResult{}, types.ErrInvalidPaginationCursor
		}
		if len(cohortRefs) == 0 {
			return DistributeResult{}, types.ErrInvalidPaginationCursor
		}

		opened, err := k.openWindow(ctx, policy, progress, now, cohortRefs)
		if err != nil {
			return DistributeResult{}, err
		}
		progress = opened
		result.WindowOpened = true
	} else {
		if expectedCursor != progress.Cursor {
			return DistributeResult{}, types.ErrInvalidPaginationCursor
		}
	}

	var pendingDustThisPage uint64

	for _, pair := range pairs {
		locked, err := k.LockedOf(ctx, pair.StreamRef)
		if err != nil {
			return DistributeResult{}, err
		}

		w, err := economics.Weighted(progress.InvestorBudgetThisWindow, locked, progress.LockedTotalThisWindow)
		if err != nil {
			return DistributeResult{}, err
		}

		if policy.DailyCap > 0 {
			remainingCap := uint64(0)
			if policy.DailyCap > progress.DistributedToInvestors {
				remainingCap = policy.DailyCap - progress.DistributedToInvestors
			}
			if w > remainingCap {
				w = remainingCap
			}
		}

		if w < policy.MinPayout {
			pendingDustThisPage += w
			progress.Cursor++
			continue
		}

		coins := sdk.NewCoins(sdk.NewCoin(policy.QuoteAsset, sdk.NewIntFromUint64(w)))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, pair.Recipient, coins); err != nil {
			return DistributeResult{}, err
		}

		progress.DistributedToInvestors += w
		result.InvestorsPaid++
		result.PageTotal += w
		progress.Cursor++
	}

	progress.PendingDustThisWindow += pendingDustThisPage

	pageStart := expectedCursor
	pageEnd := progress.Cursor
	k.emitInvestorPage(ctx, vault, pageStart, pageEnd, result.PageTotal, result.InvestorsPaid)

	if progress.Cursor == progress.CohortSize {
		creatorAmount := progress.ClaimedThisWindow - progress.DistributedToInvestors
		if creatorAmount > 0 {
			coins := sdk.NewCoins(sdk.NewCoin(policy.QuoteAsset, sdk.NewIntFromUint64(creatorAmount)))
			creatorAddr, err := sdk.AccAddressFromBech32(policy.CreatorAccount)
			if err != nil {
				return DistributeResult{}, err
			}
			if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, creatorAddr, coins); err != nil {
				return DistributeResult{}, err
			}
		}

		progress.CarryOver += progress.PendingDustThisWindow
		progress.PendingDustThisWindow = 0
		progress.DayComplete = true

		k.emitDayClosed(ctx, vault, creatorAmount, progress.ClaimedThisWindow, progress.DistributedToInvestors)

		result.DayClosed = true
		result.CreatorAmount = creatorAmount
	}

	result.NextCursor = progress.Cursor
	k.setProgress(ctx, progress)

	return result, nil
}
