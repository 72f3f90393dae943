// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// x/feepos - Progress Store Record
//
// Progress is the mutable per-vault distribution state (spec.md section
// 4.2); it is created at init and never destroyed, only mutated by the
// distribution engine.

package types

// Progress is the mutable per-vault distribution state machine.
type Progress struct {
	Vault VaultID `json:"vault"`

	// WindowStartTS is the unix timestamp the current window opened at;
	// 0 iff no window has ever opened.
	WindowStartTS int64 `json:"window_start_ts"`

	// DayComplete is true iff the current window has been fully settled
	// (creator remainder paid).
	DayComplete bool `json:"day_complete"`

	// Cursor is the zero-based index of the next unpaid investor.
	Cursor uint64 `json:"cursor"`

	// CohortSize is the total cohort size recorded when the window opened;
	// the engine finalizes the day once Cursor reaches it.
	CohortSize uint64 `json:"cohort_size"`

	// ClaimedThisWindow is the quote amount claimed at window open.
	ClaimedThisWindow uint64 `json:"claimed_this_window"`

	// LockedTotalThisWindow is the sum of locked_of() over the entire
	// cohort, frozen at window open; the denominator of weighted().
	LockedTotalThisWindow uint64 `json:"locked_total_this_window"`

	// InvestorBudgetThisWindow is floor(claimed * eligible_share_bps /
	// 10000), computed at window open and frozen for the window.
	InvestorBudgetThisWindow uint64 `json:"investor_budget_this_window"`

	// DistributedToInvestors is the running sum of amounts transferred to
	// investors this window.
	DistributedToInvestors uint64 `json:"distributed_to_investors"`

	// CarryOver is dust accumulated from sub-threshold payouts, summed
	// across windows.
	CarryOver uint64 `json:"carry_over"`

	// PendingDustThisWindow is the running sum of per-investor amounts
	// skipped as sub-threshold so far this window; it is folded into
	// CarryOver when the window finalizes (it is never transferred on its
	// own — the creator remainder already recoups it).
	PendingDustThisWindow uint64 `json:"pending_dust_this_window"`
}

// NewProgress returns the zero-value progress record created at init:
// window_start_ts=0, day_complete=true, all counters zeroed.
func NewProgress(vault VaultID) Progress {
	return Progress{
		Vault:       vault,
		DayComplete: true,
	}
}

// CooldownElapsed reports whether a new window may open at time now,
// per spec.md section 4.5: window_start_ts == 0, or now >=
// window_start_ts + 86400.
func (p Progress) CooldownElapsed(now int64, windowLengthSeconds int64) bool {
	if p.WindowStartTS == 0 {
		return true
	}
	return now >= p.WindowStartTS+windowLengthSeconds
}
