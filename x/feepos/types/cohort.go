// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// x/feepos - Cohort Entry
//
// CohortEntry is supplied as call input, never persisted (spec.md section
// 3): the engine trusts the caller to supply the same ordering across
// pages of a single window.

package types

import sdk "github.com/cosmos/cosmos-sdk/types"

// CohortEntry pairs a vesting stream reference with the investor account
// that should receive its payout.
type CohortEntry struct {
	// StreamRef identifies the external vesting/streaming account to read
	// the still-locked amount from.
	StreamRef string `json:"stream_ref"`

	// Recipient is the quote-asset holding account to credit.
	Recipient sdk.AccAddress `json:"recipient"`
}

// Validate performs shape-only validation. Neither it nor the keeper checks
// that Recipient holds the quote asset.
func (c CohortEntry) Validate() error {
	if c.StreamRef == "" {
		return ErrInvalidStreamAccount
	}
	if len(c.Recipient) == 0 {
		return ErrInvalidQuoteMint
	}
	return nil
}
