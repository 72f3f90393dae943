// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// x/feepos - Policy Store Record
//
// Policy is created once per vault (spec.md section 4.1) and is read-only
// thereafter; only Keeper.InitPolicy may ever write one.

package types

// Policy is the immutable-after-init configuration of a vault's honorary
// fee position distribution.
type Policy struct {
	Vault VaultID `json:"vault"`

	// Position identifies the honorary position at the AMM that this
	// vault's quote-only fees are claimed from.
	Position string `json:"position"`

	// InvestorShareBps upper-bounds the fraction of each window's claim
	// routed to investors, in basis points (0-10000).
	InvestorShareBps uint64 `json:"investor_share_bps"`

	// DailyCap ceilings cumulative investor payouts per window; 0 means
	// uncapped.
	DailyCap uint64 `json:"daily_cap"`

	// MinPayout is the sub-threshold cutoff: a computed per-investor amount
	// strictly below this is carried forward as dust instead of paid.
	MinPayout uint64 `json:"min_payout"`

	// Y0 is the total investor allocation at distribution-rights inception;
	// the denominator of the locked-fraction calculation. Must be non-zero.
	Y0 uint64 `json:"y0"`

	// QuoteAsset is the denom of the quote token. It is compared with the
	// denom of the claimed quote coin when a window opens; recipients and
	// the treasury are not checked against it.
	QuoteAsset string `json:"quote_asset"`

	// CreatorAccount is the destination for each window's remainder,
	// bech32-encoded.
	CreatorAccount string `json:"creator_account"`
}

// Validate enforces the init-time invariants of spec.md section 4.1:
// InvestorShareBps <= 10000 and Y0 > 0, plus non-empty Position, QuoteAsset
// and CreatorAccount. CreatorAccount is only checked for being non-empty
// here; MsgInitialize.ValidateBasic checks that it parses as bech32, and
// nothing checks that it holds the quote asset.
func (p Policy) Validate() error {
	if p.Position == "" {
		return ErrInvalidTreasury
	}
	if p.InvestorShareBps > 10000 {
		return ErrInvalidShareBps
	}
	if p.Y0 == 0 {
		return ErrInvalidY0
	}
	if p.QuoteAsset == "" {
		return ErrInvalidQuoteMint
	}
	if p.CreatorAccount == "" {
		return ErrInvalidTreasury
	}
	return nil
}
