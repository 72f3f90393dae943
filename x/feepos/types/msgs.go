// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// x/feepos - Message Types
//
// initialize and distribute, per spec.md section 6's External Interfaces.

package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

const (
	TypeMsgInitialize = "initialize"
	TypeMsgDistribute = "distribute"
)

var (
	_ sdk.Msg = &MsgInitialize{}
	_ sdk.Msg = &MsgDistribute{}
)

// MsgInitialize creates a vault's Policy and zeroed Progress (spec.md
// section 4.1, section 4.2).
type MsgInitialize struct {
	Authority        string `json:"authority"`
	Vault            string `json:"vault"`
	Position         string `json:"position"`
	InvestorShareBps uint64 `json:"investor_share_bps"`
	DailyCap         uint64 `json:"daily_cap"`
	MinPayout        uint64 `json:"min_payout"`
	Y0               uint64 `json:"y0"`
	QuoteAsset       string `json:"quote_asset"`
	CreatorAccount   string `json:"creator_account"`
}

// MsgInitializeResponse acknowledges a successful initialize call.
type MsgInitializeResponse struct{}

func (msg MsgInitialize) Route() string { return RouterKey }
func (msg MsgInitialize) Type() string  { return TypeMsgInitialize }

func (msg MsgInitialize) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

func (msg MsgInitialize) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgInitialize) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if _, err := ParseVaultID(msg.Vault); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "invalid vault id: %s", err)
	}
	if msg.InvestorShareBps > 10000 {
		return sdkerrors.Wrap(ErrInvalidShareBps, "investor_share_bps")
	}
	if msg.Y0 == 0 {
		return sdkerrors.Wrap(ErrInvalidY0, "y0")
	}
	if msg.QuoteAsset == "" {
		return sdkerrors.Wrap(ErrInvalidQuoteMint, "quote_asset")
	}
	if _, err := sdk.AccAddressFromBech32(msg.CreatorAccount); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator account: %s", err)
	}
	return nil
}

// MsgDistribute drives one page of the distribution engine (spec.md
// section 4.6). expected_cursor is the explicit continuation token the
// caller asserts matches the stored cursor. There is deliberately no
// client-supplied timestamp field: "now" for cooldown gating and the
// window_start_ts a window opens with always comes from ctx.BlockTime(),
// never from the crank, so no submitter can forge a premature window open
// or wedge a vault by claiming a future timestamp.
//
// CohortRefs is only meaningful on the page that opens a new window: it
// must list every stream reference in the cohort (spec.md section 4.5,
// "the first page of a new window MUST present the entire cohort for the
// locked-total computation"), independent of how large a slice Pairs pays
// out in that same call. Mid-window pages leave it empty.
type MsgDistribute struct {
	Crank          string        `json:"crank"`
	Vault          string        `json:"vault"`
	ExpectedCursor uint64        `json:"expected_cursor"`
	CohortRefs     []string      `json:"cohort_refs,omitempty"`
	Pairs          []CohortEntry `json:"pairs"`
}

// MsgDistributeResponse reports what the engine did with this page.
type MsgDistributeResponse struct {
	WindowOpened     bool   `json:"window_opened"`
	InvestorsPaid    uint64 `json:"investors_paid"`
	PageTotal        uint64 `json:"page_total"`
	DayClosed        bool   `json:"day_closed"`
	CreatorAmount    uint64 `json:"creator_amount"`
	NextCursor       uint64 `json:"next_cursor"`
}

func (msg MsgDistribute) Route() string { return RouterKey }
func (msg MsgDistribute) Type() string  { return TypeMsgDistribute }

func (msg MsgDistribute) GetSigners() []sdk.AccAddress {
	crank, err := sdk.AccAddressFromBech32(msg.Crank)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{crank}
}

func (msg MsgDistribute) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgDistribute) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Crank); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid crank address: %s", err)
	}
	if _, err := ParseVaultID(msg.Vault); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "invalid vault id: %s", err)
	}
	if len(msg.Pairs) == 0 {
		return sdkerrors.Wrap(ErrEmptyCohortPage, "pairs")
	}
	for i, pair := range msg.Pairs {
		if err := pair.Validate(); err != nil {
			return sdkerrors.Wrapf(err, "pairs[%d]", i)
		}
	}
	return nil
}
