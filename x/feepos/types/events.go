// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// x/feepos - Event Types
//
// Structured, append-only lifecycle records (spec.md section 4.7).

package types

const (
	EventTypeInitialized  = "feepos_initialized"
	EventTypeClaimed      = "feepos_claimed"
	EventTypeInvestorPage = "feepos_investor_page"
	EventTypeDayClosed    = "feepos_day_closed"
)

const (
	AttributeKeyEventID         = "event_id"
	AttributeKeyVault           = "vault"
	AttributeKeyTimestamp       = "timestamp"
	AttributeKeyPosition        = "position"
	AttributeKeyQuoteAsset      = "quote_asset"
	AttributeKeyAmount          = "amount"
	AttributeKeyPageStart       = "page_start"
	AttributeKeyPageEnd         = "page_end"
	AttributeKeyPageTotal       = "page_total"
	AttributeKeyInvestorsPaid   = "investors_paid"
	AttributeKeyCreatorAmount   = "creator_amount"
	AttributeKeyTotalClaimed    = "total_claimed"
	AttributeKeyTotalToInvestors = "total_to_investors"
)
