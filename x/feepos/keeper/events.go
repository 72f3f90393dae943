// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// x/feepos - Event Emitter
//
// Structured lifecycle events (spec.md section 4.7). Every emitted event
// carries its own freshly generated event id; events of one window do not
// share an id, only the vault attribute.

package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/google/uuid"

	"github.com/sovrn-protocol/feepos/x/feepos/types"
)

func (k Keeper) emitInitialized(ctx sdk.Context, policy types.Policy) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeInitialized,
			sdk.NewAttribute(types.AttributeKeyEventID, uuid.NewString()),
			sdk.NewAttribute(types.AttributeKeyVault, policy.Vault.String()),
			sdk.NewAttribute(types.AttributeKeyPosition, policy.Position),
			sdk.NewAttribute(types.AttributeKeyQuoteAsset, policy.QuoteAsset),
		),
	)
}

func (k Keeper) emitClaimed(ctx sdk.Context, vault types.VaultID, amount uint64) string {
	eventID := uuid.NewString()
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeClaimed,
			sdk.NewAttribute(types.AttributeKeyEventID, eventID),
			sdk.NewAttribute(types.AttributeKeyVault, vault.String()),
			sdk.NewAttribute(types.AttributeKeyTimestamp, fmt.Sprintf("%d", ctx.BlockTime().Unix())),
			sdk.NewAttribute(types.AttributeKeyAmount, fmt.Sprintf("%d", amount)),
		),
	)
	return eventID
}

func (k Keeper) emitInvestorPage(ctx sdk.Context, vault types.VaultID, pageStart, pageEnd, pageTotal, investorsPaid uint64) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeInvestorPage,
			sdk.NewAttribute(types.AttributeKeyEventID, uuid.NewString()),
			sdk.NewAttribute(types.AttributeKeyVault, vault.String()),
			sdk.NewAttribute(types.AttributeKeyPageStart, fmt.Sprintf("%d", pageStart)),
			sdk.NewAttribute(types.AttributeKeyPageEnd, fmt.Sprintf("%d", pageEnd)),
			sdk.NewAttribute(types.AttributeKeyPageTotal, fmt.Sprintf("%d", pageTotal)),
			sdk.NewAttribute(types.AttributeKeyInvestorsPaid, fmt.Sprintf("%d", investorsPaid)),
		),
	)
}

func (k Keeper) emitDayClosed(ctx sdk.Context, vault types.VaultID, creatorAmount, totalClaimed, totalToInvestors uint64) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDayClosed,
			sdk.NewAttribute(types.AttributeKeyEventID, uuid.NewString()),
			sdk.NewAttribute(types.AttributeKeyVault, vault.String()),
			sdk.NewAttribute(types.AttributeKeyCreatorAmount, fmt.Sprintf("%d", creatorAmount)),
			sdk.NewAttribute(types.AttributeKeyTotalClaimed, fmt.Sprintf("%d", totalClaimed)),
			sdk.NewAttribute(types.AttributeKeyTotalToInvestors, fmt.Sprintf("%d", totalToInvestors)),
		),
	)
}
