// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// feepos - Legacy Message Handler
//
// Routes the module's two operations through the pre-service-router
// dispatch path, mirroring the teacher's x/vltcore Route() stub but with
// a real handler wired in instead of nil.

package feepos

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/sovrn-protocol/feepos/x/feepos/keeper"
	"github.com/sovrn-protocol/feepos/x/feepos/types"
)

// NewHandler returns a handler for feepos messages.
func NewHandler(k keeper.Keeper) sdk.Handler {
	server := keeper.NewMsgServerImpl(k)

	return func(ctx sdk.Context, msg sdk.Msg) (*sdk.Result, error) {
		ctx = ctx.WithEventManager(sdk.NewEventManager())

		switch m := msg.(type) {
		case *types.MsgInitialize:
			res, err := server.Initialize(sdk.WrapSDKContext(ctx), m)
			return sdk.WrapServiceResult(ctx, res, err)

		case *types.MsgDistribute:
			res, err := server.Distribute(sdk.WrapSDKContext(ctx), m)
			return sdk.WrapServiceResult(ctx, res, err)

		default:
			return nil, sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "unrecognized %s message type: %T", types.ModuleName, msg)
		}
	}
}
