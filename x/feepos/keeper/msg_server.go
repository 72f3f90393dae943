// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// x/feepos - Msg Server
//
// Translates the two external operations of spec.md section 6 into keeper
// calls: initialize and distribute.

package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/sovrn-protocol/feepos/x/feepos/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (m msgServer) Initialize(goCtx context.Context, msg *types.MsgInitialize) (*types.MsgInitializeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	vault, err := types.ParseVaultID(msg.Vault)
	if err != nil {
		return nil, err
	}

	policy := types.Policy{
		Vault:            vault,
		Position:         msg.Position,
		InvestorShareBps: msg.InvestorShareBps,
		DailyCap:         msg.DailyCap,
		MinPayout:        msg.MinPayout,
		Y0:               msg.Y0,
		QuoteAsset:       msg.QuoteAsset,
		CreatorAccount:   msg.CreatorAccount,
	}

	if err := m.Keeper.InitPolicy(ctx, policy); err != nil {
		return nil, err
	}
	m.Keeper.emitInitialized(ctx, policy)

	return &types.MsgInitializeResponse{}, nil
}

func (m msgServer) Distribute(goCtx context.Context, msg *types.MsgDistribute) (*types.MsgDistributeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	vault, err := types.ParseVaultID(msg.Vault)
	if err != nil {
		return nil, err
	}

	result, err := m.Keeper.Distribute(ctx, vault, msg.ExpectedCursor, msg.CohortRefs, msg.Pairs)
	if err != nil {
		return nil, err
	}

	return &types.MsgDistributeResponse{
		WindowOpened:  result.WindowOpened,
		InvestorsPaid: result.InvestorsPaid,
		PageTotal:     result.PageTotal,
		DayClosed:     result.DayClosed,
		CreatorAmount: result.CreatorAmount,
		NextCursor:    result.NextCursor,
	}, nil
}
