// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// x/feepos - Codec Registration

package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers concrete types on cdc.
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgInitialize{}, "feepos/MsgInitialize", nil)
	cdc.RegisterConcrete(&MsgDistribute{}, "feepos/MsgDistribute", nil)
}

// RegisterInterfaces registers the x/feepos interface types with the
// interface registry.
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgInitialize{},
		&MsgDistribute{},
	)
}

var (
	amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterCodec(amino)
	amino.Seal()
}
