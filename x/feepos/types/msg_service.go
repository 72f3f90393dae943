// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// x/feepos - Msg Service Contract
//
// MsgServer is a plain interface, not a protoc-generated gRPC service
// descriptor: the module routes through the legacy Route()/Handler path
// (see handler.go) rather than the gRPC service router, so no .proto
// codegen is required to wire initialize/distribute end to end.

package types

import "context"

// MsgServer defines the feepos module's two operations.
type MsgServer interface {
	Initialize(context.Context, *MsgInitialize) (*MsgInitializeResponse, error)
	Distribute(context.Context, *MsgDistribute) (*MsgDistributeResponse, error)
}
