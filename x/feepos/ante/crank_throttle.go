// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// feepos Ante - Crank Throttle
//
// Guards against two crank transactions for the same vault landing in the
// same block: the second would both observe the first's pre-commit state
// (since AnteHandle runs before delivery) and waste gas racing to the same
// cursor. One MsgDistribute per vault per block height is enough to drain
// any cohort at a reasonable page size well within the 24h window.

package ante

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/sovrn-protocol/feepos/x/feepos/types"
)

// CrankThrottleDecorator rejects a second MsgDistribute for the same vault
// within the same block height.
type CrankThrottleDecorator struct {
	seenThisBlock map[seenKey]bool
	seenHeight    int64
}

type seenKey struct {
	vault string
}

// NewCrankThrottleDecorator returns a CrankThrottleDecorator with an empty
// per-block tracking set.
func NewCrankThrottleDecorator() *CrankThrottleDecorator {
	return &CrankThrottleDecorator{
		seenThisBlock: make(map[seenKey]bool),
	}
}

// AnteHandle implements the ante.Decorator interface.
func (d *CrankThrottleDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (sdk.Context, error) {
	if simulate {
		return next(ctx, tx, simulate)
	}

	if ctx.BlockHeight() != d.seenHeight {
		d.seenHeight = ctx.BlockHeight()
		d.seenThisBlock = make(map[seenKey]bool)
	}

	for _, msg := range tx.GetMsgs() {
		distribute, ok := msg.(*types.MsgDistribute)
		if !ok {
			continue
		}

		key := seenKey{vault: distribute.Vault}
		if d.seenThisBlock[key] {
			return ctx, sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest,
				"vault %s already has a pending distribute in block %d", distribute.Vault, ctx.BlockHeight())
		}
		d.seenThisBlock[key] = true
	}

	return next(ctx, tx, simulate)
}
