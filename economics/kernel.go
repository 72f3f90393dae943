// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// feepos Economics - Arithmetic Kernel
//
// Pure integer arithmetic shared by the window controller and the
// distribution engine (spec.md section 2, "Arithmetic kernel"). Every
// computation here floors, never rounds, and routes its intermediate
// product through an arbitrary-precision big.Int so that a 128-bit
// overflow is the caller's decision to make, not silent wraparound.

package economics

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/sovrn-protocol/feepos/x/feepos/types"
)

// maxIntermediateBits is the widest intermediate product the kernel will
// tolerate before reporting overflow. 128 bits comfortably covers a
// uint64 amount times a uint64 weight.
const maxIntermediateBits = 128

// BpsApply returns floor(amount * bps / 10000).
func BpsApply(amount uint64, bps uint64) (uint64, error) {
	return weightedDiv(amount, bps, 10000)
}

// Weighted returns floor(total * numerator / denominator), the pro-rata
// share of total belonging to a party whose weight is numerator out of
// denominator. denominator == 0 yields 0 (spec.md section 4.4: a vault
// with no locked investors pays nothing to investors, never divides by
// zero).
func Weighted(total uint64, numerator uint64, denominator uint64) (uint64, error) {
	if denominator == 0 {
		return 0, nil
	}
	return weightedDiv(total, numerator, denominator)
}

// MinCap returns the lesser of amount and cap. cap == 0 means uncapped.
func MinCap(amount uint64, cap uint64) uint64 {
	if cap == 0 || amount <= cap {
		return amount
	}
	return cap
}

// weightedDiv computes floor(a * b / d) using a big.Int-backed
// intermediate so that a*b never overflows a machine word, then checks
// the intermediate's bit length against the arithmetic domain before
// converting back down to uint64.
func weightedDiv(a uint64, b uint64, d uint64) (uint64, error) {
	if d == 0 {
		return 0, types.ErrArithmeticOverflow
	}

	product := sdk.NewIntFromUint64(a).Mul(sdk.NewIntFromUint64(b))
	if product.BigInt().BitLen() > maxIntermediateBits {
		return 0, types.ErrArithmeticOverflow
	}

	quotient := product.Quo(sdk.NewIntFromUint64(d))
	if !quotient.IsUint64() {
		return 0, types.ErrArithmeticOverflow
	}

	return quotient.Uint64(), nil
}
