package tools

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// CoinDecimals is the wallet-node's atomic unit scale: one coin is
// 10^12 atomic units. Amounts cross the wire as integers and only
// become decimals here.
const CoinDecimals int32 = 12

// MaxAtomic is the largest coin amount representable in atomic units.
// ToAtomic is only defined on (0, MaxAtomic]; callers must range-check
// first, since uint64 conversion discards the sign and wraps above it.
var MaxAtomic = decimal.NewFromBigInt(new(big.Int).SetUint64(math.MaxUint64), -CoinDecimals)

// FromAtomic converts an atomic-unit amount into a coin-denominated
// decimal.
func FromAtomic(amount uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(amount), -CoinDecimals)
}

// ToAtomic converts a coin-denominated decimal into atomic units.
// Fractions below one atomic unit are truncated.
func ToAtomic(amount decimal.Decimal) uint64 {
	return amount.Shift(CoinDecimals).Truncate(0).BigInt().Uint64()
}
