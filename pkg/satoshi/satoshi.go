// Package satoshi converts between fractional coin amounts, as reported by JSON APIs,
// and integer satoshi amounts.
package satoshi

import "math"

// PerCoin is the number of satoshis in one whole coin.
const PerCoin = 1e8

// FromCoins converts a fractional coin amount to satoshis, rounding to the nearest unit.
func FromCoins(value float64) int64 {
	return int64(math.Round(value * PerCoin))
}

// ToCoins converts satoshis to a fractional coin amount.
func ToCoins(amount int64) float64 {
	return float64(amount) / PerCoin
}

// Sum returns the total of the given satoshi amounts.
func Sum(amounts []int64) int64 {
	var total int64
	for _, a := range amounts {
		total += a
	}
	return total
}
