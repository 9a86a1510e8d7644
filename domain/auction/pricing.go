package auction

import (
	"math/big"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// MaxDiscountPerInterval returns the discount percentage per interval that brings
// startPrice down to bottomPrice exactly at the end of the auction:
//
//	((startPrice - bottomPrice) / startPrice) * 100 / (durationSeconds / 1800)
//
// ok is false when bottomPrice >= startPrice, startPrice <= 0 or durationSeconds <= 0.
func MaxDiscountPerInterval(startPrice, bottomPrice decimal.Decimal, durationSeconds int64) (decimal.Decimal, bool) {
	if startPrice.Sign() <= 0 || bottomPrice.GreaterThanOrEqual(startPrice) || durationSeconds <= 0 {
		return decimal.Zero, false
	}
	// a single division keeps the rounding error to the last digit of DivisionPrecision
	num := startPrice.Sub(bottomPrice).Mul(hundred).Mul(decimal.NewFromInt(DiscountInterval))
	den := startPrice.Mul(decimal.NewFromInt(durationSeconds))
	return num.Div(den), true
}

// MaxDiscountPercentage is the total discount allowed over the whole auction.
func MaxDiscountPercentage(startPrice, bottomPrice decimal.Decimal) (decimal.Decimal, bool) {
	if startPrice.Sign() <= 0 || bottomPrice.GreaterThanOrEqual(startPrice) {
		return decimal.Zero, false
	}
	return startPrice.Sub(bottomPrice).Mul(hundred).Div(startPrice), true
}

// ValidateAuctionParams rejects a bottom price not below the start price and a discount
// percentage above ((startPrice-bottomPrice)/startPrice)*100. The bound is inclusive.
func ValidateAuctionParams(startPrice, bottomPrice, discountPercentage decimal.Decimal) bool {
	if startPrice.Sign() <= 0 || bottomPrice.Sign() < 0 || bottomPrice.GreaterThanOrEqual(startPrice) {
		return false
	}
	if discountPercentage.Sign() < 0 {
		return false
	}
	// discount <= (start-bottom)/start*100  <=>  discount*start <= (start-bottom)*100
	return discountPercentage.Mul(startPrice).LessThanOrEqual(startPrice.Sub(bottomPrice).Mul(hundred))
}

// DiscountAmount converts a discount percentage into the amount taken off per interval.
// The result is exact; callers floor it to whole wei before sending.
func DiscountAmount(startPrice, discountPercentage decimal.Decimal) decimal.Decimal {
	return startPrice.Mul(discountPercentage).Shift(-2)
}

// Intervals is the number of completed discount intervals within durationSeconds.
func Intervals(durationSeconds int64) int64 {
	if durationSeconds <= 0 {
		return 0
	}
	return durationSeconds / DiscountInterval
}

// DiscountWithinFloor reports whether applying discountWei once per completed interval keeps
// the price at or above bottomWei.
func DiscountWithinFloor(startWei, bottomWei, discountWei *big.Int, durationSeconds int64) bool {
	total := new(big.Int).Mul(discountWei, big.NewInt(Intervals(durationSeconds)))
	return total.Cmp(new(big.Int).Sub(startWei, bottomWei)) <= 0
}
