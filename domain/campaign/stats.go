package campaign

import (
	"math/big"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flixe/goapi/base/unit"
	"github.com/flixe/goapi/domain"
)

const day = 24 * time.Hour

// DaysLeft rounds the time remaining up to whole days. An expired campaign has 0.
func DaysLeft(deadline, now time.Time) int64 {
	left := deadline.Sub(now)
	if left <= 0 {
		return 0
	}
	return int64((left + day - 1) / day)
}

// PercentFunded is collected/target as a whole percentage, rounded to nearest.
func PercentFunded(target, collected *big.Int) int64 {
	if target == nil || target.Sign() <= 0 || collected == nil {
		return 0
	}
	return decimal.NewFromBigInt(collected, 0).Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromBigInt(target, 0)).Round(0).IntPart()
}

// AggregateDonors sums the donations of each donor. Donors are ordered by total, largest
// first; ties keep the order of their first donation.
func AggregateDonors(addresses []domain.Address, amounts []*big.Int) *Donors {
	idx := map[domain.Address]int{}
	totals := []*big.Int{}
	res := &Donors{Donors: []Donor{}, Total: decimal.Zero}
	all := new(big.Int)
	for i, addr := range addresses {
		if i >= len(amounts) {
			break
		}
		key := addr.ToLower()
		pos, ok := idx[key]
		if !ok {
			pos = len(res.Donors)
			idx[key] = pos
			res.Donors = append(res.Donors, Donor{Address: key})
			totals = append(totals, new(big.Int))
		}
		totals[pos].Add(totals[pos], amounts[i])
		res.Donors[pos].Donations++
		all.Add(all, amounts[i])
		res.Count++
	}
	for i := range res.Donors {
		res.Donors[i].Total = unit.FromWei(totals[i])
	}
	sort.SliceStable(res.Donors, func(i, j int) bool {
		return res.Donors[i].Total.GreaterThan(res.Donors[j].Total)
	})
	res.Total = unit.FromWei(all)
	return res
}
