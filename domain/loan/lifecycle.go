package loan

import (
	"math/big"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flixe/goapi/base/unit"
	"github.com/flixe/goapi/domain"
)

var hundred = big.NewInt(100)

// RepaymentAmount is the principal plus interest, in wei. Interest is rounded down to
// the wei.
func RepaymentAmount(principalWei *big.Int, interestPercentage uint64) *big.Int {
	interest := new(big.Int).Mul(principalWei, new(big.Int).SetUint64(interestPercentage))
	interest.Quo(interest, hundred)
	return interest.Add(interest, principalWei)
}

// RepaymentDisplay renders RepaymentAmount in ether.
func RepaymentDisplay(principal decimal.Decimal, interestPercentage uint64) (decimal.Decimal, error) {
	wei, err := unit.ToWei(principal)
	if err != nil {
		return decimal.Zero, err
	}
	return unit.FromWei(RepaymentAmount(wei, interestPercentage)), nil
}

// RoleOf compares addresses case-insensitively. The borrower role wins when the caller is
// both borrower and lender.
func RoleOf(caller, borrower, lender domain.Address) Role {
	if caller.IsEmpty() {
		return RoleNone
	}
	if strings.EqualFold(string(caller), string(borrower)) {
		return RoleBorrower
	}
	if strings.EqualFold(string(caller), string(lender)) {
		return RoleLender
	}
	return RoleNone
}

// AvailableAction is the single action offered to a caller with the given role.
func AvailableAction(status Status, role Role) Action {
	switch {
	case status == StatusPending && role == RoleBorrower:
		return ActionRevoke
	case status == StatusActive && role == RoleBorrower:
		return ActionRepay
	case status == StatusPending && role == RoleLender:
		return ActionAwaiting
	}
	return ActionFund
}

// ActionPermitted tells whether the action may be sent to the vault. Fund is only offered
// on pending loans; the vault reverts anything else.
func ActionPermitted(status Status, role Role, action Action) bool {
	if action != AvailableAction(status, role) || action == ActionAwaiting {
		return false
	}
	if action == ActionFund {
		return status == StatusPending
	}
	return true
}

// CanLiquidate holds for the lender of an active loan whose deadline has passed.
func CanLiquidate(l *Loan, role Role, now time.Time) bool {
	if l == nil || l.Metadata == nil {
		return false
	}
	return l.Status == StatusActive && role == RoleLender && now.After(l.Deadline())
}

// DurationUntil is the loan duration in whole seconds, counted from now to the deadline.
func DurationUntil(deadline, now time.Time) int64 {
	secs := int64(deadline.Sub(now) / time.Second)
	if secs < 0 {
		return 0
	}
	return secs
}
