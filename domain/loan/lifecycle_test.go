package loan

import (
	"math/big"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/flixe/goapi/domain"
)

type lifecycleSuite struct {
	suite.Suite
}

func TestLifecycle(t *testing.T) {
	suite.Run(t, new(lifecycleSuite))
}

func ether(s string) *big.Int {
	return decimal.RequireFromString(s).Shift(18).BigInt()
}

func (s *lifecycleSuite) TestRepaymentAmount() {
	s.Equal(ether("1.1"), RepaymentAmount(ether("1"), 10))
	s.Equal(ether("2.06"), RepaymentAmount(ether("2"), 3))
	s.Equal(ether("2"), RepaymentAmount(ether("1"), 100))
	// 1 wei at 50% rounds the interest down
	s.Equal(big.NewInt(1), RepaymentAmount(big.NewInt(1), 50))
	s.Equal(big.NewInt(4), RepaymentAmount(big.NewInt(3), 50))
}

func (s *lifecycleSuite) TestRepaymentDisplay() {
	got, err := RepaymentDisplay(decimal.RequireFromString("1"), 10)
	s.NoError(err)
	s.True(decimal.RequireFromString("1.1").Equal(got))

	_, err = RepaymentDisplay(decimal.RequireFromString("0.0000000000000000001"), 10)
	s.ErrorIs(err, domain.ErrBadParamInput)
}

func (s *lifecycleSuite) TestRoleOf() {
	borrower := domain.Address("0xAbC0000000000000000000000000000000000001")
	lender := domain.Address("0xabc0000000000000000000000000000000000002")

	s.Equal(RoleBorrower, RoleOf("0xabc0000000000000000000000000000000000001", borrower, lender))
	s.Equal(RoleLender, RoleOf("0xABC0000000000000000000000000000000000002", borrower, lender))
	s.Equal(RoleNone, RoleOf("0xabc0000000000000000000000000000000000003", borrower, lender))
	s.Equal(RoleNone, RoleOf("", borrower, lender))
	s.Equal(RoleBorrower, RoleOf(borrower, borrower, borrower))
}

func (s *lifecycleSuite) TestAvailableAction() {
	tests := []struct {
		status Status
		role   Role
		exp    Action
	}{
		{StatusPending, RoleBorrower, ActionRevoke},
		{StatusActive, RoleBorrower, ActionRepay},
		{StatusPending, RoleLender, ActionAwaiting},
		{StatusPending, RoleNone, ActionFund},
		{StatusActive, RoleLender, ActionFund},
		{StatusPaidOff, RoleBorrower, ActionFund},
		{StatusDefaulted, RoleNone, ActionFund},
	}
	for _, tt := range tests {
		s.Equal(tt.exp, AvailableAction(tt.status, tt.role), "%s/%s", tt.status, tt.role)
	}
}

func (s *lifecycleSuite) TestActionPermitted() {
	s.True(ActionPermitted(StatusPending, RoleNone, ActionFund))
	s.True(ActionPermitted(StatusPending, RoleBorrower, ActionRevoke))
	s.True(ActionPermitted(StatusActive, RoleBorrower, ActionRepay))
	s.False(ActionPermitted(StatusPending, RoleLender, ActionAwaiting))
	s.False(ActionPermitted(StatusActive, RoleNone, ActionFund))
	s.False(ActionPermitted(StatusPending, RoleBorrower, ActionRepay))
	s.False(ActionPermitted(StatusActive, RoleBorrower, ActionRevoke))
}

func (s *lifecycleSuite) TestCanLiquidate() {
	now := time.Unix(1700000000, 0)
	l := &Loan{Status: StatusActive, Metadata: &Metadata{Deadline: now.Add(-time.Second).Unix()}}

	s.True(CanLiquidate(l, RoleLender, now))
	s.False(CanLiquidate(l, RoleBorrower, now))
	s.False(CanLiquidate(l, RoleNone, now))

	l.Metadata.Deadline = now.Unix()
	s.False(CanLiquidate(l, RoleLender, now))

	l.Metadata.Deadline = now.Add(-time.Hour).Unix()
	l.Status = StatusPending
	s.False(CanLiquidate(l, RoleLender, now))
	s.False(CanLiquidate(&Loan{Status: StatusActive}, RoleLender, now))
}

func (s *lifecycleSuite) TestStatusFromIndex() {
	for i, exp := range []Status{StatusNonExistent, StatusPending, StatusActive, StatusPaidOff, StatusDefaulted} {
		got, err := StatusFromIndex(uint8(i))
		s.NoError(err)
		s.Equal(exp, got)
	}
	_, err := StatusFromIndex(5)
	s.Error(err)
}

func (s *lifecycleSuite) TestPrincipal() {
	l := &Loan{Metadata: &Metadata{Price: "0.5"}}
	p, err := l.Principal()
	s.NoError(err)
	s.Equal(ether("0.5"), p)

	_, err = (&Loan{}).Principal()
	s.ErrorIs(err, domain.ErrNotFound)

	l.Metadata.Price = "abc"
	_, err = l.Principal()
	s.ErrorIs(err, domain.ErrInvalidNumberFormat)
}

func (s *lifecycleSuite) TestDurationUntil() {
	now := time.Unix(1700000000, 0)
	s.Equal(int64(86400), DurationUntil(now.Add(24*time.Hour), now))
	s.Equal(int64(0), DurationUntil(now.Add(-time.Minute), now))
}
