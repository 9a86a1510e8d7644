package domain

import "github.com/shopspring/decimal"

// Purchase is the outcome of buying a token on chain. NewOwner is read back from the
// contract after the transaction settled.
type Purchase struct {
	TxHash   TxHash          `json:"txHash"`
	Price    decimal.Decimal `json:"price"`
	NewOwner Address         `json:"newOwner"`
}
