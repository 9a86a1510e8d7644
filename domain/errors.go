package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the item is not in a state that allows the action
	ErrConflict = errors.New("Item state conflicts with the action")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput       = errors.New("Given Param is not valid")
	ErrInvalidJsonFormat   = errors.New("invalid JSON format")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrUnsupportedMimeType = errors.New("unsupported mime type")

	// request error
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")
	ErrUnauthorized     = errors.New("unauthorized")

	// chain error
	ErrNoAccount           = errors.New("no account connected")
	ErrTransactionReverted = errors.New("transaction reverted")
	ErrActionNotPermitted  = errors.New("action not permitted")
	// ErrCollateralNotApproved will throw if the loan vault may not move the borrower's NFTs
	ErrCollateralNotApproved = errors.New("collateral not approved for the loan vault")
)
