package listing

// Transition is the on-chain step needed to move a token between sale statuses.
type Transition string

const (
	TransitionNone           Transition = ""
	TransitionUnlist         Transition = "unlist"
	TransitionCancelAuction  Transition = "cancelAuction"
	TransitionUnlistRental   Transition = "unlistRental"
	TransitionListForSale    Transition = "listForSale"
	TransitionStartAuction   Transition = "startAuction"
	TransitionListForRent    Transition = "listForRent"
	TransitionNotPermissible Transition = "notPermissible"
)

// TransitionFor returns the step from one status to another. Listing in any form is only
// possible from STREAM; going back to STREAM undoes the current listing.
func TransitionFor(from, to SaleStatus) Transition {
	if to == SaleStatusStream {
		switch from {
		case SaleStatusStream:
			return TransitionNone
		case SaleStatusSale:
			return TransitionUnlist
		case SaleStatusAuction:
			return TransitionCancelAuction
		case SaleStatusRent:
			return TransitionUnlistRental
		}
		return TransitionNotPermissible
	}
	if from != SaleStatusStream {
		return TransitionNotPermissible
	}
	switch to {
	case SaleStatusSale:
		return TransitionListForSale
	case SaleStatusAuction:
		return TransitionStartAuction
	case SaleStatusRent:
		return TransitionListForRent
	}
	return TransitionNotPermissible
}

// FromChainStatus maps the status string returned by the marketplace ("Fixed", "Auction",
// "Rent" or "None") to a sale status.
func FromChainStatus(s string) SaleStatus {
	switch s {
	case "Fixed", "FIXED", "fixed", "Sale", "SALE", "sale":
		return SaleStatusSale
	case "Auction", "AUCTION", "auction":
		return SaleStatusAuction
	case "Rent", "RENT", "rent":
		return SaleStatusRent
	}
	return SaleStatusStream
}
