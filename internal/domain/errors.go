package domain

import (
	"git.appkode.ru/pub/go/failure"

	"harbour-market/pkg/errcodes"
)

func NewEquipmentNotFoundError(id string) error {
	return failure.NewNotFoundError(
		"equipment not found",
		failure.WithCode(errcodes.EquipmentNotFound),
		failure.WithDescription("no equipment with id "+id),
	)
}

func NewEquipmentInCheckoutError(id string) error {
	return failure.NewConflictError(
		"equipment is reserved in a checkout",
		failure.WithCode(errcodes.EquipmentInCheckout),
		failure.WithDescription("equipment "+id+" is held by at least one cart"),
	)
}

// NewUnauthorizedBidError covers both a missing bid and a bid that
// belongs to another seller. The two cases are indistinguishable on the
// wire so a caller cannot probe for other sellers' bids.
func NewUnauthorizedBidError() error {
	return failure.NewInvalidArgumentError(
		"unauthorized bid",
		failure.WithCode(errcodes.UnauthorizedBid),
	)
}

func NewBidAlreadyDecidedError(status string) error {
	return failure.NewInvalidArgumentError(
		"bid is already "+status,
		failure.WithCode(errcodes.BidAlreadyDecided),
	)
}

func NewQuoteNotFoundError(id string) error {
	return failure.NewNotFoundError(
		"quote doesn't exist",
		failure.WithCode(errcodes.QuoteNotFound),
		failure.WithDescription("no quote with id "+id),
	)
}

func NewUserNotFoundError(id string) error {
	return failure.NewNotFoundError(
		"user not found",
		failure.WithCode(errcodes.UserNotFound),
		failure.WithDescription("no user with id "+id),
	)
}

func NewSellerNotFoundError(id string) error {
	return failure.NewNotFoundError(
		"seller not found",
		failure.WithCode(errcodes.SellerNotFound),
		failure.WithDescription("no seller profile for user "+id),
	)
}
