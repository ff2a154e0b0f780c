package value

import (
	"git.appkode.ru/pub/go/failure"

	"harbour-market/pkg/errcodes"
)

type (
	BidID       string
	QuoteID     string
	EquipmentID string
	UserID      string
	SellerID    string
	CartItemID  string
	CheckoutID  string
	EventID     string
)

func (id BidID) String() string       { return string(id) }
func (id QuoteID) String() string     { return string(id) }
func (id EquipmentID) String() string { return string(id) }
func (id UserID) String() string      { return string(id) }
func (id SellerID) String() string    { return string(id) }
func (id CartItemID) String() string  { return string(id) }
func (id CheckoutID) String() string  { return string(id) }
func (id EventID) String() string     { return string(id) }

func ParseEquipmentID(raw string) (EquipmentID, error) {
	if raw == "" {
		return "", failure.NewInvalidArgumentError(
			"equipment id is empty",
			failure.WithCode(errcodes.InvalidEquipmentID),
		)
	}

	return EquipmentID(raw), nil
}

func ParseQuoteID(raw string) (QuoteID, error) {
	if raw == "" {
		return "", failure.NewInvalidArgumentError(
			"quote id is empty",
			failure.WithCode(errcodes.InvalidQuoteID),
		)
	}

	return QuoteID(raw), nil
}

func ParseUserID(raw string) (UserID, error) {
	if raw == "" {
		return "", failure.NewInvalidArgumentError(
			"user id is empty",
			failure.WithCode(errcodes.InvalidUserID),
		)
	}

	return UserID(raw), nil
}
