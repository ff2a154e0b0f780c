package entity

import "harbour-market/internal/domain/value"

type EmailKind string

const (
	EmailKindBidOutcome  EmailKind = "bid-outcome"
	EmailKindQuoteAnswer EmailKind = "quote-answer"
)

// EmailMessage carries everything the mailer needs to render and send
// one message. It is stored as an outbox payload, so fields are flat
// values rather than entity references.
type EmailMessage struct {
	Kind           EmailKind
	To             string
	BuyerFirstName string
	SellerName     string
	EquipmentName  string
	BidStatus      value.BidStatus
	Amount         *value.Money
}
