package value

type BidStatus string

const (
	BidStatusPending  BidStatus = "pending"
	BidStatusApproved BidStatus = "approved"
	BidStatusDeclined BidStatus = "declined"
)

func (s BidStatus) IsTerminal() bool {
	return s == BidStatusApproved || s == BidStatusDeclined
}

type QuoteFlag string

const (
	QuoteFlagRequest QuoteFlag = "request"
	QuoteFlagAnswer  QuoteFlag = "answer"
)
