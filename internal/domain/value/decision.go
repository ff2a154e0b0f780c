package value

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionDecline Decision = "decline"
)

// DecisionFromToken maps the seller's token onto the two reachable
// outcomes. "approve" approves; any other token declines.
func DecisionFromToken(raw string) Decision {
	if Decision(raw) == DecisionApprove {
		return DecisionApprove
	}

	return DecisionDecline
}

// Status is the bid status a decision settles on.
func (d Decision) Status() BidStatus {
	if d == DecisionApprove {
		return BidStatusApproved
	}

	return BidStatusDeclined
}
