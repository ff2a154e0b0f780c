package server

import (
	"context"
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"harbour-market/internal/domain/service/negotiation"
	"harbour-market/internal/domain/value"
	"harbour-market/pkg/errcodes"
	"harbour-market/pkg/httpx/reply"
	"harbour-market/pkg/httpx/req"
	"harbour-market/pkg/rest"
)

type negotiationService interface {
	DecideBid(ctx context.Context, callerID value.UserID, equipmentID value.EquipmentID, decision value.Decision) (negotiation.BidDecision, error)
	AnswerQuote(ctx context.Context, callerID value.UserID, quoteID value.QuoteID, amount value.Money) (negotiation.QuoteAnswer, error)
}

type NegotiationServer struct {
	negotiationService negotiationService
}

func NewNegotiationServer(negotiationService negotiationService) NegotiationServer {
	return NegotiationServer{
		negotiationService: negotiationService,
	}
}

func (s NegotiationServer) postV1BidDecision(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	caller, err := callerID(ctx)
	if err != nil {
		return err
	}

	equipmentID, err := value.ParseEquipmentID(r.PathValue("id"))
	if err != nil {
		return fmt.Errorf("value.ParseEquipmentID: %w", err)
	}

	var request rest.BidDecisionRequest
	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	result, err := s.negotiationService.DecideBid(ctx, caller, equipmentID, value.DecisionFromToken(request.Decision))
	if err != nil {
		return fmt.Errorf("negotiationService.DecideBid: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.BidDecisionResponse{Bid: newRESTBid(result.Bid)})

	return nil
}

func (s NegotiationServer) postV1QuoteAnswer(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	caller, err := callerID(ctx)
	if err != nil {
		return err
	}

	quoteID, err := value.ParseQuoteID(r.PathValue("id"))
	if err != nil {
		return fmt.Errorf("value.ParseQuoteID: %w", err)
	}

	var request rest.QuoteAnswerRequest
	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	amount, err := value.NewMoney(request.Amount.MinorUnits, request.Amount.Currency)
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.NewMoney: %w", err),
			failure.WithCode(errcodes.InvalidAmount),
		)
	}

	result, err := s.negotiationService.AnswerQuote(ctx, caller, quoteID, amount)
	if err != nil {
		return fmt.Errorf("negotiationService.AnswerQuote: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.QuoteAnswerResponse{Quote: newRESTQuote(result.Quote)})

	return nil
}
