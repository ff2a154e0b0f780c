package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"harbour-market/internal/domain/entity"
	"harbour-market/internal/domain/service/negotiation"
	"harbour-market/internal/domain/value"
	"harbour-market/internal/server"
	"harbour-market/pkg/middlewarex"
	"harbour-market/pkg/rest"
	"harbour-market/pkg/tests"
)

type fakeNegotiationService struct {
	decideBid   func(value.UserID, value.EquipmentID, value.Decision) (negotiation.BidDecision, error)
	answerQuote func(value.UserID, value.QuoteID, value.Money) (negotiation.QuoteAnswer, error)
}

func (f *fakeNegotiationService) DecideBid(_ context.Context, callerID value.UserID, equipmentID value.EquipmentID, decision value.Decision) (negotiation.BidDecision, error) {
	return f.decideBid(callerID, equipmentID, decision)
}

func (f *fakeNegotiationService) AnswerQuote(_ context.Context, callerID value.UserID, quoteID value.QuoteID, amount value.Money) (negotiation.QuoteAnswer, error) {
	return f.answerQuote(callerID, quoteID, amount)
}

type fakeCatalogService struct {
	cart []entity.CartItem
}

func (f *fakeCatalogService) ListEquipments(context.Context) ([]entity.Equipment, error) {
	return nil, nil
}

func (f *fakeCatalogService) GetEquipment(context.Context, value.EquipmentID) (*entity.Equipment, error) {
	return &entity.Equipment{}, nil
}

func (f *fakeCatalogService) DeleteEquipment(context.Context, value.UserID, value.EquipmentID) error {
	return nil
}

func (f *fakeCatalogService) ListEquipmentBids(context.Context, value.UserID, value.EquipmentID) ([]entity.Bid, error) {
	return nil, nil
}

func (f *fakeCatalogService) ListEquipmentQuotes(context.Context, value.UserID, value.EquipmentID) ([]entity.Quote, error) {
	return nil, nil
}

func (f *fakeCatalogService) Cart(context.Context, value.UserID) ([]entity.CartItem, error) {
	return f.cart, nil
}

func (f *fakeCatalogService) Notifications(context.Context, value.UserID) ([]entity.Notification, error) {
	return nil, nil
}

func newTestServer(t *testing.T, negotiationSvc *fakeNegotiationService, catalogSvc *fakeCatalogService) tests.APIClient {
	t.Helper()

	router := chi.NewRouter()
	router.Use(middlewarex.UserID)

	srv := server.NewServer(
		server.NewNegotiationServer(negotiationSvc),
		server.NewCatalogServer(catalogSvc),
	)
	srv.RegisterRoutes(router)

	httpServer := httptest.NewServer(router)
	t.Cleanup(httpServer.Close)

	return tests.NewAPIClient(httpServer.URL, nil)
}

func asSeller(userID string) http.Header {
	return http.Header{"X-User-Id": []string{userID}}
}

func TestPostBidDecision(t *testing.T) {
	negotiationSvc := &fakeNegotiationService{
		decideBid: func(callerID value.UserID, equipmentID value.EquipmentID, decision value.Decision) (negotiation.BidDecision, error) {
			require.Equal(t, value.UserID("user-seller"), callerID)
			require.Equal(t, value.EquipmentID("equipment-1"), equipmentID)
			require.Equal(t, value.DecisionApprove, decision)

			return negotiation.BidDecision{
				Bid: entity.Bid{
					ID:          "bid-1",
					EquipmentID: equipmentID,
					BuyerID:     "user-buyer",
					SellerID:    "seller-1",
					Amount:      value.Money{MinorUnits: 11800000, Currency: "USD"},
					Status:      value.BidStatusApproved,
					CreatedAt:   time.Now(),
					UpdatedAt:   time.Now(),
				},
			}, nil
		},
	}

	client := newTestServer(t, negotiationSvc, &fakeCatalogService{})

	var response rest.BidDecisionResponse
	var errResponse rest.Error

	resp, err := client.Post(
		context.Background(),
		"/v1/sellers/equipments/equipment-1/decision",
		asSeller("user-seller"),
		rest.BidDecisionRequest{Decision: "approve"},
		&response,
		&errResponse,
	)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "bid-1", response.Bid.ID)
	require.Equal(t, "approved", response.Bid.Status)
}

func TestPostBidDecisionWithoutIdentity(t *testing.T) {
	client := newTestServer(t, &fakeNegotiationService{}, &fakeCatalogService{})

	var errResponse rest.Error

	resp, err := client.Post(
		context.Background(),
		"/v1/sellers/equipments/equipment-1/decision",
		nil,
		rest.BidDecisionRequest{Decision: "approve"},
		nil,
		&errResponse,
	)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPostBidDecisionUnknownTokenDeclines(t *testing.T) {
	negotiationSvc := &fakeNegotiationService{
		decideBid: func(_ value.UserID, equipmentID value.EquipmentID, decision value.Decision) (negotiation.BidDecision, error) {
			require.Equal(t, value.DecisionDecline, decision)

			return negotiation.BidDecision{
				Bid: entity.Bid{ID: "bid-1", EquipmentID: equipmentID, Status: value.BidStatusDeclined},
			}, nil
		},
	}

	client := newTestServer(t, negotiationSvc, &fakeCatalogService{})

	var response rest.BidDecisionResponse
	var errResponse rest.Error

	resp, err := client.Post(
		context.Background(),
		"/v1/sellers/equipments/equipment-1/decision",
		asSeller("user-seller"),
		rest.BidDecisionRequest{Decision: "maybe"},
		&response,
		&errResponse,
	)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "declined", response.Bid.Status)
}

func TestPostBidDecisionRejectsEmptyToken(t *testing.T) {
	client := newTestServer(t, &fakeNegotiationService{}, &fakeCatalogService{})

	var errResponse rest.Error

	resp, err := client.Post(
		context.Background(),
		"/v1/sellers/equipments/equipment-1/decision",
		asSeller("user-seller"),
		rest.BidDecisionRequest{},
		nil,
		&errResponse,
	)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPostQuoteAnswer(t *testing.T) {
	negotiationSvc := &fakeNegotiationService{
		answerQuote: func(callerID value.UserID, quoteID value.QuoteID, amount value.Money) (negotiation.QuoteAnswer, error) {
			require.Equal(t, value.QuoteID("quote-1"), quoteID)
			require.Equal(t, int64(9950000), amount.MinorUnits)

			return negotiation.QuoteAnswer{
				Quote: entity.Quote{
					ID:          quoteID,
					EquipmentID: "equipment-1",
					BuyerID:     "user-buyer",
					SellerID:    "seller-1",
					Amount:      &amount,
					Flag:        value.QuoteFlagAnswer,
				},
			}, nil
		},
	}

	client := newTestServer(t, negotiationSvc, &fakeCatalogService{})

	var response rest.QuoteAnswerResponse
	var errResponse rest.Error

	resp, err := client.Post(
		context.Background(),
		"/v1/sellers/quotes/quote-1/answer",
		asSeller("user-seller"),
		rest.QuoteAnswerRequest{Amount: rest.Money{MinorUnits: 9950000, Currency: "USD"}},
		&response,
		&errResponse,
	)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "answer", response.Quote.Flag)
	require.NotNil(t, response.Quote.Amount)
}

func TestPostQuoteAnswerRejectsNonPositiveAmount(t *testing.T) {
	client := newTestServer(t, &fakeNegotiationService{}, &fakeCatalogService{})

	var errResponse rest.Error

	resp, err := client.Post(
		context.Background(),
		"/v1/sellers/quotes/quote-1/answer",
		asSeller("user-seller"),
		map[string]any{"amount": map[string]any{"minorUnits": -5, "currency": "USD"}},
		nil,
		&errResponse,
	)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetCart(t *testing.T) {
	amount := tests.NewRandomizer().Int63()

	catalogSvc := &fakeCatalogService{
		cart: []entity.CartItem{{
			ID:          "cart-1",
			UserID:      "user-buyer",
			EquipmentID: "equipment-1",
			CheckoutID:  "checkout-1",
			Amount:      value.Money{MinorUnits: amount, Currency: "USD"},
		}},
	}

	client := newTestServer(t, &fakeNegotiationService{}, catalogSvc)

	var response rest.CartResponse
	var errResponse rest.Error

	resp, err := client.Get(context.Background(), "/v1/cart", asSeller("user-buyer"), &response, &errResponse)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, response.Items, 1)
	require.Equal(t, "checkout-1", response.Items[0].CheckoutID)
	require.Equal(t, amount, response.Items[0].Amount.MinorUnits)
}
