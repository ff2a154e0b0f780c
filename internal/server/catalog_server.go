package server

import (
	"context"
	"fmt"
	"net/http"

	"harbour-market/internal/domain/entity"
	"harbour-market/internal/domain/value"
	"harbour-market/pkg/httpx/reply"
	"harbour-market/pkg/lox"
	"harbour-market/pkg/rest"
)

type catalogService interface {
	ListEquipments(ctx context.Context) ([]entity.Equipment, error)
	GetEquipment(ctx context.Context, id value.EquipmentID) (*entity.Equipment, error)
	DeleteEquipment(ctx context.Context, callerID value.UserID, id value.EquipmentID) error
	ListEquipmentBids(ctx context.Context, callerID value.UserID, id value.EquipmentID) ([]entity.Bid, error)
	ListEquipmentQuotes(ctx context.Context, callerID value.UserID, id value.EquipmentID) ([]entity.Quote, error)
	Cart(ctx context.Context, callerID value.UserID) ([]entity.CartItem, error)
	Notifications(ctx context.Context, callerID value.UserID) ([]entity.Notification, error)
}

type CatalogServer struct {
	catalogService catalogService
}

func NewCatalogServer(catalogService catalogService) CatalogServer {
	return CatalogServer{
		catalogService: catalogService,
	}
}

func (s CatalogServer) getV1Equipments(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	equipments, err := s.catalogService.ListEquipments(ctx)
	if err != nil {
		return fmt.Errorf("catalogService.ListEquipments: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, lox.Map(equipments, newRESTEquipment))

	return nil
}

func (s CatalogServer) getV1Equipment(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := value.ParseEquipmentID(r.PathValue("id"))
	if err != nil {
		return fmt.Errorf("value.ParseEquipmentID: %w", err)
	}

	equipment, err := s.catalogService.GetEquipment(ctx, id)
	if err != nil {
		return fmt.Errorf("catalogService.GetEquipment: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.EquipmentResponse{Equipment: newRESTEquipment(*equipment)})

	return nil
}

func (s CatalogServer) deleteV1Equipment(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	caller, err := callerID(ctx)
	if err != nil {
		return err
	}

	id, err := value.ParseEquipmentID(r.PathValue("id"))
	if err != nil {
		return fmt.Errorf("value.ParseEquipmentID: %w", err)
	}

	if err = s.catalogService.DeleteEquipment(ctx, caller, id); err != nil {
		return fmt.Errorf("catalogService.DeleteEquipment: %w", err)
	}

	reply.OK(w)

	return nil
}

func (s CatalogServer) getV1EquipmentBids(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	caller, err := callerID(ctx)
	if err != nil {
		return err
	}

	id, err := value.ParseEquipmentID(r.PathValue("id"))
	if err != nil {
		return fmt.Errorf("value.ParseEquipmentID: %w", err)
	}

	bids, err := s.catalogService.ListEquipmentBids(ctx, caller, id)
	if err != nil {
		return fmt.Errorf("catalogService.ListEquipmentBids: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.BidListResponse{Bids: lox.Map(bids, newRESTBid)})

	return nil
}

func (s CatalogServer) getV1EquipmentQuotes(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	caller, err := callerID(ctx)
	if err != nil {
		return err
	}

	id, err := value.ParseEquipmentID(r.PathValue("id"))
	if err != nil {
		return fmt.Errorf("value.ParseEquipmentID: %w", err)
	}

	quotes, err := s.catalogService.ListEquipmentQuotes(ctx, caller, id)
	if err != nil {
		return fmt.Errorf("catalogService.ListEquipmentQuotes: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.QuoteListResponse{Quotes: lox.Map(quotes, newRESTQuote)})

	return nil
}

func (s CatalogServer) getV1Cart(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	caller, err := callerID(ctx)
	if err != nil {
		return err
	}

	items, err := s.catalogService.Cart(ctx, caller)
	if err != nil {
		return fmt.Errorf("catalogService.Cart: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.CartResponse{Items: lox.Map(items, newRESTCartItem)})

	return nil
}

func (s CatalogServer) getV1Notifications(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	caller, err := callerID(ctx)
	if err != nil {
		return err
	}

	notifications, err := s.catalogService.Notifications(ctx, caller)
	if err != nil {
		return fmt.Errorf("catalogService.Notifications: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.NotificationListResponse{Notifications: lox.Map(notifications, newRESTNotification)})

	return nil
}
