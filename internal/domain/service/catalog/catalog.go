// Package catalog serves the read side of the marketplace and the few
// catalog mutations that are guarded by cart state.
package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"git.appkode.ru/pub/go/failure"

	"harbour-market/internal/domain"
	"harbour-market/internal/domain/entity"
	"harbour-market/internal/domain/value"
	"harbour-market/pkg/logx"
)

type EquipmentRepository interface {
	GetByID(ctx context.Context, id value.EquipmentID) (*entity.Equipment, error)
	List(ctx context.Context) ([]entity.Equipment, error)
	Delete(ctx context.Context, id value.EquipmentID) error
}

type BidRepository interface {
	ListByEquipment(ctx context.Context, equipmentID value.EquipmentID) ([]entity.Bid, error)
}

type QuoteRepository interface {
	ListByEquipment(ctx context.Context, equipmentID value.EquipmentID) ([]entity.Quote, error)
}

type CartRepository interface {
	ListByUser(ctx context.Context, userID value.UserID) ([]entity.CartItem, error)
	ExistsForEquipment(ctx context.Context, equipmentID value.EquipmentID) (bool, error)
}

type NotificationRepository interface {
	ListByUser(ctx context.Context, userID value.UserID) ([]entity.Notification, error)
}

type SellerRepository interface {
	GetByUserID(ctx context.Context, userID value.UserID) (*entity.Seller, error)
}

type Service struct {
	equipmentRepo    EquipmentRepository
	bidRepo          BidRepository
	quoteRepo        QuoteRepository
	cartRepo         CartRepository
	notificationRepo NotificationRepository
	sellerRepo       SellerRepository
}

func NewService(
	equipmentRepo EquipmentRepository,
	bidRepo BidRepository,
	quoteRepo QuoteRepository,
	cartRepo CartRepository,
	notificationRepo NotificationRepository,
	sellerRepo SellerRepository,
) *Service {
	return &Service{
		equipmentRepo:    equipmentRepo,
		bidRepo:          bidRepo,
		quoteRepo:        quoteRepo,
		cartRepo:         cartRepo,
		notificationRepo: notificationRepo,
		sellerRepo:       sellerRepo,
	}
}

func (s *Service) ListEquipments(ctx context.Context) ([]entity.Equipment, error) {
	equipments, err := s.equipmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("equipmentRepo.List: %w", err)
	}

	return equipments, nil
}

func (s *Service) GetEquipment(ctx context.Context, id value.EquipmentID) (*entity.Equipment, error) {
	equipment, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("equipmentRepo.GetByID: %w", err)
	}

	return equipment, nil
}

// DeleteEquipment removes a seller's listing. Equipment held in any
// buyer's cart stays listed until the reservation is released.
func (s *Service) DeleteEquipment(ctx context.Context, callerID value.UserID, id value.EquipmentID) error {
	equipment, err := s.ownedEquipment(ctx, callerID, id)
	if err != nil {
		return err
	}

	reserved, err := s.cartRepo.ExistsForEquipment(ctx, id)
	if err != nil {
		return fmt.Errorf("cartRepo.ExistsForEquipment: %w", err)
	}

	if reserved {
		return domain.NewEquipmentInCheckoutError(id.String())
	}

	if err = s.equipmentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("equipmentRepo.Delete: %w", err)
	}

	logger(ctx).Info(
		"equipment deleted",
		slog.String(logx.FieldEquipmentID, id.String()),
		slog.String("name", equipment.Name),
	)

	return nil
}

func (s *Service) ListEquipmentBids(ctx context.Context, callerID value.UserID, id value.EquipmentID) ([]entity.Bid, error) {
	if _, err := s.ownedEquipment(ctx, callerID, id); err != nil {
		return nil, err
	}

	bids, err := s.bidRepo.ListByEquipment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("bidRepo.ListByEquipment: %w", err)
	}

	return bids, nil
}

func (s *Service) ListEquipmentQuotes(ctx context.Context, callerID value.UserID, id value.EquipmentID) ([]entity.Quote, error) {
	if _, err := s.ownedEquipment(ctx, callerID, id); err != nil {
		return nil, err
	}

	quotes, err := s.quoteRepo.ListByEquipment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("quoteRepo.ListByEquipment: %w", err)
	}

	return quotes, nil
}

func (s *Service) Cart(ctx context.Context, callerID value.UserID) ([]entity.CartItem, error) {
	items, err := s.cartRepo.ListByUser(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("cartRepo.ListByUser: %w", err)
	}

	return items, nil
}

func (s *Service) Notifications(ctx context.Context, callerID value.UserID) ([]entity.Notification, error) {
	notifications, err := s.notificationRepo.ListByUser(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("notificationRepo.ListByUser: %w", err)
	}

	return notifications, nil
}

func (s *Service) ownedEquipment(ctx context.Context, callerID value.UserID, id value.EquipmentID) (*entity.Equipment, error) {
	seller, err := s.sellerRepo.GetByUserID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("sellerRepo.GetByUserID: %w", err)
	}

	equipment, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("equipmentRepo.GetByID: %w", err)
	}

	if equipment.SellerID != seller.ID {
		return nil, failure.NewForbiddenError("equipment belongs to another seller")
	}

	return equipment, nil
}
