// Package negotiation settles buyer bids and quote requests on behalf
// of sellers and records the resulting cart and messaging side effects.
package negotiation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"git.appkode.ru/pub/go/failure"

	"harbour-market/internal/domain"
	"harbour-market/internal/domain/entity"
	"harbour-market/internal/domain/value"
	"harbour-market/pkg/logx"
)

type TxRunner interface {
	Atomically(ctx context.Context, fn func(ctx context.Context) error) error
}

type EquipmentRepository interface {
	GetByID(ctx context.Context, id value.EquipmentID) (*entity.Equipment, error)
}

type BidRepository interface {
	FindNewest(ctx context.Context, equipmentID value.EquipmentID, sellerID value.SellerID) (*entity.Bid, error)
	UpdateStatus(ctx context.Context, id value.BidID, status value.BidStatus) error
}

type QuoteRepository interface {
	GetByID(ctx context.Context, id value.QuoteID) (*entity.Quote, error)
	Answer(ctx context.Context, id value.QuoteID, amount value.Money) error
}

type CartRepository interface {
	UpsertFromApprovedBid(ctx context.Context, userID value.UserID, equipmentID value.EquipmentID, amount value.Money) error
	Remove(ctx context.Context, userID value.UserID, equipmentID value.EquipmentID) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id value.UserID) (*entity.User, error)
}

type SellerRepository interface {
	GetByUserID(ctx context.Context, userID value.UserID) (*entity.Seller, error)
}

type OutboxJournal interface {
	Append(ctx context.Context, event entity.OutboxEvent) error
}

type BidDecision struct {
	Bid       entity.Bid
	Equipment entity.Equipment
	Seller    entity.Seller
	Buyer     entity.User
}

type QuoteAnswer struct {
	Quote     entity.Quote
	Equipment entity.Equipment
	Buyer     entity.User
}

type Service struct {
	tx            TxRunner
	equipmentRepo EquipmentRepository
	bidRepo       BidRepository
	quoteRepo     QuoteRepository
	cartRepo      CartRepository
	userRepo      UserRepository
	sellerRepo    SellerRepository
	outbox        OutboxJournal
	locks         *keyedMutex
	now           func() time.Time
}

func NewService(
	tx TxRunner,
	equipmentRepo EquipmentRepository,
	bidRepo BidRepository,
	quoteRepo QuoteRepository,
	cartRepo CartRepository,
	userRepo UserRepository,
	sellerRepo SellerRepository,
	outbox OutboxJournal,
) *Service {
	return &Service{
		tx:            tx,
		equipmentRepo: equipmentRepo,
		bidRepo:       bidRepo,
		quoteRepo:     quoteRepo,
		cartRepo:      cartRepo,
		userRepo:      userRepo,
		sellerRepo:    sellerRepo,
		outbox:        outbox,
		locks:         newKeyedMutex(),
		now:           time.Now,
	}
}

// DecideBid settles the caller's newest bid on the equipment. An
// approval reserves the equipment in the buyer's cart at the bid
// amount; a decline releases any reservation. Repeating an identical
// terminal decision succeeds without side effects; a conflicting one
// is rejected. The status write, the cart change and the outbox
// records commit together or not at all.
func (s *Service) DecideBid(
	ctx context.Context,
	callerID value.UserID,
	equipmentID value.EquipmentID,
	decision value.Decision,
) (BidDecision, error) {
	seller, err := s.sellerRepo.GetByUserID(ctx, callerID)
	if err != nil {
		return BidDecision{}, fmt.Errorf("sellerRepo.GetByUserID: %w", err)
	}

	equipment, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return BidDecision{}, fmt.Errorf("equipmentRepo.GetByID: %w", err)
	}

	unlock := s.locks.Lock(equipmentID.String() + "/" + seller.ID.String())
	defer unlock()

	var result BidDecision

	err = s.tx.Atomically(ctx, func(ctx context.Context) error {
		bid, err := s.bidRepo.FindNewest(ctx, equipmentID, seller.ID)
		if err != nil {
			if failure.IsNotFoundError(err) {
				return domain.NewUnauthorizedBidError()
			}

			return fmt.Errorf("bidRepo.FindNewest: %w", err)
		}

		buyer, err := s.userRepo.GetByID(ctx, bid.BuyerID)
		if err != nil {
			return fmt.Errorf("userRepo.GetByID: %w", err)
		}

		status := decision.Status()

		if bid.Status.IsTerminal() {
			if bid.Status == status {
				result = BidDecision{Bid: *bid, Equipment: *equipment, Seller: *seller, Buyer: *buyer}
				return nil
			}

			return domain.NewBidAlreadyDecidedError(string(bid.Status))
		}

		if err = s.bidRepo.UpdateStatus(ctx, bid.ID, status); err != nil {
			return fmt.Errorf("bidRepo.UpdateStatus: %w", err)
		}

		bid.Status = status
		bid.UpdatedAt = s.now()

		if status == value.BidStatusApproved {
			if err = s.cartRepo.UpsertFromApprovedBid(ctx, bid.BuyerID, equipmentID, bid.Amount); err != nil {
				return fmt.Errorf("cartRepo.UpsertFromApprovedBid: %w", err)
			}
		} else {
			if err = s.cartRepo.Remove(ctx, bid.BuyerID, equipmentID); err != nil {
				return fmt.Errorf("cartRepo.Remove: %w", err)
			}
		}

		if err = s.recordBidOutcome(ctx, bid, equipment, seller, buyer); err != nil {
			return err
		}

		result = BidDecision{Bid: *bid, Equipment: *equipment, Seller: *seller, Buyer: *buyer}

		return nil
	})
	if err != nil {
		return BidDecision{}, err
	}

	logger(ctx).Info(
		"bid decided",
		slog.String(logx.FieldBidID, result.Bid.ID.String()),
		slog.String(logx.FieldEquipmentID, equipmentID.String()),
		slog.String("status", string(result.Bid.Status)),
	)

	return result, nil
}

func (s *Service) recordBidOutcome(
	ctx context.Context,
	bid *entity.Bid,
	equipment *entity.Equipment,
	seller *entity.Seller,
	buyer *entity.User,
) error {
	notification, err := entity.NewNotificationEvent(entity.Notification{
		UserID:      buyer.ID,
		Title:       fmt.Sprintf("Bid for %s %s", equipment.Name, bid.Status),
		Description: fmt.Sprintf("%s %s your bid for %s", seller.FirstName, bid.Status, equipment.Name),
		Type:        entity.NotificationTypeBid,
		EquipmentID: equipment.ID,
	}, s.now())
	if err != nil {
		return fmt.Errorf("entity.NewNotificationEvent: %w", err)
	}

	if err = s.outbox.Append(ctx, notification); err != nil {
		return fmt.Errorf("outbox.Append(notification): %w", err)
	}

	email, err := entity.NewEmailEvent(entity.EmailMessage{
		Kind:           entity.EmailKindBidOutcome,
		To:             buyer.Email,
		BuyerFirstName: buyer.FirstName,
		SellerName:     seller.FirstName + " " + seller.LastName,
		EquipmentName:  equipment.Name,
		BidStatus:      bid.Status,
		Amount:         &bid.Amount,
	}, s.now())
	if err != nil {
		return fmt.Errorf("entity.NewEmailEvent: %w", err)
	}

	if err = s.outbox.Append(ctx, email); err != nil {
		return fmt.Errorf("outbox.Append(email): %w", err)
	}

	return nil
}

// AnswerQuote names the seller's price on a buyer's quote request.
// Answering an already answered quote overwrites the previous amount.
func (s *Service) AnswerQuote(
	ctx context.Context,
	callerID value.UserID,
	quoteID value.QuoteID,
	amount value.Money,
) (QuoteAnswer, error) {
	seller, err := s.sellerRepo.GetByUserID(ctx, callerID)
	if err != nil {
		return QuoteAnswer{}, fmt.Errorf("sellerRepo.GetByUserID: %w", err)
	}

	var result QuoteAnswer

	err = s.tx.Atomically(ctx, func(ctx context.Context) error {
		quote, err := s.quoteRepo.GetByID(ctx, quoteID)
		if err != nil {
			return fmt.Errorf("quoteRepo.GetByID: %w", err)
		}

		if quote.SellerID != seller.ID {
			return failure.NewForbiddenError("quote belongs to another seller")
		}

		equipment, err := s.equipmentRepo.GetByID(ctx, quote.EquipmentID)
		if err != nil {
			if failure.IsNotFoundError(err) {
				// The quote outlived its equipment. Deliberately not wrapped:
				// this is a data fault, not a recoverable client error.
				return fmt.Errorf("quote %s references missing equipment %s", quoteID, quote.EquipmentID)
			}

			return fmt.Errorf("equipmentRepo.GetByID: %w", err)
		}

		buyer, err := s.userRepo.GetByID(ctx, quote.BuyerID)
		if err != nil {
			return fmt.Errorf("userRepo.GetByID: %w", err)
		}

		if err = s.quoteRepo.Answer(ctx, quoteID, amount); err != nil {
			return fmt.Errorf("quoteRepo.Answer: %w", err)
		}

		quote.Amount = &amount
		quote.Flag = value.QuoteFlagAnswer
		quote.UpdatedAt = s.now()

		if err = s.recordQuoteAnswer(ctx, quote, equipment, seller, buyer); err != nil {
			return err
		}

		result = QuoteAnswer{Quote: *quote, Equipment: *equipment, Buyer: *buyer}

		return nil
	})
	if err != nil {
		return QuoteAnswer{}, err
	}

	logger(ctx).Info(
		"quote answered",
		slog.String(logx.FieldQuoteID, quoteID.String()),
		slog.String(logx.FieldEquipmentID, result.Equipment.ID.String()),
	)

	return result, nil
}

func (s *Service) recordQuoteAnswer(
	ctx context.Context,
	quote *entity.Quote,
	equipment *entity.Equipment,
	seller *entity.Seller,
	buyer *entity.User,
) error {
	notification, err := entity.NewNotificationEvent(entity.Notification{
		UserID:      buyer.ID,
		Title:       "Received a Quote - Product: " + equipment.Name,
		Description: fmt.Sprintf("%s answered your quote for %s", seller.FirstName, equipment.Name),
		Type:        entity.NotificationTypeQuote,
		EquipmentID: equipment.ID,
		QuoteID:     quote.ID,
	}, s.now())
	if err != nil {
		return fmt.Errorf("entity.NewNotificationEvent: %w", err)
	}

	if err = s.outbox.Append(ctx, notification); err != nil {
		return fmt.Errorf("outbox.Append(notification): %w", err)
	}

	email, err := entity.NewEmailEvent(entity.EmailMessage{
		Kind:           entity.EmailKindQuoteAnswer,
		To:             buyer.Email,
		BuyerFirstName: buyer.FirstName,
		SellerName:     seller.FirstName + " " + seller.LastName,
		EquipmentName:  equipment.Name,
		Amount:         quote.Amount,
	}, s.now())
	if err != nil {
		return fmt.Errorf("entity.NewEmailEvent: %w", err)
	}

	if err = s.outbox.Append(ctx, email); err != nil {
		return fmt.Errorf("outbox.Append(email): %w", err)
	}

	return nil
}
