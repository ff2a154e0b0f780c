package server

import (
	"harbour-market/internal/domain/entity"
	"harbour-market/internal/domain/value"
	"harbour-market/pkg/rest"
)

func newRESTMoney(m value.Money) rest.Money {
	return rest.Money{
		MinorUnits: m.MinorUnits,
		Currency:   m.Currency,
	}
}

func newRESTMoneyPtr(m *value.Money) *rest.Money {
	if m == nil {
		return nil
	}

	converted := newRESTMoney(*m)

	return &converted
}

func newRESTBid(bid entity.Bid) rest.Bid {
	return rest.Bid{
		ID:          bid.ID.String(),
		EquipmentID: bid.EquipmentID.String(),
		BuyerID:     bid.BuyerID.String(),
		SellerID:    bid.SellerID.String(),
		Amount:      newRESTMoney(bid.Amount),
		Status:      string(bid.Status),
		CreatedAt:   bid.CreatedAt,
		UpdatedAt:   bid.UpdatedAt,
	}
}

func newRESTQuote(quote entity.Quote) rest.Quote {
	return rest.Quote{
		ID:          quote.ID.String(),
		EquipmentID: quote.EquipmentID.String(),
		BuyerID:     quote.BuyerID.String(),
		SellerID:    quote.SellerID.String(),
		Amount:      newRESTMoneyPtr(quote.Amount),
		Flag:        string(quote.Flag),
		CreatedAt:   quote.CreatedAt,
		UpdatedAt:   quote.UpdatedAt,
	}
}

func newRESTEquipment(equipment entity.Equipment) rest.Equipment {
	return rest.Equipment{
		ID:        equipment.ID.String(),
		SellerID:  equipment.SellerID.String(),
		Name:      equipment.Name,
		Price:     newRESTMoney(equipment.Price),
		CreatedAt: equipment.CreatedAt,
	}
}

func newRESTCartItem(item entity.CartItem) rest.CartItem {
	return rest.CartItem{
		ID:           item.ID.String(),
		EquipmentID:  item.EquipmentID.String(),
		CheckoutID:   item.CheckoutID.String(),
		Amount:       newRESTMoney(item.Amount),
		BiddedAmount: newRESTMoneyPtr(item.BiddedAmount),
		CreatedAt:    item.CreatedAt,
	}
}

func newRESTNotification(n entity.Notification) rest.Notification {
	return rest.Notification{
		ID:          n.ID.String(),
		Title:       n.Title,
		Description: n.Description,
		Type:        string(n.Type),
		EquipmentID: n.EquipmentID.String(),
		QuoteID:     n.QuoteID.String(),
		CreatedAt:   n.CreatedAt,
	}
}
