// Package rest holds the wire types of the public HTTP API.
package rest

import "time"

type Error struct {
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}

type BidDecisionRequest struct {
	Decision string `json:"decision" validate:"required"`
}

type BidDecisionResponse struct {
	Bid Bid `json:"bid"`
}

type Bid struct {
	ID          string    `json:"id"`
	EquipmentID string    `json:"equipmentId"`
	BuyerID     string    `json:"buyerId"`
	SellerID    string    `json:"sellerId"`
	Amount      Money     `json:"amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type QuoteAnswerRequest struct {
	Amount Money `json:"amount" validate:"required"`
}

type QuoteAnswerResponse struct {
	Quote Quote `json:"quote"`
}

type Quote struct {
	ID          string    `json:"id"`
	EquipmentID string    `json:"equipmentId"`
	BuyerID     string    `json:"buyerId"`
	SellerID    string    `json:"sellerId"`
	Amount      *Money    `json:"amount,omitempty"`
	Flag        string    `json:"flag"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Money is a decimal amount in minor units with its ISO currency code.
type Money struct {
	MinorUnits int64  `json:"minorUnits" validate:"gt=0"`
	Currency   string `json:"currency" validate:"required,iso4217"`
}

type BidListResponse struct {
	Bids []Bid `json:"bids"`
}

type QuoteListResponse struct {
	Quotes []Quote `json:"quotes"`
}

type CartResponse struct {
	Items []CartItem `json:"items"`
}

type CartItem struct {
	ID           string    `json:"id"`
	EquipmentID  string    `json:"equipmentId"`
	CheckoutID   string    `json:"checkoutId"`
	Amount       Money     `json:"amount"`
	BiddedAmount *Money    `json:"biddedAmount,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Equipment struct {
	ID        string    `json:"id"`
	SellerID  string    `json:"sellerId"`
	Name      string    `json:"name"`
	Price     Money     `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}

type EquipmentResponse struct {
	Equipment Equipment `json:"equipment"`
}

type NotificationListResponse struct {
	Notifications []Notification `json:"notifications"`
}

type Notification struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	EquipmentID string    `json:"equipmentId,omitempty"`
	QuoteID     string    `json:"quoteId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
