package entity

import "harbour-market/internal/domain/value"

type User struct {
	ID        value.UserID
	FirstName string
	LastName  string
	Email     string
}

type Seller struct {
	ID           value.SellerID
	UserID       value.UserID
	FirstName    string
	LastName     string
	CompanyName  string
	CompanyEmail string
}
