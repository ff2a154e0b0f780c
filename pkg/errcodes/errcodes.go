package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Unauthenticated     failure.ErrorCode = "Unauthenticated"

	InvalidEquipmentID failure.ErrorCode = "InvalidEquipmentID"
	InvalidQuoteID     failure.ErrorCode = "InvalidQuoteID"
	InvalidUserID      failure.ErrorCode = "InvalidUserID"
	InvalidAmount      failure.ErrorCode = "InvalidAmount"

	EquipmentNotFound   failure.ErrorCode = "EquipmentNotFound"
	EquipmentInCheckout failure.ErrorCode = "EquipmentInCheckout"
	BidNotFound         failure.ErrorCode = "BidNotFound"
	UnauthorizedBid     failure.ErrorCode = "UnauthorizedBid"
	BidAlreadyDecided   failure.ErrorCode = "BidAlreadyDecided"
	QuoteNotFound       failure.ErrorCode = "QuoteNotFound"
	UserNotFound        failure.ErrorCode = "UserNotFound"
	SellerNotFound      failure.ErrorCode = "SellerNotFound"
)
