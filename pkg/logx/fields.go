package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldBidID           = "bid-id"
	FieldBuyerID         = "buyer-id"
	FieldDurationMs      = "duration-ms"
	FieldEquipmentID     = "equipment-id"
	FieldError           = "error"
	FieldEventID         = "event-id"
	FieldEventKind       = "event-kind"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldQuoteID         = "quote-id"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldSellerID        = "seller-id"
	FieldStack           = "stack"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
	FieldUserID          = "user-id"
)
