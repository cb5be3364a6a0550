package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	InvalidPaging       failure.ErrorCode = "InvalidPaging"

	// Pricing engine
	InvalidQuantity   failure.ErrorCode = "InvalidQuantity"
	InvalidTier       failure.ErrorCode = "InvalidTier"
	InvalidOption     failure.ErrorCode = "InvalidOption"
	InvalidAdjustment failure.ErrorCode = "InvalidAdjustment"
	InvalidLineItem   failure.ErrorCode = "InvalidLineItem"

	// Catalog
	InvalidProductID failure.ErrorCode = "InvalidProductID"
	InvalidProduct   failure.ErrorCode = "InvalidProduct"
	ProductNotFound  failure.ErrorCode = "ProductNotFound"
	ProductInactive  failure.ErrorCode = "ProductInactive"
	ProductConflict  failure.ErrorCode = "ProductConflict"

	// Quotes
	InvalidQuoteID          failure.ErrorCode = "InvalidQuoteID"
	InvalidQuoteStatus      failure.ErrorCode = "InvalidQuoteStatus"
	InvalidStatusTransition failure.ErrorCode = "InvalidStatusTransition"
	QuoteNotFound           failure.ErrorCode = "QuoteNotFound"
	QuoteIncomplete         failure.ErrorCode = "QuoteIncomplete"
	EmptyQuote              failure.ErrorCode = "EmptyQuote"
)
