package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode is the machine-readable code surfaced in API error bodies.
type ErrorCode string

const (
	ErrCodeListingNotFound   ErrorCode = "LISTING_NOT_FOUND"
	ErrCodeTierNotFound      ErrorCode = "TIER_NOT_FOUND"
	ErrCodeItemNotOwned      ErrorCode = "ITEM_NOT_OWNED"
	ErrCodeNotTheSeller      ErrorCode = "NOT_THE_SELLER"
	ErrCodeListingNotActive  ErrorCode = "LISTING_NOT_ACTIVE"
	ErrCodeMissingUsername   ErrorCode = "MISSING_USERNAME"
	ErrCodeMissingBuyerInfo  ErrorCode = "MISSING_BUYER_INFO"
	ErrCodeInsufficientFunds ErrorCode = "INSUFFICIENT_BALANCE"
	ErrCodePaymentFailed     ErrorCode = "PAYMENT_VERIFICATION_FAILED"
	ErrCodeInvalidPayment    ErrorCode = "INVALID_PAYMENT_HEADER"
	ErrCodeListingCreate     ErrorCode = "LISTING_CREATE_FAILED"
	ErrCodeInvalidParam      ErrorCode = "INVALID_PARAM"
	ErrCodeInternal          ErrorCode = "INTERNAL_ERROR"
	ErrCodeTradeFailed       ErrorCode = "TRADE_FAILED"
	ErrCodeItemLocked        ErrorCode = "ITEM_LOCKED"
	ErrCodeItemNotFound      ErrorCode = "ITEM_NOT_FOUND"
)

// AppError is the single structured error type carried across layers.
// Code and Message end up in the response body, HttpStatus selects the
// response status.
type AppError struct {
	Code       ErrorCode `json:"error"`
	Message    string    `json:"message"`
	HttpStatus int       `json:"-"`
	cause      error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Is matches on Code so sentinel comparison via errors.Is keeps working
// after wrapping.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// WithMessagef clones the error with a more specific message.
func (e *AppError) WithMessagef(format string, args ...interface{}) *AppError {
	clone := *e
	clone.Message = fmt.Sprintf(format, args...)
	return &clone
}

// WithCause clones the error keeping the original failure attached.
func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.cause = cause
	return &clone
}

func NewAppError(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HttpStatus: httpStatus}
}

// AsAppError unpacks err into an *AppError when possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
}

var (
	ErrListingNotFound     = NewAppError(ErrCodeListingNotFound, "listing not found", http.StatusNotFound)
	ErrTierNotFound        = NewAppError(ErrCodeTierNotFound, "mystery box tier not found", http.StatusNotFound)
	ErrItemNotOwned        = NewAppError(ErrCodeItemNotOwned, "item does not exist or is not owned by seller", http.StatusForbidden)
	ErrNotTheSeller        = NewAppError(ErrCodeNotTheSeller, "only the seller can cancel this listing", http.StatusForbidden)
	ErrListingNotActive    = NewAppError(ErrCodeListingNotActive, "listing is not active", http.StatusBadRequest)
	ErrMissingUsername     = NewAppError(ErrCodeMissingUsername, "username is required", http.StatusBadRequest)
	ErrMissingBuyerInfo    = NewAppError(ErrCodeMissingBuyerInfo, "buyer info is required", http.StatusBadRequest)
	ErrInsufficientBalance = NewAppError(ErrCodeInsufficientFunds, "insufficient balance", http.StatusBadRequest)
	ErrPaymentFailed       = NewAppError(ErrCodePaymentFailed, "payment verification failed", http.StatusBadRequest)
	ErrInvalidPayment      = NewAppError(ErrCodeInvalidPayment, "invalid payment header", http.StatusBadRequest)
	ErrListingCreate       = NewAppError(ErrCodeListingCreate, "failed to create listing", http.StatusInternalServerError)
	ErrInvalidParam        = NewAppError(ErrCodeInvalidParam, "given param is not valid", http.StatusBadRequest)
	ErrInternal            = NewAppError(ErrCodeInternal, "internal server error", http.StatusInternalServerError)
	ErrTradeFailed         = NewAppError(ErrCodeTradeFailed, "atomic trade failed", http.StatusInternalServerError)
	ErrItemLocked          = NewAppError(ErrCodeItemLocked, "item is locked by another listing", http.StatusConflict)
	ErrItemNotFound        = NewAppError(ErrCodeItemNotFound, "item not found", http.StatusNotFound)

	// ErrNotFound is the storage-level sentinel, mapped to a typed
	// AppError by the layer that knows which entity was missing.
	ErrNotFound = errors.New("requested entity not found")
)
