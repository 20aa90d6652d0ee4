package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an AppError for retry and propagation decisions.
type Kind string

const (
	KindValidation  Kind = "validation"
	KindNotFound    Kind = "not_found"
	KindTransient   Kind = "transient"
	KindConsistency Kind = "consistency"
	KindFatal       Kind = "fatal"
	KindSystem      Kind = "system"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	Kind       Kind   `json:"-"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(kind Kind, code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Kind:       kind,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(kind Kind, code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Kind:       kind,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// KindOf returns the Kind of err, or KindSystem for errors that are not AppErrors.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindSystem
}

// CodeOf returns the error code of err, or "" for non-AppErrors.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// IsTransient reports whether err is worth retrying.
func IsTransient(err error) bool {
	return err != nil && KindOf(err) == KindTransient
}

// ---- Validation (VAL) ----

func ErrInvalidAmount() *AppError {
	return New(KindValidation, "VAL_001", "Invalid amount", http.StatusBadRequest)
}

// Validation returns a VAL_002 input validation error.
func Validation(message string) *AppError {
	return New(KindValidation, "VAL_002", message, http.StatusBadRequest)
}

func ErrOverpayment() *AppError {
	return New(KindValidation, "VAL_003", "Payment exceeds the amount owed", http.StatusUnprocessableEntity)
}

func ErrInvalidTransition(message string) *AppError {
	return New(KindValidation, "VAL_004", message, http.StatusConflict)
}

func ErrAlreadyPaid() *AppError {
	return New(KindValidation, "VAL_005", "Participant has already paid", http.StatusConflict)
}

func ErrWalletLocked() *AppError {
	return New(KindValidation, "VAL_006", "Split wallet is locked", http.StatusConflict)
}

func ErrInsufficientFunds() *AppError {
	return New(KindValidation, "VAL_007", "Insufficient funds in split wallet", http.StatusPaymentRequired)
}

func ErrRouletteNotReady(message string) *AppError {
	return New(KindValidation, "VAL_008", message, http.StatusConflict)
}

func ErrDuplicateWallet() *AppError {
	return New(KindValidation, "VAL_009", "A split wallet already exists for this bill", http.StatusConflict)
}

// ---- Not found (SPL_404) ----

func ErrNotFound(entity string) *AppError {
	return New(KindNotFound, "SPL_404", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Fatal (SPL_403 / SPL_410) ----

func ErrUnauthorized(message string) *AppError {
	return New(KindFatal, "SPL_403", message, http.StatusForbidden)
}

func ErrTerminalWallet() *AppError {
	return New(KindFatal, "SPL_410", "Split wallet is in a terminal state", http.StatusGone)
}

// ---- Transient (NET) ----

func ErrTransient(err error) *AppError {
	return Wrap(KindTransient, "NET_001", "Upstream temporarily unavailable", http.StatusServiceUnavailable, err)
}

// ---- Consistency (SYNC) ----

func ErrConsistency(err error) *AppError {
	return Wrap(KindConsistency, "SYNC_001", "Index store is out of sync with the wallet store", http.StatusInternalServerError, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New(KindFatal, "AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrInvalidSignature() *AppError {
	return New(KindFatal, "AUTH_002", "Invalid signature", http.StatusUnauthorized)
}

func ErrTimestampExpired() *AppError {
	return New(KindFatal, "AUTH_003", "Request timestamp expired", http.StatusForbidden)
}

func ErrNonceUsed() *AppError {
	return New(KindFatal, "AUTH_004", "Nonce has already been used", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(KindValidation, "RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

func ErrPayloadTooLarge() *AppError {
	return New(KindValidation, "RATE_002", "Request body too large", http.StatusRequestEntityTooLarge)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap(KindSystem, "SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap(KindSystem, "SYS_003", "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(KindSystem, "SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
