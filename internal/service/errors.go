package service

import (
	"errors"
	"fmt"

	"split-wallet-engine/internal/core/domain"
	"split-wallet-engine/pkg/apperror"
)

// mapDomainError converts domain rule violations into AppErrors. Errors that
// are already AppErrors pass through unchanged.
func mapDomainError(err error) error {
	var appErr *apperror.AppError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, domain.ErrTerminalWallet):
		return apperror.ErrTerminalWallet()
	case errors.Is(err, domain.ErrOverpaid):
		return apperror.ErrOverpayment()
	case errors.Is(err, domain.ErrIllegalTransition):
		return apperror.ErrInvalidTransition(err.Error())
	case errors.Is(err, domain.ErrObligationMismatch),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrInvalidWeights):
		return apperror.Validation(err.Error())
	default:
		return apperror.InternalError(err)
	}
}

func storeError(op string, err error) error {
	return apperror.ErrDatabaseError(fmt.Errorf("%s: %w", op, err))
}
