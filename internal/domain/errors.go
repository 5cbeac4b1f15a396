package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Domain error codes
const (
	ErrCodeInvalidAmount     = "INVALID_AMOUNT"
	ErrCodeInsufficientFunds = "INSUFFICIENT_FUNDS"
	ErrCodeNegativeBalance   = "NEGATIVE_BALANCE"
	ErrCodeAccountNotFound   = "ACCOUNT_NOT_FOUND"
	ErrCodeDuplicateAccount  = "DUPLICATE_ACCOUNT"
	ErrCodeInvalidCredential = "INVALID_CREDENTIAL"
	ErrCodeUnknownMethod     = "UNKNOWN_METHOD"
	ErrCodeMissingField      = "MISSING_REQUIRED_FIELD"
)

func NewInvalidAmountError(amount float64) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidAmount,
		Message: fmt.Sprintf("invalid amount %.2f: must be positive", amount),
	}
}

func NewInsufficientFundsError(accountID string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInsufficientFunds,
		Message: fmt.Sprintf("insufficient funds on account %s", accountID),
	}
}

func NewNegativeBalanceError(value float64) *DomainError {
	return &DomainError{
		Code:    ErrCodeNegativeBalance,
		Message: fmt.Sprintf("balance can't be negative, got %.2f", value),
	}
}

func NewAccountNotFoundError(id string) *DomainError {
	return &DomainError{
		Code:    ErrCodeAccountNotFound,
		Message: fmt.Sprintf("account with ID %s not found", id),
	}
}

func NewDuplicateAccountError(id string) *DomainError {
	return &DomainError{
		Code:    ErrCodeDuplicateAccount,
		Message: fmt.Sprintf("account with ID %s already exists", id),
	}
}

func NewInvalidCredentialError(method Method) *DomainError {
	msg := "invalid credential"
	switch method {
	case MethodCreditCard:
		msg = "invalid credit card number"
	case MethodPayPal:
		msg = "invalid PayPal-email"
	}
	return &DomainError{
		Code:    ErrCodeInvalidCredential,
		Message: msg,
	}
}

func NewUnknownMethodError(method Method) *DomainError {
	return &DomainError{
		Code:    ErrCodeUnknownMethod,
		Message: fmt.Sprintf("unknown payment method %q", string(method)),
	}
}

func NewMissingRequiredFieldError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
