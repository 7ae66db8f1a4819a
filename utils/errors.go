package utils

import (
	"errors"
	"fmt"
)

// ErrorCode is the closed set of failure kinds the service reports.
type ErrorCode string

const (
	CodeInvalidArgument     ErrorCode = "invalidArgument"
	CodeNotFound            ErrorCode = "notFound"
	CodeInvalidTransition   ErrorCode = "invalidTransition"
	CodeInvalidOperation    ErrorCode = "invalidOperation"
	CodeRoomUnavailable     ErrorCode = "roomUnavailable"
	CodeOverpaymentRejected ErrorCode = "overpaymentRejected"
	CodeInvoiceClosed       ErrorCode = "invoiceClosed"
	CodeConflict            ErrorCode = "conflict"
	CodePersistence         ErrorCode = "persistence"
)

// DomainError carries a machine-readable code alongside the message so
// callers can act on the failure kind instead of matching strings.
type DomainError struct {
	Code    ErrorCode
	Message string
	Details string
}

func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewDomainError(code ErrorCode, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

func NewInvalidArgument(message string) *DomainError {
	return &DomainError{Code: CodeInvalidArgument, Message: message}
}

func NewNotFound(entity, id string) *DomainError {
	return &DomainError{Code: CodeNotFound, Message: fmt.Sprintf("%s %s not found", entity, id)}
}

func NewInvalidTransition(message string) *DomainError {
	return &DomainError{Code: CodeInvalidTransition, Message: message}
}

func NewInvalidOperation(message string) *DomainError {
	return &DomainError{Code: CodeInvalidOperation, Message: message}
}

func NewRoomUnavailable(roomID string) *DomainError {
	return &DomainError{
		Code:    CodeRoomUnavailable,
		Message: "room not available for the requested dates",
		Details: "room " + roomID,
	}
}

func NewOverpaymentRejected(outstanding float64) *DomainError {
	return &DomainError{
		Code:    CodeOverpaymentRejected,
		Message: "payment exceeds the outstanding balance",
		Details: fmt.Sprintf("outstanding %.2f", outstanding),
	}
}

func NewInvoiceClosed(invoiceID string) *DomainError {
	return &DomainError{
		Code:    CodeInvoiceClosed,
		Message: "invoice accepts no further payments",
		Details: "invoice " + invoiceID,
	}
}

func NewConflict(message string) *DomainError {
	return &DomainError{Code: CodeConflict, Message: message}
}

func NewPersistence(op string, err error) *DomainError {
	return &DomainError{Code: CodePersistence, Message: op + " failed", Details: err.Error()}
}

// CodeOf extracts the error code, or CodePersistence for unclassified errors.
func CodeOf(err error) ErrorCode {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return CodePersistence
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}
