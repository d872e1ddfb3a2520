// Package escrow holds the project escrow lifecycle and dispute-resolution rules.
//
// Everything here is pure and synchronous: functions take values and return new values.
// Persistence, payment capture and settlement execution live behind the use case layer.
package escrow

import "errors"

// ErrorKind separates caller-recoverable failures from malformed input.
type ErrorKind int

const (
	KindPrecondition ErrorKind = iota + 1
	KindValidation
)

// Error is a rule failure with a stable code and a message surfaced verbatim to clients.
type Error struct {
	Kind    ErrorKind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func precondition(code, message string) *Error {
	return &Error{Kind: KindPrecondition, Code: code, Message: message}
}

func validation(code, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

var (
	ErrInvalidTransition       = precondition("INVALID_TRANSITION", "transition not allowed from current state")
	ErrNoPendingQuotes         = precondition("NO_PENDING_QUOTES", "at least one pending quote is required")
	ErrQuoteNotPending         = precondition("QUOTE_NOT_PENDING", "quote is not pending")
	ErrQuotesClosed            = precondition("QUOTES_CLOSED", "project is not accepting quotes")
	ErrQuoteNotAccepted        = precondition("QUOTE_NOT_ACCEPTED", "quote is not the accepted quote for this project")
	ErrFundingNotConfirmed     = precondition("FUNDING_NOT_CONFIRMED", "funding confirmation from the payment provider is required")
	ErrCustomerOnly            = precondition("CUSTOMER_ONLY", "only the project customer can perform this action")
	ErrContractorOnly          = precondition("CONTRACTOR_ONLY", "only the selected contractor can perform this action")
	ErrContractorRequired      = precondition("CONTRACTOR_REQUIRED", "contractor must be selected before deposit")
	ErrDepositAlreadyCaptured  = precondition("DEPOSIT_ALREADY_CAPTURED", "deposit already captured")
	ErrDepositCaptureExpired   = precondition("DEPOSIT_CAPTURE_EXPIRED", "deposit capture window expired, create a new deposit")
	ErrDepositInvalidStatus    = precondition("DEPOSIT_INVALID_TRANSITION", "deposit status transition not allowed")
	ErrBookingNeedsContractor  = precondition("BOOKING_NEEDS_CONTRACTOR", string(BookingReasonNeedsContractor))
	ErrBookingNeedsDeposit     = precondition("BOOKING_NEEDS_DEPOSIT", string(BookingReasonNeedsDeposit))
	ErrBookingNeedsCaptured    = precondition("BOOKING_NEEDS_CAPTURED_DEPOSIT", string(BookingReasonNeedsCapturedDeposit))
	ErrProjectNotInDispute     = precondition("PROJECT_NOT_IN_DISPUTE", "project is not in dispute")
	ErrCaseAlreadyResolved     = precondition("CASE_ALREADY_RESOLVED", "case already resolved")
	ErrInvalidReason           = validation("INVALID_REASON", "reason must be at least 5 characters")
	ErrInvalidAmount           = validation("INVALID_AMOUNT", "amount must be a positive number of cents")
	ErrInvalidAction           = validation("INVALID_ACTION", "unknown dispute action")
	ErrInvalidBookingWindow    = validation("INVALID_BOOKING_WINDOW", "booking window must end after it starts")
	ErrInvalidAttendance       = validation("INVALID_ATTENDANCE", "unknown attendance outcome")
	ErrInvalidDisposition      = validation("INVALID_DISPOSITION", "unknown deposit disposition")
	ErrQuoteNotFound           = validation("QUOTE_NOT_FOUND", "quote does not belong to this project")
	ErrDepositProjectMismatch  = validation("DEPOSIT_PROJECT_MISMATCH", "deposit does not belong to this project and contractor")
	ErrInvalidOutcomeType      = validation("INVALID_OUTCOME_TYPE", "unknown outcome type")
)

// ErrOutcomeInvariant signals a defect: an outcome whose amounts do not add up to the held amount.
// It is never a user-facing condition.
var ErrOutcomeInvariant = errors.New("dispute outcome does not reconcile with held amount")

// AsError extracts the rule failure from err, if any.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
