package escrow

import (
	"strings"
	"time"

	"contractor_escrow/internal/domain/entities"
)

// BookingDisabledReason explains why a booking cannot be created. Empty means allowed.
type BookingDisabledReason string

const (
	BookingReasonNone                 BookingDisabledReason = ""
	BookingReasonNeedsContractor      BookingDisabledReason = "needs contractor"
	BookingReasonNeedsDeposit         BookingDisabledReason = "needs deposit"
	BookingReasonNeedsCapturedDeposit BookingDisabledReason = "needs captured deposit"
)

// ResolveBookingDisabledReason evaluates the booking preconditions in fixed order and
// returns the first one that fails: contractor, then deposit presence, then capture.
func ResolveBookingDisabledReason(contractorID string, deposit *entities.EstimateDeposit) BookingDisabledReason {
	if strings.TrimSpace(contractorID) == "" {
		return BookingReasonNeedsContractor
	}
	if deposit == nil {
		return BookingReasonNeedsDeposit
	}
	if !IsDepositCaptured(deposit) {
		return BookingReasonNeedsCapturedDeposit
	}
	return BookingReasonNone
}

// Err maps a reason to its precondition error, or nil when booking is allowed.
func (r BookingDisabledReason) Err() error {
	switch r {
	case BookingReasonNeedsContractor:
		return ErrBookingNeedsContractor
	case BookingReasonNeedsDeposit:
		return ErrBookingNeedsDeposit
	case BookingReasonNeedsCapturedDeposit:
		return ErrBookingNeedsCaptured
	}
	return nil
}

// NewBookingRequest admits a booking through the gate. The caller assigns ID and CreatedAt.
func NewBookingRequest(project entities.Project, deposit *entities.EstimateDeposit, startAt, endAt time.Time, note string) (entities.BookingRequest, error) {
	if err := ResolveBookingDisabledReason(project.ContractorID, deposit).Err(); err != nil {
		return entities.BookingRequest{}, err
	}
	if deposit.ProjectID != project.ID || deposit.ContractorID != project.ContractorID {
		return entities.BookingRequest{}, ErrDepositProjectMismatch
	}
	if startAt.IsZero() || !endAt.After(startAt) {
		return entities.BookingRequest{}, ErrInvalidBookingWindow
	}
	return entities.BookingRequest{
		ProjectID:         project.ID,
		EstimateDepositID: deposit.ID,
		StartAt:           startAt.UTC(),
		EndAt:             endAt.UTC(),
		Note:              strings.TrimSpace(note),
	}, nil
}
