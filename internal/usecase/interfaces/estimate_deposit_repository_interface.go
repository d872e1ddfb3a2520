package interfaces

import (
	"context"
	"time"

	"contractor_escrow/internal/domain/entities"
)

// IEstimateDepositRepository abstracts DynamoDB persistence for EstimateDeposit.
//
// UpdateStatus is conditional on the stored status being expected, so two concurrent
// captures of one deposit cannot both succeed.
type IEstimateDepositRepository interface {
	Create(ctx context.Context, d entities.EstimateDeposit) (entities.EstimateDeposit, error)
	GetByID(ctx context.Context, id string) (entities.EstimateDeposit, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.EstimateDeposit, error)
	UpdateStatus(ctx context.Context, id string, expected, next entities.DepositStatus, paymentID string) (entities.EstimateDeposit, error)
	// Claim reserves the deposit until the given time while it is in expected.
	Claim(ctx context.Context, id string, expected entities.DepositStatus, token string, now, until time.Time) error
	ReleaseClaim(ctx context.Context, id, token string) error
}

// IBookingRepository abstracts DynamoDB persistence for BookingRequest.
type IBookingRepository interface {
	Create(ctx context.Context, b entities.BookingRequest) (entities.BookingRequest, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.BookingRequest, error)
}
