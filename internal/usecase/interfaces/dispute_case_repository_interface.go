package interfaces

import (
	"context"

	"contractor_escrow/internal/domain/entities"
)

// IDisputeCaseRepository abstracts DynamoDB persistence for DisputeCase.
//
// Update writes c with Version+1 only while the stored version equals expectedVersion.
type IDisputeCaseRepository interface {
	Create(ctx context.Context, c entities.DisputeCase) (entities.DisputeCase, error)
	GetByID(ctx context.Context, id string) (entities.DisputeCase, error)
	List(ctx context.Context) ([]entities.DisputeCase, error)
	Update(ctx context.Context, c entities.DisputeCase, expectedVersion int64) (entities.DisputeCase, error)
}
