package interfaces

import (
	"context"
	"time"

	"contractor_escrow/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project.
//
// Update only succeeds while the stored escrow_state still equals expected.
// Lookups return a zero Project (empty ID) when nothing is stored.
type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	Update(ctx context.Context, p entities.Project, expected entities.EscrowState) (entities.Project, error)
	// Claim reserves the project until the given time while it is in expected. A held,
	// unexpired claim or a moved state fails with ErrConditionFailed. Update clears it.
	Claim(ctx context.Context, id string, expected entities.EscrowState, token string, now, until time.Time) error
	ReleaseClaim(ctx context.Context, id, token string) error
}

// IQuoteRepository abstracts DynamoDB persistence for Quote.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Quote, error)
	UpdateStatuses(ctx context.Context, quotes []entities.Quote) error
}
