package interfaces

import (
	"context"

	"contractor_escrow/internal/domain/entities"
)

// ISettlementLedger records fund movement instructions for the external settlement executor.
// Recording an idempotency key twice returns ErrDuplicateSettlement.
type ISettlementLedger interface {
	Record(ctx context.Context, s entities.Settlement) error
}
