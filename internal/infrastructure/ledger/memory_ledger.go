package ledger

import (
	"context"
	"log"
	"sync"

	"contractor_escrow/internal/domain/entities"
	"contractor_escrow/internal/usecase/interfaces"
)

// MemoryLedger keeps instructions in process. It is meant for local runs without Postgres;
// everything it holds is lost on restart.
type MemoryLedger struct {
	mu      sync.Mutex
	records map[string]entities.Settlement
}

var _ interfaces.ISettlementLedger = (*MemoryLedger)(nil)

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{records: map[string]entities.Settlement{}}
}

func (l *MemoryLedger) Record(_ context.Context, s entities.Settlement) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.records[s.IdempotencyKey]; ok {
		return interfaces.ErrDuplicateSettlement
	}
	l.records[s.IdempotencyKey] = s
	log.Printf("[settlement][memory] recorded key=%s kind=%s", s.IdempotencyKey, s.Kind)
	return nil
}

func (l *MemoryLedger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}
