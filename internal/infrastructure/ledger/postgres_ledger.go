package ledger

import (
	"context"
	"errors"
	"fmt"
	"log"

	"contractor_escrow/internal/domain/entities"
	"contractor_escrow/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

const schema = `
CREATE TABLE IF NOT EXISTS settlement_instructions (
	idempotency_key         TEXT PRIMARY KEY,
	kind                    TEXT NOT NULL,
	project_id              TEXT NOT NULL,
	case_id                 TEXT NOT NULL DEFAULT '',
	outcome_type            TEXT NOT NULL DEFAULT '',
	contractor_payout_cents BIGINT NOT NULL CHECK (contractor_payout_cents >= 0),
	platform_fee_cents      BIGINT NOT NULL CHECK (platform_fee_cents >= 0),
	customer_refund_cents   BIGINT NOT NULL CHECK (customer_refund_cents >= 0),
	doc_reference           TEXT NOT NULL DEFAULT '',
	created_at              TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const insertInstruction = `
INSERT INTO settlement_instructions
	(idempotency_key, kind, project_id, case_id, outcome_type,
	 contractor_payout_cents, platform_fee_cents, customer_refund_cents, doc_reference, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresLedger stores settlement instructions for the external executor. The primary
// key on idempotency_key makes each instruction recordable exactly once.
type PostgresLedger struct {
	db execer
}

var _ interfaces.ISettlementLedger = (*PostgresLedger)(nil)

// Connect opens a pool, checks it and makes sure the instructions table exists.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to create ledger schema: %w", err)
	}
	return pool, nil
}

func NewPostgresLedger(db execer) *PostgresLedger {
	return &PostgresLedger{db: db}
}

func (l *PostgresLedger) Record(ctx context.Context, s entities.Settlement) error {
	_, err := l.db.Exec(ctx, insertInstruction,
		s.IdempotencyKey, string(s.Kind), s.ProjectID, s.CaseID, string(s.OutcomeType),
		s.ContractorPayoutCents, s.PlatformFeeCents, s.CustomerRefundCents, s.DocReference, s.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return interfaces.ErrDuplicateSettlement
		}
		log.Printf("[settlement][postgres] insert failed key=%s err=%v", s.IdempotencyKey, err)
		return fmt.Errorf("record settlement: %w", err)
	}
	return nil
}
