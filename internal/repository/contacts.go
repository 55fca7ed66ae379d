package repository

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/VPPranav/Bangalore-Local-Business-Finder/internal/entity"
)

// ErrStoreUnavailable indicates the contact store cannot be reached right
// now. Callers surface this as a degraded-mode outcome, not a crash.
var ErrStoreUnavailable = errors.New("contact store unavailable")

// ContactsRepository declares persistence operations for contact
// submissions: a single best-effort insert returning the generated id.
type ContactsRepository interface {
	Insert(ctx context.Context, submission *entity.ContactSubmission) (uuid.UUID, error)
}

// pgxPool is the slice of pgxpool.Pool the repository depends on.
type pgxPool interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var _ pgxPool = (*pgxpool.Pool)(nil)

// PGXContactsRepository implements ContactsRepository with pgx. A nil pool
// is a valid state: the service starts without a database connection and
// every insert reports the store as unavailable until a restart.
type PGXContactsRepository struct {
	pool pgxPool
}

// NewPGXContactsRepository wires a pgx backed repository. pool may be nil.
func NewPGXContactsRepository(pool *pgxpool.Pool) *PGXContactsRepository {
	if pool == nil {
		return &PGXContactsRepository{}
	}
	return &PGXContactsRepository{pool: pool}
}

// Insert persists one submission and returns the generated identifier.
func (r *PGXContactsRepository) Insert(ctx context.Context, submission *entity.ContactSubmission) (uuid.UUID, error) {
	if submission == nil {
		return uuid.Nil, fmt.Errorf("submission payload is nil")
	}
	if r.pool == nil {
		return uuid.Nil, ErrStoreUnavailable
	}

	row := r.pool.QueryRow(ctx, `
        INSERT INTO contacts (name, email, subject, message, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `, submission.Name, submission.Email, submission.Subject, submission.Message, submission.CreatedAt)

	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		if isUnavailable(err) {
			return uuid.Nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		return uuid.Nil, fmt.Errorf("insert contact: %w", err)
	}

	return id, nil
}

// isUnavailable classifies connectivity-class failures: dial/network
// errors and timeouts, as opposed to the insert itself being rejected.
func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var connErr *pgconn.ConnectError
	return errors.As(err, &connErr)
}
