package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oladimeji-kazeem/budgetpro/internal/domain"
)

// PendingRequest joins an access request with its requesting user, as
// listed on the admin dashboard.
type PendingRequest struct {
	Request domain.AccessRequest
	Email   string
	Name    string
}

// AccessRequestRepository defines persistence access for the approval
// workflow.
type AccessRequestRepository interface {
	Create(ctx context.Context, request *domain.AccessRequest) error
	Update(ctx context.Context, request *domain.AccessRequest) error
	GetByID(ctx context.Context, id string) (*domain.AccessRequest, error)
	ListPending(ctx context.Context) ([]PendingRequest, error)
}

type accessRequestRepository struct {
	pool *pgxpool.Pool
}

// NewAccessRequestRepository returns a Postgres-backed implementation.
func NewAccessRequestRepository(pool *pgxpool.Pool) AccessRequestRepository {
	return &accessRequestRepository{pool: pool}
}

func (r *accessRequestRepository) Create(ctx context.Context, request *domain.AccessRequest) error {
	const query = `
        INSERT INTO access_requests (user_id, status, requested_role)
        VALUES ($1, $2, $3)
        RETURNING id, requested_at`

	return r.pool.QueryRow(ctx, query,
		request.UserID,
		request.Status,
		request.RequestedRole,
	).Scan(&request.ID, &request.RequestedAt)
}

func (r *accessRequestRepository) Update(ctx context.Context, request *domain.AccessRequest) error {
	const query = `
        UPDATE access_requests
        SET status=$1, acted_by=$2, action_date=$3, rejection_reason=$4
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		request.Status,
		request.ActedBy,
		request.ActionDate,
		request.RejectionReason,
		request.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *accessRequestRepository) GetByID(ctx context.Context, id string) (*domain.AccessRequest, error) {
	const query = `
        SELECT id, user_id, status, requested_role, requested_at, acted_by, action_date, rejection_reason
        FROM access_requests WHERE id=$1`

	var request domain.AccessRequest
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&request.ID,
		&request.UserID,
		&request.Status,
		&request.RequestedRole,
		&request.RequestedAt,
		&request.ActedBy,
		&request.ActionDate,
		&request.RejectionReason,
	); err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *accessRequestRepository) ListPending(ctx context.Context) ([]PendingRequest, error) {
	const query = `
        SELECT ar.id, ar.user_id, ar.status, ar.requested_role, ar.requested_at,
               ar.acted_by, ar.action_date, ar.rejection_reason,
               u.email, u.first_name || ' ' || u.last_name
        FROM access_requests ar
        JOIN users u ON u.id = ar.user_id
        WHERE ar.status = 'PENDING'
        ORDER BY ar.requested_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pending []PendingRequest
	for rows.Next() {
		var p PendingRequest
		if err := rows.Scan(
			&p.Request.ID,
			&p.Request.UserID,
			&p.Request.Status,
			&p.Request.RequestedRole,
			&p.Request.RequestedAt,
			&p.Request.ActedBy,
			&p.Request.ActionDate,
			&p.Request.RejectionReason,
			&p.Email,
			&p.Name,
		); err != nil {
			return nil, err
		}
		pending = append(pending, p)
	}
	return pending, rows.Err()
}
