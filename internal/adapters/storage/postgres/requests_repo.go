package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"organ-match/internal/domain/requests"
)

type RequestsRepo struct {
	db *sql.DB
}

func NewRequestsRepo(db *sql.DB) *RequestsRepo {
	return &RequestsRepo{db: db}
}

const requestColumns = `id, receiver_id, donor_id, message, status, created_at, updated_at, closed_at`

func (r *RequestsRepo) Create(ctx context.Context, req requests.Request) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO match_requests (`+requestColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		req.ID,
		req.ReceiverID,
		req.DonorID,
		req.Message,
		string(req.Status),
		req.CreatedAt,
		req.UpdatedAt,
		toNullTime(req.ClosedAt),
	)
	return err
}

func (r *RequestsRepo) Update(ctx context.Context, req requests.Request) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE match_requests
		SET
			message = $2,
			status = $3,
			updated_at = $4,
			closed_at = $5
		WHERE id = $1
	`,
		req.ID,
		req.Message,
		string(req.Status),
		req.UpdatedAt,
		toNullTime(req.ClosedAt),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return requests.ErrNotFound
	}
	return nil
}

func (r *RequestsRepo) GetByID(ctx context.Context, id string) (requests.Request, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return requests.Request{}, requests.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+requestColumns+` FROM match_requests WHERE id = $1`, id)
	req, err := scanRequest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return requests.Request{}, requests.ErrNotFound
	}
	return req, err
}

func (r *RequestsRepo) ListByDonor(ctx context.Context, donorID string) ([]requests.Request, error) {
	return r.list(ctx, `donor_id`, donorID)
}

func (r *RequestsRepo) ListByReceiver(ctx context.Context, receiverID string) ([]requests.Request, error) {
	return r.list(ctx, `receiver_id`, receiverID)
}

// column viene siempre de una constante interna.
func (r *RequestsRepo) list(ctx context.Context, column, value string) ([]requests.Request, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+requestColumns+`
		FROM match_requests
		WHERE `+column+` = $1
		ORDER BY created_at DESC
	`, value)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]requests.Request, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func scanRequest(row rowScanner) (requests.Request, error) {
	var (
		req      requests.Request
		status   string
		closedAt sql.NullTime
	)
	if err := row.Scan(
		&req.ID,
		&req.ReceiverID,
		&req.DonorID,
		&req.Message,
		&status,
		&req.CreatedAt,
		&req.UpdatedAt,
		&closedAt,
	); err != nil {
		return requests.Request{}, err
	}

	req.Status = requests.Status(status)
	if closedAt.Valid {
		t := closedAt.Time
		req.ClosedAt = &t
	}
	return req, nil
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
