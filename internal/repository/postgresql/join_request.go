package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/nimbushr/nimbus-backend-go/internal/domain/joinrequest"
	"github.com/nimbushr/nimbus-backend-go/internal/pkg/database"
)

type joinRequestRepositoryImpl struct {
	db *database.DB
}

func NewJoinRequestRepository(db *database.DB) joinrequest.JoinRequestRepository {
	return &joinRequestRepositoryImpl{db: db}
}

// Create implements joinrequest.JoinRequestRepository.
func (r *joinRequestRepositoryImpl) Create(ctx context.Context, jr joinrequest.JoinRequest) (joinrequest.JoinRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO join_requests (name, email)
		VALUES ($1, $2)
		RETURNING id, name, email, request_date
	`

	var created joinrequest.JoinRequest
	err := q.QueryRow(ctx, query, jr.Name, jr.Email).Scan(
		&created.ID,
		&created.Name,
		&created.Email,
		&created.RequestDate,
	)
	if err != nil {
		return joinrequest.JoinRequest{}, err
	}
	return created, nil
}

// GetByID implements joinrequest.JoinRequestRepository.
func (r *joinRequestRepositoryImpl) GetByID(ctx context.Context, id string) (joinrequest.JoinRequest, error) {
	q := GetQuerier(ctx, r.db)

	var jr joinrequest.JoinRequest
	err := q.QueryRow(ctx, `
		SELECT id, name, email, request_date FROM join_requests WHERE id = $1
	`, id).Scan(&jr.ID, &jr.Name, &jr.Email, &jr.RequestDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return joinrequest.JoinRequest{}, joinrequest.ErrJoinRequestNotFound
		}
		return joinrequest.JoinRequest{}, err
	}
	return jr, nil
}

// List implements joinrequest.JoinRequestRepository.
func (r *joinRequestRepositoryImpl) List(ctx context.Context) ([]joinrequest.JoinRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, email, request_date FROM join_requests ORDER BY request_date
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []joinrequest.JoinRequest
	for rows.Next() {
		var jr joinrequest.JoinRequest
		if err := rows.Scan(&jr.ID, &jr.Name, &jr.Email, &jr.RequestDate); err != nil {
			return nil, err
		}
		out = append(out, jr)
	}
	return out, rows.Err()
}

// Delete implements joinrequest.JoinRequestRepository.
func (r *joinRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM join_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return joinrequest.ErrJoinRequestNotFound
	}
	return nil
}
