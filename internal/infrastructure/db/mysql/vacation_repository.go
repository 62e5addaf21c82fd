package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hrkit/vacation-api/internal/core/domain"
)

// VacationRepository is the MySQL-backed vacation gateway.
type VacationRepository struct {
	db *sql.DB
}

func NewVacationRepository(db *sql.DB) *VacationRepository {
	return &VacationRepository{db: db}
}

// ListAll returns every vacation joined with the owner and status name,
// pending first (status_id descending), then newest first.
func (r *VacationRepository) ListAll(ctx context.Context) ([]domain.Vacation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT v.id, v.user_id, DATE_FORMAT(v.date_from, '%Y-%m-%d'), DATE_FORMAT(v.date_to, '%Y-%m-%d'), v.reason, v.status_id,
		        v.created_at, v.updated_at, u.name, u.username, vs.status
		 FROM vacations v
		 LEFT JOIN users u ON v.user_id = u.id
		 LEFT JOIN vacations_status vs ON v.status_id = vs.id
		 ORDER BY v.status_id DESC, v.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list vacations: %w", err)
	}
	defer rows.Close()
	return scanVacations(rows, true)
}

func (r *VacationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Vacation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT v.id, v.user_id, DATE_FORMAT(v.date_from, '%Y-%m-%d'), DATE_FORMAT(v.date_to, '%Y-%m-%d'), v.reason, v.status_id,
		        v.created_at, v.updated_at, vs.status
		 FROM vacations v
		 LEFT JOIN vacations_status vs ON v.status_id = vs.id
		 WHERE v.user_id = ?
		 ORDER BY v.created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list user vacations: %w", err)
	}
	defer rows.Close()
	return scanVacations(rows, false)
}

func (r *VacationRepository) GetByID(ctx context.Context, id int64) (*domain.Vacation, error) {
	var v domain.Vacation
	var userName, username, statusName sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT v.id, v.user_id, DATE_FORMAT(v.date_from, '%Y-%m-%d'), DATE_FORMAT(v.date_to, '%Y-%m-%d'), v.reason, v.status_id,
		        v.created_at, v.updated_at, u.name, u.username, vs.status
		 FROM vacations v
		 LEFT JOIN users u ON v.user_id = u.id
		 LEFT JOIN vacations_status vs ON v.status_id = vs.id
		 WHERE v.id = ?`, id).
		Scan(&v.ID, &v.UserID, &v.DateFrom, &v.DateTo, &v.Reason, &v.StatusID,
			&v.CreatedAt, &v.UpdatedAt, &userName, &username, &statusName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrVacationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get vacation: %w", err)
	}
	v.UserName = userName.String
	v.Username = username.String
	v.StatusName = statusName.String
	return &v, nil
}

func (r *VacationRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var n int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM vacations WHERE id = ?`, id).Scan(&n); err != nil {
		return false, fmt.Errorf("vacation exists: %w", err)
	}
	return n > 0, nil
}

// Create inserts the request with the status the service decided (always
// PENDING) and both timestamps set by the database.
func (r *VacationRepository) Create(ctx context.Context, v *domain.Vacation) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO vacations (user_id, date_from, date_to, reason, status_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, NOW(), NOW())`,
		v.UserID, v.DateFrom, v.DateTo, v.Reason, domain.StatusPending)
	if err != nil {
		return 0, fmt.Errorf("insert vacation: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert vacation id: %w", err)
	}
	return id, nil
}

func (r *VacationRepository) UpdateStatus(ctx context.Context, id int64, status domain.VacationStatus) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE vacations SET status_id = ?, updated_at = NOW() WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("update vacation status: %w", err)
	}
	return nil
}

func (r *VacationRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM vacations WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete vacation: %w", err)
	}
	return nil
}

func (r *VacationRepository) IsOwner(ctx context.Context, id, userID int64) (bool, error) {
	var n int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM vacations WHERE id = ? AND user_id = ?`, id, userID).Scan(&n); err != nil {
		return false, fmt.Errorf("vacation owner: %w", err)
	}
	return n > 0, nil
}

func (r *VacationRepository) ListStatuses(ctx context.Context) ([]domain.StatusDefinition, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, status FROM vacations_status ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}
	defer rows.Close()

	statuses := []domain.StatusDefinition{}
	for rows.Next() {
		var s domain.StatusDefinition
		if err := rows.Scan(&s.ID, &s.Status); err != nil {
			return nil, fmt.Errorf("scan status: %w", err)
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}

// scanVacations drains a listing cursor. withUser is true when the query
// joined the users table.
func scanVacations(rows *sql.Rows, withUser bool) ([]domain.Vacation, error) {
	vacations := []domain.Vacation{}
	for rows.Next() {
		var v domain.Vacation
		var userName, username, statusName sql.NullString

		var err error
		if withUser {
			err = rows.Scan(&v.ID, &v.UserID, &v.DateFrom, &v.DateTo, &v.Reason, &v.StatusID,
				&v.CreatedAt, &v.UpdatedAt, &userName, &username, &statusName)
		} else {
			err = rows.Scan(&v.ID, &v.UserID, &v.DateFrom, &v.DateTo, &v.Reason, &v.StatusID,
				&v.CreatedAt, &v.UpdatedAt, &statusName)
		}
		if err != nil {
			return nil, fmt.Errorf("scan vacation: %w", err)
		}

		v.UserName = userName.String
		v.Username = username.String
		v.StatusName = statusName.String
		vacations = append(vacations, v)
	}
	return vacations, rows.Err()
}
