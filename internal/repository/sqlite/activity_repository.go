package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sales-tracker/internal/domain"
	"sales-tracker/internal/repository"
)

const createActivitiesTable = `
CREATE TABLE IF NOT EXISTS activities (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	type TEXT NOT NULL,
	subject TEXT NOT NULL,
	description TEXT NULL,
	due_date DATETIME NULL,
	completed INTEGER NOT NULL DEFAULT 0,
	customer_id INTEGER NULL,
	deal_id INTEGER NULL,
	user_id INTEGER NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_activities_user_id ON activities(user_id);
`

type ActivityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) repository.ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createActivitiesTable); err != nil {
		return fmt.Errorf("create activities table: %w", err)
	}
	return nil
}

func (r *ActivityRepository) Create(ctx context.Context, activity *domain.Activity) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO activities (type, subject, description, due_date, completed, customer_id, deal_id, user_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		activity.Type,
		activity.Subject,
		nullString(activity.Description),
		nullTime(activity.DueDate),
		activity.Completed,
		nullInt64(activity.CustomerID),
		nullInt64(activity.DealID),
		activity.OwnerID,
		activity.CreatedAt,
		activity.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert activity: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("activity last insert id: %w", err)
	}
	activity.ID = id
	return id, nil
}

func (r *ActivityRepository) Get(ctx context.Context, id, ownerID int64) (*domain.Activity, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, type, subject, description, due_date, completed, customer_id, deal_id, user_id, created_at, updated_at
FROM activities
WHERE id=? AND user_id=?`,
		id,
		ownerID,
	)
	return scanActivity(row)
}

func (r *ActivityRepository) List(ctx context.Context, ownerID int64, customerID, dealID *int64) ([]domain.Activity, error) {
	query := `
SELECT id, type, subject, description, due_date, completed, customer_id, deal_id, user_id, created_at, updated_at
FROM activities
WHERE user_id=?`
	args := []any{ownerID}
	if customerID != nil {
		query += ` AND customer_id=?`
		args = append(args, *customerID)
	}
	if dealID != nil {
		query += ` AND deal_id=?`
		args = append(args, *dealID)
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, *activity)
	}

	return activities, rows.Err()
}

func (r *ActivityRepository) Update(ctx context.Context, activity *domain.Activity) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE activities
SET type=?, subject=?, description=?, due_date=?, completed=?, updated_at=?
WHERE id=? AND user_id=?`,
		activity.Type,
		activity.Subject,
		nullString(activity.Description),
		nullTime(activity.DueDate),
		activity.Completed,
		activity.UpdatedAt,
		activity.ID,
		activity.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("update activity: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("activity update rows affected: %w", err)
	}
	if aff == 0 {
		return fmt.Errorf("activity %w", domain.ErrNotFound)
	}
	return nil
}

func (r *ActivityRepository) Delete(ctx context.Context, id, ownerID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id=? AND user_id=?`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("activity delete rows affected: %w", err)
	}
	if aff == 0 {
		return fmt.Errorf("activity %w", domain.ErrNotFound)
	}
	return nil
}

func scanActivity(row interface {
	Scan(dest ...any) error
}) (*domain.Activity, error) {
	var (
		activity    domain.Activity
		description sql.NullString
		dueDate     sql.NullTime
		customerID  sql.NullInt64
		dealID      sql.NullInt64
	)
	if err := row.Scan(
		&activity.ID,
		&activity.Type,
		&activity.Subject,
		&description,
		&dueDate,
		&activity.Completed,
		&customerID,
		&dealID,
		&activity.OwnerID,
		&activity.CreatedAt,
		&activity.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("activity %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scan activity: %w", err)
	}
	activity.Description = stringPtr(description)
	activity.DueDate = timePtr(dueDate)
	activity.CustomerID = int64Ptr(customerID)
	activity.DealID = int64Ptr(dealID)
	activity.CreatedAt = activity.CreatedAt.UTC()
	activity.UpdatedAt = activity.UpdatedAt.UTC()
	return &activity, nil
}
