package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"sales-tracker/internal/domain"
	"sales-tracker/internal/repository"
)

// value is stored as decimal text so monetary amounts round-trip without
// binary-float drift; expected_close_date is stored as a plain YYYY-MM-DD
// string so the calendar date round-trips without a timezone shift.
const createDealsTable = `
CREATE TABLE IF NOT EXISTS deals (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	value TEXT NOT NULL,
	stage TEXT NOT NULL DEFAULT 'prospecting',
	probability INTEGER NOT NULL DEFAULT 0,
	expected_close_date TEXT NULL,
	customer_id INTEGER NOT NULL,
	user_id INTEGER NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_deals_user_id ON deals(user_id);
`

type DealRepository struct {
	db *sql.DB
}

func NewDealRepository(db *sql.DB) repository.DealRepository {
	return &DealRepository{db: db}
}

func (r *DealRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createDealsTable); err != nil {
		return fmt.Errorf("create deals table: %w", err)
	}
	return nil
}

func (r *DealRepository) Create(ctx context.Context, deal *domain.Deal) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO deals (title, value, stage, probability, expected_close_date, customer_id, user_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		deal.Title,
		deal.Value.String(),
		deal.Stage,
		deal.Probability,
		nullDate(deal.ExpectedCloseDate),
		deal.CustomerID,
		deal.OwnerID,
		deal.CreatedAt,
		deal.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert deal: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("deal last insert id: %w", err)
	}
	deal.ID = id
	return id, nil
}

func (r *DealRepository) Get(ctx context.Context, id, ownerID int64) (*domain.Deal, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, title, value, stage, probability, expected_close_date, customer_id, user_id, created_at, updated_at
FROM deals
WHERE id=? AND user_id=?`,
		id,
		ownerID,
	)
	return scanDeal(row)
}

func (r *DealRepository) List(ctx context.Context, ownerID int64) ([]domain.Deal, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, title, value, stage, probability, expected_close_date, customer_id, user_id, created_at, updated_at
FROM deals
WHERE user_id=?
ORDER BY id ASC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("query deals: %w", err)
	}
	defer rows.Close()

	var deals []domain.Deal
	for rows.Next() {
		deal, err := scanDeal(rows)
		if err != nil {
			return nil, err
		}
		deals = append(deals, *deal)
	}

	return deals, rows.Err()
}

func (r *DealRepository) Update(ctx context.Context, deal *domain.Deal) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE deals
SET title=?, value=?, stage=?, probability=?, expected_close_date=?, updated_at=?
WHERE id=? AND user_id=?`,
		deal.Title,
		deal.Value.String(),
		deal.Stage,
		deal.Probability,
		nullDate(deal.ExpectedCloseDate),
		deal.UpdatedAt,
		deal.ID,
		deal.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("update deal: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deal update rows affected: %w", err)
	}
	if aff == 0 {
		return fmt.Errorf("deal %w", domain.ErrNotFound)
	}
	return nil
}

func (r *DealRepository) Delete(ctx context.Context, id, ownerID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM deals WHERE id=? AND user_id=?`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete deal: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deal delete rows affected: %w", err)
	}
	if aff == 0 {
		return fmt.Errorf("deal %w", domain.ErrNotFound)
	}
	return nil
}

func nullDate(v *time.Time) any {
	if v == nil {
		return nil
	}
	return v.Format(domain.DateLayout)
}

func scanDeal(row interface {
	Scan(dest ...any) error
}) (*domain.Deal, error) {
	var (
		deal      domain.Deal
		value     string
		closeDate sql.NullString
	)
	if err := row.Scan(
		&deal.ID,
		&deal.Title,
		&value,
		&deal.Stage,
		&deal.Probability,
		&closeDate,
		&deal.CustomerID,
		&deal.OwnerID,
		&deal.CreatedAt,
		&deal.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("deal %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scan deal: %w", err)
	}

	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("parse deal value %q: %w", value, err)
	}
	deal.Value = parsed

	if closeDate.Valid {
		t, err := time.Parse(domain.DateLayout, closeDate.String)
		if err != nil {
			return nil, fmt.Errorf("parse deal close date %q: %w", closeDate.String, err)
		}
		deal.ExpectedCloseDate = &t
	}
	deal.CreatedAt = deal.CreatedAt.UTC()
	deal.UpdatedAt = deal.UpdatedAt.UTC()
	return &deal, nil
}
