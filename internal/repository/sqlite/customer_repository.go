package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sales-tracker/internal/domain"
	"sales-tracker/internal/repository"
)

const createCustomersTable = `
CREATE TABLE IF NOT EXISTS customers (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	email TEXT NULL,
	phone TEXT NULL,
	company TEXT NULL,
	industry TEXT NULL,
	status TEXT NOT NULL DEFAULT 'active',
	user_id INTEGER NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_customers_user_id ON customers(user_id);
`

type CustomerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createCustomersTable); err != nil {
		return fmt.Errorf("create customers table: %w", err)
	}
	return nil
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO customers (name, email, phone, company, industry, status, user_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		customer.Name,
		nullString(customer.Email),
		nullString(customer.Phone),
		nullString(customer.Company),
		nullString(customer.Industry),
		customer.Status,
		customer.OwnerID,
		customer.CreatedAt,
		customer.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert customer: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("customer last insert id: %w", err)
	}
	customer.ID = id
	return id, nil
}

func (r *CustomerRepository) Get(ctx context.Context, id, ownerID int64) (*domain.Customer, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, email, phone, company, industry, status, user_id, created_at, updated_at
FROM customers
WHERE id=? AND user_id=?`,
		id,
		ownerID,
	)
	return scanCustomer(row)
}

func (r *CustomerRepository) List(ctx context.Context, ownerID int64) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, email, phone, company, industry, status, user_id, created_at, updated_at
FROM customers
WHERE user_id=?
ORDER BY id ASC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *customer)
	}

	return customers, rows.Err()
}

func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE customers
SET name=?, email=?, phone=?, company=?, industry=?, status=?, updated_at=?
WHERE id=? AND user_id=?`,
		customer.Name,
		nullString(customer.Email),
		nullString(customer.Phone),
		nullString(customer.Company),
		nullString(customer.Industry),
		customer.Status,
		customer.UpdatedAt,
		customer.ID,
		customer.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("customer update rows affected: %w", err)
	}
	if aff == 0 {
		return fmt.Errorf("customer %w", domain.ErrNotFound)
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id, ownerID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id=? AND user_id=?`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("customer delete rows affected: %w", err)
	}
	if aff == 0 {
		return fmt.Errorf("customer %w", domain.ErrNotFound)
	}
	return nil
}

func scanCustomer(row interface {
	Scan(dest ...any) error
}) (*domain.Customer, error) {
	var (
		customer domain.Customer
		email    sql.NullString
		phone    sql.NullString
		company  sql.NullString
		industry sql.NullString
	)
	if err := row.Scan(
		&customer.ID,
		&customer.Name,
		&email,
		&phone,
		&company,
		&industry,
		&customer.Status,
		&customer.OwnerID,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("customer %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scan customer: %w", err)
	}
	customer.Email = stringPtr(email)
	customer.Phone = stringPtr(phone)
	customer.Company = stringPtr(company)
	customer.Industry = stringPtr(industry)
	customer.CreatedAt = customer.CreatedAt.UTC()
	customer.UpdatedAt = customer.UpdatedAt.UTC()
	return &customer, nil
}
