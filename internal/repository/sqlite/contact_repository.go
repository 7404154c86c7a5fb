package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sales-tracker/internal/domain"
	"sales-tracker/internal/repository"
)

// No FOREIGN KEY on customer_id: a customer delete leaves its contacts in
// place, matching the cascade-less delete semantics. Ownership of the
// referenced customer is checked at the service layer instead.
const createContactsTable = `
CREATE TABLE IF NOT EXISTS contacts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	email TEXT NULL,
	phone TEXT NULL,
	position TEXT NULL,
	customer_id INTEGER NOT NULL,
	user_id INTEGER NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_contacts_user_id ON contacts(user_id);
`

type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) repository.ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createContactsTable); err != nil {
		return fmt.Errorf("create contacts table: %w", err)
	}
	return nil
}

func (r *ContactRepository) Create(ctx context.Context, contact *domain.Contact) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO contacts (first_name, last_name, email, phone, position, customer_id, user_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		contact.FirstName,
		contact.LastName,
		nullString(contact.Email),
		nullString(contact.Phone),
		nullString(contact.Position),
		contact.CustomerID,
		contact.OwnerID,
		contact.CreatedAt,
		contact.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert contact: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("contact last insert id: %w", err)
	}
	contact.ID = id
	return id, nil
}

func (r *ContactRepository) Get(ctx context.Context, id, ownerID int64) (*domain.Contact, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, first_name, last_name, email, phone, position, customer_id, user_id, created_at, updated_at
FROM contacts
WHERE id=? AND user_id=?`,
		id,
		ownerID,
	)
	return scanContact(row)
}

func (r *ContactRepository) List(ctx context.Context, ownerID int64, customerID *int64) ([]domain.Contact, error) {
	query := `
SELECT id, first_name, last_name, email, phone, position, customer_id, user_id, created_at, updated_at
FROM contacts
WHERE user_id=?`
	args := []any{ownerID}
	if customerID != nil {
		query += ` AND customer_id=?`
		args = append(args, *customerID)
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}
	defer rows.Close()

	var contacts []domain.Contact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, *contact)
	}

	return contacts, rows.Err()
}

func (r *ContactRepository) Update(ctx context.Context, contact *domain.Contact) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE contacts
SET first_name=?, last_name=?, email=?, phone=?, position=?, updated_at=?
WHERE id=? AND user_id=?`,
		contact.FirstName,
		contact.LastName,
		nullString(contact.Email),
		nullString(contact.Phone),
		nullString(contact.Position),
		contact.UpdatedAt,
		contact.ID,
		contact.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("contact update rows affected: %w", err)
	}
	if aff == 0 {
		return fmt.Errorf("contact %w", domain.ErrNotFound)
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id, ownerID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id=? AND user_id=?`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("contact delete rows affected: %w", err)
	}
	if aff == 0 {
		return fmt.Errorf("contact %w", domain.ErrNotFound)
	}
	return nil
}

func scanContact(row interface {
	Scan(dest ...any) error
}) (*domain.Contact, error) {
	var (
		contact  domain.Contact
		email    sql.NullString
		phone    sql.NullString
		position sql.NullString
	)
	if err := row.Scan(
		&contact.ID,
		&contact.FirstName,
		&contact.LastName,
		&email,
		&phone,
		&position,
		&contact.CustomerID,
		&contact.OwnerID,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("contact %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scan contact: %w", err)
	}
	contact.Email = stringPtr(email)
	contact.Phone = stringPtr(phone)
	contact.Position = stringPtr(position)
	contact.CreatedAt = contact.CreatedAt.UTC()
	contact.UpdatedAt = contact.UpdatedAt.UTC()
	return &contact, nil
}
