package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"sales-tracker/internal/domain"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "crm.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func strp(s string) *string { return &s }

func int64p(v int64) *int64 { return &v }

func TestCustomerRepositoryOwnerIsolation(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	repo := NewCustomerRepository(db)
	require.NoError(t, repo.Init(ctx))

	now := time.Now().UTC()
	mine := &domain.Customer{Name: "Acme", Status: "active", OwnerID: 1, CreatedAt: now, UpdatedAt: now}
	theirs := &domain.Customer{Name: "Globex", Status: "active", OwnerID: 2, CreatedAt: now, UpdatedAt: now}

	_, err := repo.Create(ctx, mine)
	require.NoError(t, err)
	_, err = repo.Create(ctx, theirs)
	require.NoError(t, err)

	customers, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	require.Equal(t, "Acme", customers[0].Name)

	// another owner sees nothing, even knowing the id
	_, err = repo.Get(ctx, mine.ID, 2)
	require.ErrorIs(t, err, domain.ErrNotFound)

	err = repo.Delete(ctx, mine.ID, 2)
	require.ErrorIs(t, err, domain.ErrNotFound)

	got, err := repo.Get(ctx, mine.ID, 1)
	require.NoError(t, err)
	require.Equal(t, mine.ID, got.ID)
}

func TestCustomerRepositoryUpdateAndDelete(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	repo := NewCustomerRepository(db)
	require.NoError(t, repo.Init(ctx))

	now := time.Now().UTC()
	customer := &domain.Customer{
		Name:      "Acme",
		Email:     strp("sales@acme.test"),
		Status:    "active",
		OwnerID:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err := repo.Create(ctx, customer)
	require.NoError(t, err)

	customer.Name = "Acme Corp"
	customer.Email = nil
	customer.UpdatedAt = now.Add(time.Second)
	require.NoError(t, repo.Update(ctx, customer))

	got, err := repo.Get(ctx, customer.ID, 1)
	require.NoError(t, err)
	require.Equal(t, "Acme Corp", got.Name)
	require.Nil(t, got.Email)
	require.True(t, got.UpdatedAt.After(got.CreatedAt))

	require.NoError(t, repo.Delete(ctx, customer.ID, 1))
	_, err = repo.Get(ctx, customer.ID, 1)
	require.ErrorIs(t, err, domain.ErrNotFound)

	// deleting again reports not found, not an internal failure
	err = repo.Delete(ctx, customer.ID, 1)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDealRepositoryRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	repo := NewDealRepository(db)
	require.NoError(t, repo.Init(ctx))

	closeDate, err := time.Parse(domain.DateLayout, "2024-03-15")
	require.NoError(t, err)

	now := time.Now().UTC()
	deal := &domain.Deal{
		Title:             "Big contract",
		Value:             decimal.RequireFromString("12500.50"),
		Stage:             "prospecting",
		Probability:       40,
		ExpectedCloseDate: &closeDate,
		CustomerID:        7,
		OwnerID:           1,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	_, err = repo.Create(ctx, deal)
	require.NoError(t, err)

	got, err := repo.Get(ctx, deal.ID, 1)
	require.NoError(t, err)
	require.True(t, got.Value.Equal(decimal.RequireFromString("12500.50")))
	require.NotNil(t, got.ExpectedCloseDate)
	// the calendar date survives byte for byte, no timezone shift
	require.Equal(t, "2024-03-15", got.ExpectedCloseDate.Format(domain.DateLayout))
}

func TestContactRepositoryListFilter(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	repo := NewContactRepository(db)
	require.NoError(t, repo.Init(ctx))

	now := time.Now().UTC()
	for i, customerID := range []int64{10, 10, 20} {
		contact := &domain.Contact{
			FirstName:  "C",
			LastName:   string(rune('A' + i)),
			CustomerID: customerID,
			OwnerID:    1,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		_, err := repo.Create(ctx, contact)
		require.NoError(t, err)
	}

	all, err := repo.List(ctx, 1, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)

	filtered, err := repo.List(ctx, 1, int64p(10))
	require.NoError(t, err)
	require.Len(t, filtered, 2)

	none, err := repo.List(ctx, 2, nil)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestActivityRepositoryListFilters(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	repo := NewActivityRepository(db)
	require.NoError(t, repo.Init(ctx))

	now := time.Now().UTC()
	due := now.Add(48 * time.Hour).Truncate(time.Second)
	activities := []*domain.Activity{
		{Type: "call", Subject: "intro", CustomerID: int64p(10), OwnerID: 1, CreatedAt: now, UpdatedAt: now},
		{Type: "email", Subject: "follow up", CustomerID: int64p(10), DealID: int64p(5), DueDate: &due, OwnerID: 1, CreatedAt: now, UpdatedAt: now},
		{Type: "note", Subject: "misc", OwnerID: 1, CreatedAt: now, UpdatedAt: now},
	}
	for _, activity := range activities {
		_, err := repo.Create(ctx, activity)
		require.NoError(t, err)
	}

	byCustomer, err := repo.List(ctx, 1, int64p(10), nil)
	require.NoError(t, err)
	require.Len(t, byCustomer, 2)

	byBoth, err := repo.List(ctx, 1, int64p(10), int64p(5))
	require.NoError(t, err)
	require.Len(t, byBoth, 1)
	require.Equal(t, "follow up", byBoth[0].Subject)
	require.NotNil(t, byBoth[0].DueDate)
	require.Equal(t, due.UTC(), byBoth[0].DueDate.UTC())

	unlinked, err := repo.List(ctx, 1, nil, nil)
	require.NoError(t, err)
	require.Len(t, unlinked, 3)
	require.Nil(t, unlinked[2].CustomerID)
	require.Nil(t, unlinked[2].DealID)
}

func TestUserRepositoryUniqueness(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	repo := NewUserRepository(db)
	require.NoError(t, repo.Init(ctx))

	_, err := repo.Create(ctx, &domain.User{Username: "alice", Email: "alice@example.test", PasswordHash: "x"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.User{Username: "alice", Email: "other@example.test", PasswordHash: "x"})
	require.ErrorIs(t, err, domain.ErrConflict)

	_, err = repo.Create(ctx, &domain.User{Username: "bob", Email: "alice@example.test", PasswordHash: "x"})
	require.ErrorIs(t, err, domain.ErrConflict)

	got, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "alice@example.test", got.Email)

	_, err = repo.GetByEmail(ctx, "nobody@example.test")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
