package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"sales-tracker/internal/domain"
	"sales-tracker/internal/repository"
	"sales-tracker/internal/repository/sqlite"
)

type fixture struct {
	customers  CustomerService
	contacts   ContactService
	deals      DealService
	activities ActivityService
	dashboard  DashboardService

	customerRepo repository.CustomerRepository
	dealRepo     repository.DealRepository
}

func newFixture(t *testing.T, enforce bool) *fixture {
	t.Helper()
	db := openTestDB(t)
	ctx := context.Background()

	customerRepo := sqlite.NewCustomerRepository(db)
	contactRepo := sqlite.NewContactRepository(db)
	dealRepo := sqlite.NewDealRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)
	require.NoError(t, customerRepo.Init(ctx))
	require.NoError(t, contactRepo.Init(ctx))
	require.NoError(t, dealRepo.Init(ctx))
	require.NoError(t, activityRepo.Init(ctx))

	integrity := NewIntegrityChecker(customerRepo, dealRepo, enforce)
	return &fixture{
		customers:    NewCustomerService(customerRepo),
		contacts:     NewContactService(contactRepo, customerRepo, integrity),
		deals:        NewDealService(dealRepo, integrity),
		activities:   NewActivityService(activityRepo, integrity),
		dashboard:    NewDashboardService(customerRepo, dealRepo),
		customerRepo: customerRepo,
		dealRepo:     dealRepo,
	}
}

func strp(s string) *string { return &s }

func int64p(v int64) *int64 { return &v }

func TestCustomerCreateDefaults(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	customer, err := f.customers.Create(ctx, 1, domain.CustomerCreate{Name: "Acme"})
	require.NoError(t, err)
	require.Equal(t, "active", customer.Status)
	require.Equal(t, customer.CreatedAt, customer.UpdatedAt)
	require.Nil(t, customer.Email)

	_, err = f.customers.Create(ctx, 1, domain.CustomerCreate{Name: "  "})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestCustomerPartialUpdate(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	customer, err := f.customers.Create(ctx, 1, domain.CustomerCreate{
		Name:    "Acme",
		Email:   strp("sales@acme.test"),
		Company: strp("Acme Inc"),
	})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	updated, err := f.customers.Update(ctx, 1, customer.ID, domain.CustomerUpdate{
		Status: strp("churned"),
	})
	require.NoError(t, err)

	// only the supplied field changed
	require.Equal(t, "churned", updated.Status)
	require.Equal(t, "Acme", updated.Name)
	require.NotNil(t, updated.Email)
	require.Equal(t, "sales@acme.test", *updated.Email)
	require.True(t, updated.UpdatedAt.After(customer.UpdatedAt))
}

func TestUpdateAcrossOwnersIsNotFound(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	customer, err := f.customers.Create(ctx, 1, domain.CustomerCreate{Name: "Acme"})
	require.NoError(t, err)

	_, err = f.customers.Update(ctx, 2, customer.ID, domain.CustomerUpdate{Name: strp("Stolen")})
	require.ErrorIs(t, err, domain.ErrNotFound)

	err = f.customers.Delete(ctx, 2, customer.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContactIntegrityCheck(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	mine, err := f.customers.Create(ctx, 1, domain.CustomerCreate{Name: "Acme"})
	require.NoError(t, err)
	theirs, err := f.customers.Create(ctx, 2, domain.CustomerCreate{Name: "Globex"})
	require.NoError(t, err)

	_, err = f.contacts.Create(ctx, 1, domain.ContactCreate{
		FirstName:  "Jane",
		LastName:   "Doe",
		CustomerID: mine.ID,
	})
	require.NoError(t, err)

	// a customer owned by someone else is as good as nonexistent
	_, err = f.contacts.Create(ctx, 1, domain.ContactCreate{
		FirstName:  "Eve",
		LastName:   "Smith",
		CustomerID: theirs.ID,
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.contacts.Create(ctx, 1, domain.ContactCreate{
		FirstName:  "Eve",
		LastName:   "Smith",
		CustomerID: 9999,
	})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestContactIntegrityCheckDisabled(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	// legacy behavior: dangling references are accepted
	_, err := f.contacts.Create(ctx, 1, domain.ContactCreate{
		FirstName:  "Jane",
		LastName:   "Doe",
		CustomerID: 9999,
	})
	require.NoError(t, err)
}

func TestDealCreateDefaultsAndDates(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	customer, err := f.customers.Create(ctx, 1, domain.CustomerCreate{Name: "Acme"})
	require.NoError(t, err)

	deal, err := f.deals.Create(ctx, 1, domain.DealCreate{
		Title:             "Big contract",
		Value:             decimal.RequireFromString("100.10"),
		ExpectedCloseDate: strp("2024-03-15"),
		CustomerID:        customer.ID,
	})
	require.NoError(t, err)
	require.Equal(t, "prospecting", deal.Stage)
	require.Equal(t, 0, deal.Probability)
	require.Equal(t, "2024-03-15", deal.ExpectedCloseDate.Format(domain.DateLayout))

	_, err = f.deals.Create(ctx, 1, domain.DealCreate{
		Title:             "Bad date",
		Value:             decimal.NewFromInt(1),
		ExpectedCloseDate: strp("15/03/2024"),
		CustomerID:        customer.ID,
	})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestDealPartialUpdateKeepsCloseDate(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	customer, err := f.customers.Create(ctx, 1, domain.CustomerCreate{Name: "Acme"})
	require.NoError(t, err)

	deal, err := f.deals.Create(ctx, 1, domain.DealCreate{
		Title:             "Big contract",
		Value:             decimal.NewFromInt(100),
		ExpectedCloseDate: strp("2024-03-15"),
		CustomerID:        customer.ID,
	})
	require.NoError(t, err)

	updated, err := f.deals.Update(ctx, 1, deal.ID, domain.DealUpdate{
		Stage: strp("won"),
	})
	require.NoError(t, err)
	require.Equal(t, "won", updated.Stage)
	require.Equal(t, "Big contract", updated.Title)
	require.NotNil(t, updated.ExpectedCloseDate)
	require.Equal(t, "2024-03-15", updated.ExpectedCloseDate.Format(domain.DateLayout))
}

func TestActivityDueDateNormalization(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	activity, err := f.activities.Create(ctx, 1, domain.ActivityCreate{
		Type:    "call",
		Subject: "intro",
		DueDate: strp("2024-06-01T09:30:00Z"),
	})
	require.NoError(t, err)
	require.NotNil(t, activity.DueDate)
	require.Equal(t, time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC), activity.DueDate.UTC())
	require.False(t, activity.Completed)

	_, err = f.activities.Create(ctx, 1, domain.ActivityCreate{
		Type:    "call",
		Subject: "intro",
		DueDate: strp("not-a-date"),
	})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestActivityReferencesChecked(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	customer, err := f.customers.Create(ctx, 1, domain.CustomerCreate{Name: "Acme"})
	require.NoError(t, err)
	deal, err := f.deals.Create(ctx, 1, domain.DealCreate{
		Title:      "Contract",
		Value:      decimal.NewFromInt(10),
		CustomerID: customer.ID,
	})
	require.NoError(t, err)

	_, err = f.activities.Create(ctx, 1, domain.ActivityCreate{
		Type:       "meeting",
		Subject:    "kickoff",
		CustomerID: int64p(customer.ID),
		DealID:     int64p(deal.ID),
	})
	require.NoError(t, err)

	_, err = f.activities.Create(ctx, 2, domain.ActivityCreate{
		Type:       "meeting",
		Subject:    "kickoff",
		DealID:     int64p(deal.ID),
	})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestDashboardStats(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	customer, err := f.customers.Create(ctx, 1, domain.CustomerCreate{Name: "Acme"})
	require.NoError(t, err)
	_, err = f.customers.Create(ctx, 1, domain.CustomerCreate{Name: "Globex", Status: strp("churned")})
	require.NoError(t, err)

	for _, d := range []struct {
		stage string
		value string
	}{
		{"won", "100"},
		{"won", "50"},
		{"lost", "30"},
	} {
		_, err = f.deals.Create(ctx, 1, domain.DealCreate{
			Title:      "deal " + d.stage,
			Value:      decimal.RequireFromString(d.value),
			Stage:      strp(d.stage),
			CustomerID: customer.ID,
		})
		require.NoError(t, err)
	}

	// a second tenant's records never leak into the snapshot
	other, err := f.customers.Create(ctx, 2, domain.CustomerCreate{Name: "Initech"})
	require.NoError(t, err)
	_, err = f.deals.Create(ctx, 2, domain.DealCreate{
		Title:      "other",
		Value:      decimal.NewFromInt(999),
		CustomerID: other.ID,
	})
	require.NoError(t, err)

	stats, err := f.dashboard.Stats(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 2, stats.TotalCustomers)
	require.Equal(t, 1, stats.ActiveCustomers)
	require.Equal(t, 3, stats.TotalDeals)
	require.True(t, stats.TotalDealValue.Equal(decimal.NewFromInt(180)))

	byStage := map[string]domain.StageStats{}
	for _, s := range stats.DealsByStage {
		byStage[s.Stage] = s
	}
	require.Len(t, byStage, 2)
	require.Equal(t, 2, byStage["won"].Count)
	require.True(t, byStage["won"].Value.Equal(decimal.NewFromInt(150)))
	require.Equal(t, 1, byStage["lost"].Count)
	require.True(t, byStage["lost"].Value.Equal(decimal.NewFromInt(30)))
}

func TestDashboardStatsEmpty(t *testing.T) {
	f := newFixture(t, true)

	stats, err := f.dashboard.Stats(context.Background(), 1)
	require.NoError(t, err)
	require.Zero(t, stats.TotalCustomers)
	require.Zero(t, stats.TotalDeals)
	require.True(t, stats.TotalDealValue.IsZero())
	require.Empty(t, stats.DealsByStage)
}
