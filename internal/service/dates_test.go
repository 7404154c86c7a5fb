package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sales-tracker/internal/domain"
)

func TestParseCloseDate(t *testing.T) {
	got, err := parseCloseDate("2024-03-15")
	require.NoError(t, err)
	require.Equal(t, "2024-03-15", got.Format(domain.DateLayout))

	for _, bad := range []string{"2024-3-15", "15/03/2024", "2024-03-15T00:00:00", ""} {
		_, err := parseCloseDate(bad)
		require.ErrorIs(t, err, domain.ErrValidation, "input %q", bad)
	}
}

func TestParseDueDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2024-06-01T09:30:00Z", time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)},
		{"2024-06-01T09:30:00+00:00", time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)},
		{"2024-06-01T11:30:00+02:00", time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)},
		{"2024-06-01T09:30:00", time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)},
		{"2024-06-01T09:30", time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)},
		{"2024-06-01T09:30:00.500000Z", time.Date(2024, 6, 1, 9, 30, 0, 500000000, time.UTC)},
	}
	for _, tc := range cases {
		got, err := parseDueDate(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		require.True(t, got.Equal(tc.want), "input %q: got %v", tc.in, got)
	}

	for _, bad := range []string{"2024-06-01", "not-a-date", ""} {
		_, err := parseDueDate(bad)
		require.ErrorIs(t, err, domain.ErrValidation, "input %q", bad)
	}
}
