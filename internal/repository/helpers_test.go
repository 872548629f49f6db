package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dateOnly(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestFormatDate_ZeroTimeIsEmpty(t *testing.T) {
	assert.Equal(t, "", formatDate(time.Time{}))
	assert.Equal(t, "2024-08-15", formatDate(dateOnly(t, "2024-08-15")))
}

func TestParseDate_EmptyIsZeroTime(t *testing.T) {
	assert.True(t, parseDate("").IsZero())
	assert.True(t, parseDate("no es una fecha").IsZero())
	assert.Equal(t, "2024-08-15", parseDate("2024-08-15").Format("2006-01-02"))
}
