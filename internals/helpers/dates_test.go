package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-15")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("15/03/2025")
	assert.Error(t, err)
	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDateWindow(t *testing.T) {
	start, _ := ParseDate("2025-03-01")
	end, _ := ParseDate("2025-03-31")

	from, to := DateWindow(start, end)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), to)

	// une ligne horodatée en fin de journée du 31 est couverte par [from, to)
	lastMinute := time.Date(2025, time.March, 31, 23, 59, 0, 0, time.UTC)
	assert.True(t, !lastMinute.Before(from) && lastMinute.Before(to))

	// le lendemain à minuit est exclu
	nextDay := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, nextDay.Before(to))
}

func TestDateWindowSingleDay(t *testing.T) {
	day, _ := ParseDate("2025-03-15")
	from, to := DateWindow(day, day)
	assert.Equal(t, 24*time.Hour, to.Sub(from))
}
