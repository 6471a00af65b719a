package expiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestClassifyBoundaries(t *testing.T) {
	today := time.Date(2025, time.March, 10, 18, 45, 0, 0, time.Local)
	const alertDays = 3

	assert.Equal(t, StatusNone, Classify(nil, alertDays, today))
	assert.Equal(t, StatusExpired, Classify(date(2025, time.March, 9), alertDays, today))
	assert.Equal(t, StatusNear, Classify(date(2025, time.March, 10), alertDays, today))
	assert.Equal(t, StatusNear, Classify(date(2025, time.March, 13), alertDays, today))
	assert.Equal(t, StatusOK, Classify(date(2025, time.March, 14), alertDays, today))
}

func TestClassifyZeroWindow(t *testing.T) {
	today := time.Date(2025, time.January, 1, 0, 0, 1, 0, time.UTC)

	assert.Equal(t, StatusNear, Classify(date(2025, time.January, 1), 0, today))
	assert.Equal(t, StatusOK, Classify(date(2025, time.January, 2), 0, today))
	assert.Equal(t, StatusNear, Classify(date(2025, time.January, 1), -5, today))
}

func TestClassifyAlwaysKnownStatus(t *testing.T) {
	today := time.Date(2024, time.February, 28, 12, 0, 0, 0, time.UTC)
	known := map[Status]bool{StatusNone: true, StatusOK: true, StatusNear: true, StatusExpired: true}

	for alertDays := 0; alertDays <= 10; alertDays++ {
		for offset := -15; offset <= 15; offset++ {
			d := today.AddDate(0, 0, offset)
			status := Classify(&d, alertDays, today)
			assert.True(t, known[status])
			assert.NotEqual(t, StatusNone, status)
		}
	}
}

func TestDaysBetweenAcrossLeapDay(t *testing.T) {
	assert.Equal(t, 2, DaysBetween(*date(2024, time.February, 28), *date(2024, time.March, 1)))
	assert.Equal(t, -1, DaysBetween(*date(2024, time.January, 1), *date(2023, time.December, 31)))
}

func TestDaysBetweenFarDates(t *testing.T) {
	today := *date(2025, time.March, 10)

	assert.Equal(t, 209946, DaysBetween(today, *date(2600, time.January, 1)))
	assert.Equal(t, -118772, DaysBetween(today, *date(1700, time.January, 1)))
}

func TestClassifyFarFutureBeyondWideWindow(t *testing.T) {
	today := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, StatusOK, Classify(date(2600, time.January, 1), 150000, today))
	assert.Equal(t, StatusNear, Classify(date(2600, time.January, 1), 209946, today))
	assert.Equal(t, StatusExpired, Classify(date(1700, time.January, 1), 150000, today))
}

func TestClassifierUsesInjectedClock(t *testing.T) {
	c := NewClassifier(2, func() time.Time { return time.Date(2025, time.May, 5, 9, 0, 0, 0, time.UTC) })

	assert.Equal(t, StatusNear, c.Status(date(2025, time.May, 7)))
	assert.Equal(t, StatusOK, c.Status(date(2025, time.May, 8)))
}

func TestSummarize(t *testing.T) {
	s := Summarize(StatusOK, StatusNear, StatusNear, StatusExpired, StatusNone)

	assert.Equal(t, Summary{None: 1, OK: 1, Near: 2, Expired: 1}, s)
}
