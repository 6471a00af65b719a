// Package expiry classifies best-before dates against an alert window.
package expiry

import "time"

const secondsPerDay = 24 * 60 * 60

type Status string

const (
	StatusNone    Status = "none"
	StatusOK      Status = "ok"
	StatusNear    Status = "near"
	StatusExpired Status = "expired"
)

// Classify compares calendar dates only, so an item expiring today is near,
// never expired. A negative alertDays behaves like zero.
func Classify(expiry *time.Time, alertDays int, today time.Time) Status {
	if expiry == nil {
		return StatusNone
	}
	if alertDays < 0 {
		alertDays = 0
	}

	diffDays := DaysBetween(today, *expiry)
	switch {
	case diffDays < 0:
		return StatusExpired
	case diffDays <= alertDays:
		return StatusNear
	default:
		return StatusOK
	}
}

// DaysBetween returns the number of calendar days from a to b, ignoring the
// time of day and each value's location.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int((to.Unix() - from.Unix()) / secondsPerDay)
}

type Classifier struct {
	AlertDays int
	Now       func() time.Time
}

func NewClassifier(alertDays int, now func() time.Time) Classifier {
	if now == nil {
		now = time.Now
	}
	return Classifier{AlertDays: alertDays, Now: now}
}

func (c Classifier) Status(expiry *time.Time) Status {
	now := c.Now
	if now == nil {
		now = time.Now
	}
	return Classify(expiry, c.AlertDays, now())
}

type Summary struct {
	None    int
	OK      int
	Near    int
	Expired int
}

func Summarize(statuses ...Status) Summary {
	var s Summary
	for _, status := range statuses {
		switch status {
		case StatusOK:
			s.OK++
		case StatusNear:
			s.Near++
		case StatusExpired:
			s.Expired++
		default:
			s.None++
		}
	}
	return s
}
