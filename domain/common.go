package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const DateLayout = "2006-01-02"

var (
	MessageFailedBodyRequest    = "failed to parse body request"
	MessageFailedProcessRequest = "failed to process request"
	MessageSuccessPing          = "pong"

	// Error kinds. Every specific error below wraps exactly one of them.
	ErrValidation         = errors.New("validation error")
	ErrInvariantViolation = errors.New("invariant violation")
	ErrNotFound           = errors.New("not found")
	ErrPersistence        = errors.New("persistence error")
	ErrUnavailable        = errors.New("feature unavailable")

	ErrParseUUID = fmt.Errorf("%w: failed to parse UUID", ErrValidation)
)

// LooseNumber decodes a JSON number or numeric string. Anything else leaves
// Valid false instead of failing the whole body.
type LooseNumber struct {
	Value float64
	Valid bool
}

func (n *LooseNumber) UnmarshalJSON(b []byte) error {
	*n = LooseNumber{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	var raw string
	if b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil
		}
	} else {
		raw = string(b)
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(raw, ",", ".")), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	n.Value, n.Valid = v, true
	return nil
}

func (n LooseNumber) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Ptr returns nil when the number was missing or malformed.
func (n LooseNumber) Ptr() *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// CoerceQuantity turns a missing, malformed or non-positive quantity into 1.
// Fractions are floored.
func CoerceQuantity(v *float64) int {
	if v == nil || math.IsNaN(*v) || *v < 1 {
		return 1
	}
	if *v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Floor(*v))
}

// CoercePrice turns a missing, malformed or negative price into 0.
func CoercePrice(v *float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 {
		return 0
	}
	return *v
}

func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
