package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/alicheaibx/ems-challenge/internal/service"
)

// Browser forms post numbers as strings, so both shapes are accepted.

type flexibleFloat struct {
	Value *float64
}

func (f *flexibleFloat) UnmarshalJSON(data []byte) error {
	f.Value = nil
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil
		}
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return errors.New("expected a number")
	}
	f.Value = &value
	return nil
}

type flexibleUint struct {
	Value uint
}

func (f *flexibleUint) UnmarshalJSON(data []byte) error {
	f.Value = 0
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil
		}
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return errors.New("expected a positive integer")
	}
	f.Value = uint(value)
	return nil
}

func parseDate(field string, raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}

	value := strings.TrimSpace(*raw)
	if value == "" {
		return nil, nil
	}

	parsed, err := time.Parse(service.DateLayout, value)
	if err != nil {
		return nil, errors.New(field + " must be in YYYY-MM-DD format")
	}

	return &parsed, nil
}

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

// parseDateTime reads the value a datetime-local input sends as well as RFC 3339.
// Values without a zone are taken as UTC.
func parseDateTime(field string, raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}

	value := strings.TrimSpace(*raw)
	if value == "" {
		return nil, nil
	}

	for _, layout := range dateTimeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed, nil
		}
	}

	return nil, errors.New(field + " must be a datetime such as 2024-01-01T09:00")
}
