package repositories

import (
	"github.com/aarondl/null/v8"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02, 15:04:05"
)

func formatDateNull(t null.Time) *string {
	if !t.Valid {
		return nil
	}
	s := t.Time.Format(dateLayout)
	return &s
}

func nullStringPtr(s null.String) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func nullFloatPtr(f null.Float64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}
