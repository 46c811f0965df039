// Package apiutil holds the pieces every v1 handler shares: error mapping,
// pagination models and request value parsing.
package apiutil

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/report"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// DateLayout is the layout of every date in requests and responses.
const DateLayout = "2006-01-02"

// Error converts a service error into the huma error the client sees. msg is
// used for errors that have no mapping of their own.
func Error(err error, msg string) error {
	var statusErr huma.StatusError
	switch {
	case errors.As(err, &statusErr):
		return statusErr
	case errors.Is(err, report.ErrInvalidRange):
		return huma.NewError(http.StatusBadRequest, "invalid date range", err)
	case errors.Is(err, report.ErrStoreUnavailable):
		return huma.NewError(http.StatusServiceUnavailable, "record store unavailable", err)
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrInvalidReference):
		return huma.NewError(http.StatusBadRequest, "referenced record not found", err)
	case errors.Is(err, service.ErrInvalidInput):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		return huma.NewError(http.StatusConflict, "email already registered")
	case errors.Is(err, service.ErrInvalidCredentials):
		return huma.NewError(http.StatusUnauthorized, "invalid email or password")
	default:
		return huma.NewError(http.StatusInternalServerError, msg, err)
	}
}

// PageInput are the pagination query parameters of list operations.
type PageInput struct {
	Position int `query:"position" minimum:"0" doc:"Offset for pagination"`
	Limit    int `query:"limit" minimum:"0" maximum:"100" doc:"Page size, default 20"`
}

// Cursor returns the service cursor for the page, nil for the first page with defaults.
func (p PageInput) Cursor() *service.Cursor {
	if p.Position == 0 && p.Limit == 0 {
		return nil
	}
	return &service.Cursor{Position: p.Position, Limit: p.Limit}
}

// Cursor is the next page of a list response.
type Cursor struct {
	Position int `json:"position" doc:"Offset for next page"`
	Limit    int `json:"limit" doc:"Page size"`
}

// NextCursor converts the service cursor, nil on the last page.
func NextCursor(c *service.Cursor) *Cursor {
	if c == nil {
		return nil
	}
	return &Cursor{Position: c.Position, Limit: c.Limit}
}

// ParseID parses a path or body id.
func ParseID(value, field string) (uuid.UUID, error) {
	id, err := uuid.FromString(value)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return id, nil
}

// ParseOptionalID parses an id that may be empty.
func ParseOptionalID(value, field string) (uuid.NullUUID, error) {
	if value == "" {
		return uuid.NullUUID{}, nil
	}
	id, err := ParseID(value, field)
	if err != nil {
		return uuid.NullUUID{}, err
	}
	return uuid.NullUUID{UUID: id, Valid: true}, nil
}

// ParseAmount parses a non-negative decimal amount.
func ParseAmount(value, field string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	if amount.IsNegative() {
		return decimal.Zero, huma.NewError(http.StatusBadRequest, field+" must not be negative")
	}
	return amount, nil
}

// ParseDate parses a YYYY-MM-DD or RFC3339 date.
func ParseDate(value, field string) (time.Time, error) {
	t, err := report.ParseDate(value)
	if err != nil {
		return time.Time{}, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return t, nil
}

// ParseOptionalDate parses a date that may be empty.
func ParseOptionalDate(value, field string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := ParseDate(value, field)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate renders a stored date.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// NullableID renders an optional id as a string pointer.
func NullableID(id uuid.NullUUID) *string {
	if !id.Valid {
		return nil
	}
	s := id.UUID.String()
	return &s
}
