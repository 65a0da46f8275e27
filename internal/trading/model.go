package trading

import (
	"fmt"
	"time"
)

// dateLayout is the wire format for trade dates, in cache payloads and
// HTTP responses alike.
const dateLayout = "2006-01-02"

// Date is a calendar date (no time-of-day component). The standard
// time.Time JSON encoding carries a full RFC 3339 timestamp, which is not
// what the trading store or the cached payloads speak, so Date marshals as
// a plain ISO-8601 date string.
type Date struct {
	time.Time
}

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t}, nil
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON encodes the date as a quoted YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON decodes a quoted YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date token %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// TradingResult is an immutable snapshot of one trade record as produced
// by the trading store. Never mutated after creation.
type TradingResult struct {
	ID                  int64   `json:"id"`
	ExchangeProductID   string  `json:"exchange_product_id"`
	ExchangeProductName string  `json:"exchange_product_name"`
	OilID               string  `json:"oil_id"`
	DeliveryBasisID     string  `json:"delivery_basis_id"`
	DeliveryBasisName   string  `json:"delivery_basis_name"`
	DeliveryTypeID      string  `json:"delivery_type_id"`
	Volume              float64 `json:"volume"`
	Total               float64 `json:"total"`
	Count               int64   `json:"count"`
	Date                Date    `json:"date"`
}

// DynamicsFilter narrows a dynamics query. Every field is optional: an
// empty string or nil date imposes no constraint.
type DynamicsFilter struct {
	OilID           string
	DeliveryTypeID  string
	DeliveryBasisID string
	StartDate       *Date // inclusive
	EndDate         *Date // inclusive
}

// ResultsFilter narrows a trading-results query. All three identifiers
// are required at the API boundary.
type ResultsFilter struct {
	OilID           string
	DeliveryTypeID  string
	DeliveryBasisID string
}
