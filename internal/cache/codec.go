package cache

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/mselser95/trading-results/internal/trading"
)

// Cached payloads are tagged with the shape they carry so that decoding
// is exhaustive: a payload written as one shape never silently decodes as
// another. Dates and timestamps inside the payload marshal as ISO-8601
// strings (trading.Date).
type payloadKind string

const (
	kindDates   payloadKind = "dates"
	kindResults payloadKind = "results"
)

type envelope struct {
	Kind    payloadKind             `json:"kind"`
	Dates   []trading.Date          `json:"dates,omitempty"`
	Results []trading.TradingResult `json:"results,omitempty"`
}

// EncodeDates serializes a list of trade dates for caching.
func EncodeDates(dates []trading.Date) (string, error) {
	b, err := json.Marshal(envelope{Kind: kindDates, Dates: dates})
	if err != nil {
		return "", fmt.Errorf("encode dates payload: %w", err)
	}
	return string(b), nil
}

// DecodeDates reconstructs a list of trade dates from a cached payload.
// A payload of the wrong shape is an error.
func DecodeDates(payload string) ([]trading.Date, error) {
	var env envelope
	err := json.Unmarshal([]byte(payload), &env)
	if err != nil {
		return nil, fmt.Errorf("decode dates payload: %w", err)
	}
	if env.Kind != kindDates {
		return nil, fmt.Errorf("decode dates payload: unexpected kind %q", env.Kind)
	}
	return env.Dates, nil
}

// EncodeResults serializes a list of trading results for caching.
func EncodeResults(results []trading.TradingResult) (string, error) {
	b, err := json.Marshal(envelope{Kind: kindResults, Results: results})
	if err != nil {
		return "", fmt.Errorf("encode results payload: %w", err)
	}
	return string(b), nil
}

// DecodeResults reconstructs a list of trading results from a cached
// payload. A payload of the wrong shape is an error.
func DecodeResults(payload string) ([]trading.TradingResult, error) {
	var env envelope
	err := json.Unmarshal([]byte(payload), &env)
	if err != nil {
		return nil, fmt.Errorf("decode results payload: %w", err)
	}
	if env.Kind != kindResults {
		return nil, fmt.Errorf("decode results payload: unexpected kind %q", env.Kind)
	}
	return env.Results, nil
}
