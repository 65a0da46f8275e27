package repository

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mselser95/trading-results/internal/trading"
)

// Keys join the operation name and every parameter in a fixed order, so
// identical filter combinations always map to the same key. Parameter
// values arrive unrestricted from the query string, so each one is
// percent-escaped before joining: a value containing the ":" separator
// cannot forge extra segments.
//
// unset marks a parameter left unspecified. Escaping rewrites a literal
// "%" as "%25" and only ever emits "%" followed by two hex digits, so no
// value can render as the sentinel itself.
const unset = "%unset"

func lastTradingDatesKey(limit int) string {
	return fmt.Sprintf("last_trading_dates:%d", limit)
}

func dynamicsKey(f trading.DynamicsFilter) string {
	return strings.Join([]string{
		"dynamics",
		orUnset(f.OilID),
		orUnset(f.DeliveryTypeID),
		orUnset(f.DeliveryBasisID),
		dateOrUnset(f.StartDate),
		dateOrUnset(f.EndDate),
	}, ":")
}

func tradingResultsKey(f trading.ResultsFilter, limit int) string {
	return strings.Join([]string{
		"trading_results",
		orUnset(f.OilID),
		orUnset(f.DeliveryTypeID),
		orUnset(f.DeliveryBasisID),
		strconv.Itoa(limit),
	}, ":")
}

func orUnset(s string) string {
	if s == "" {
		return unset
	}
	return url.QueryEscape(s)
}

func dateOrUnset(d *trading.Date) string {
	if d == nil {
		return unset
	}
	return d.String()
}
