package repository

import (
	"testing"

	"github.com/mselser95/trading-results/internal/trading"
)

func TestKeys_Injective(t *testing.T) {
	may1 := trading.NewDate(2024, 5, 1)
	may2 := trading.NewDate(2024, 5, 2)

	keys := []string{
		lastTradingDatesKey(5),
		lastTradingDatesKey(10),
		dynamicsKey(trading.DynamicsFilter{}),
		dynamicsKey(trading.DynamicsFilter{OilID: "A100"}),
		dynamicsKey(trading.DynamicsFilter{DeliveryTypeID: "A100"}),
		dynamicsKey(trading.DynamicsFilter{DeliveryBasisID: "A100"}),
		dynamicsKey(trading.DynamicsFilter{StartDate: &may1}),
		dynamicsKey(trading.DynamicsFilter{EndDate: &may1}),
		dynamicsKey(trading.DynamicsFilter{StartDate: &may1, EndDate: &may2}),
		dynamicsKey(trading.DynamicsFilter{OilID: "A100", DeliveryTypeID: "T1"}),
		// Separator-bearing values must not fold into neighbouring segments.
		dynamicsKey(trading.DynamicsFilter{OilID: "a:b"}),
		dynamicsKey(trading.DynamicsFilter{OilID: "a", DeliveryTypeID: "b"}),
		dynamicsKey(trading.DynamicsFilter{OilID: "a", DeliveryTypeID: "b:none"}),
		// Values spelling the unset marker are still values.
		dynamicsKey(trading.DynamicsFilter{OilID: "none"}),
		dynamicsKey(trading.DynamicsFilter{OilID: "%unset"}),
		tradingResultsKey(trading.ResultsFilter{OilID: "A100", DeliveryTypeID: "T1", DeliveryBasisID: "B1"}, 10),
		tradingResultsKey(trading.ResultsFilter{OilID: "A100", DeliveryTypeID: "T1", DeliveryBasisID: "B1"}, 11),
		tradingResultsKey(trading.ResultsFilter{OilID: "A100", DeliveryTypeID: "B1", DeliveryBasisID: "T1"}, 10),
		tradingResultsKey(trading.ResultsFilter{OilID: "a:b"}, 10),
		tradingResultsKey(trading.ResultsFilter{OilID: "a", DeliveryTypeID: "b"}, 10),
	}

	seen := make(map[string]int)
	for i, k := range keys {
		if j, dup := seen[k]; dup {
			t.Errorf("keys %d and %d collide: %q", j, i, k)
		}
		seen[k] = i
	}
}

func TestKeys_Deterministic(t *testing.T) {
	f := trading.DynamicsFilter{OilID: "A100", DeliveryBasisID: "B1"}
	if dynamicsKey(f) != dynamicsKey(f) {
		t.Error("identical filters must map to the same key")
	}
}

func TestKeys_Format(t *testing.T) {
	if got := lastTradingDatesKey(5); got != "last_trading_dates:5" {
		t.Errorf("unexpected key %q", got)
	}

	if got := dynamicsKey(trading.DynamicsFilter{}); got != "dynamics:%unset:%unset:%unset:%unset:%unset" {
		t.Errorf("unexpected key %q", got)
	}

	may1 := trading.NewDate(2024, 5, 1)
	got := dynamicsKey(trading.DynamicsFilter{OilID: "A100", StartDate: &may1})
	if got != "dynamics:A100:%unset:%unset:2024-05-01:%unset" {
		t.Errorf("unexpected key %q", got)
	}

	got = tradingResultsKey(trading.ResultsFilter{OilID: "A100", DeliveryTypeID: "T1", DeliveryBasisID: "B1"}, 10)
	if got != "trading_results:A100:T1:B1:10" {
		t.Errorf("unexpected key %q", got)
	}
}

func TestKeys_EscapeSeparatorAndMarker(t *testing.T) {
	got := dynamicsKey(trading.DynamicsFilter{OilID: "a:b"})
	want := "dynamics:a%3Ab:%unset:%unset:%unset:%unset"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	// A literal value can never render as the unset marker: escaping
	// rewrites its "%" as "%25".
	literal := dynamicsKey(trading.DynamicsFilter{OilID: "%unset"})
	if literal == dynamicsKey(trading.DynamicsFilter{}) {
		t.Errorf("literal marker value collides with unset: %q", literal)
	}
}
