package trading

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDate_MarshalJSON(t *testing.T) {
	d := NewDate(2024, time.May, 3)

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2024-05-03"` {
		t.Errorf("expected ISO date string, got %s", b)
	}
}

func TestDate_UnmarshalJSON(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`"2024-05-03"`), &d)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d.String() != "2024-05-03" {
		t.Errorf("expected 2024-05-03, got %s", d)
	}
}

func TestDate_UnmarshalJSON_Rejects(t *testing.T) {
	for _, raw := range []string{`"03.05.2024"`, `"2024-5-3"`, `20240503`, `""`} {
		var d Date
		if err := json.Unmarshal([]byte(raw), &d); err == nil {
			t.Errorf("expected error for %s", raw)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-12-31")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.December || d.Day() != 31 {
		t.Errorf("parsed wrong date: %v", d)
	}

	_, err = ParseDate("not-a-date")
	if err == nil {
		t.Error("expected parse error")
	}
}

func TestTradingResult_JSONShape(t *testing.T) {
	r := TradingResult{
		ID:                  1,
		ExchangeProductID:   "A100NVY060F",
		ExchangeProductName: "Regular-92",
		OilID:               "A100",
		DeliveryBasisID:     "NVY",
		DeliveryBasisName:   "st. Novoyaroslavskaya",
		DeliveryTypeID:      "F",
		Volume:              720,
		Total:               41250000,
		Count:               18,
		Date:                NewDate(2024, time.May, 3),
	}

	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded TradingResult
	err = json.Unmarshal(b, &decoded)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded != r {
		t.Errorf("roundtrip mismatch: %+v vs %+v", decoded, r)
	}
}
