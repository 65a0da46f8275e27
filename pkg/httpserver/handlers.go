package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/mselser95/trading-results/internal/trading"
	"go.uber.org/zap"
)

// Limit bounds shared by both limited operations.
const (
	limitMin = 1
	limitMax = 100

	defaultDatesLimit   = 5
	defaultResultsLimit = 10
)

type handlers struct {
	service *trading.Service
	logger  *zap.Logger
}

// FieldError describes one invalid query parameter.
type FieldError struct {
	Loc []string `json:"loc"`
	Msg string   `json:"msg"`
}

// ValidationResponse is the 422 envelope.
type ValidationResponse struct {
	Detail []FieldError `json:"detail"`
}

// ErrorResponse is the generic error envelope. ErrorID correlates the
// response with the server-side log line; internals are never leaked.
type ErrorResponse struct {
	Detail  string `json:"detail"`
	ErrorID string `json:"error_id,omitempty"`
}

func (h *handlers) handleLastTradingDates(w http.ResponseWriter, r *http.Request) {
	var errs []FieldError
	limit := parseLimit(r, "limit", defaultDatesLimit, &errs)
	if len(errs) > 0 {
		writeValidationError(w, errs)
		return
	}

	dates, err := h.service.GetLastTradingDates(r.Context(), limit)
	if err != nil {
		h.writeServerError(w, r, err)
		return
	}
	if dates == nil {
		dates = []trading.Date{}
	}

	writeJSON(w, http.StatusOK, dates)
}

func (h *handlers) handleDynamics(w http.ResponseWriter, r *http.Request) {
	var errs []FieldError
	f := trading.DynamicsFilter{
		OilID:           r.URL.Query().Get("oil_id"),
		DeliveryTypeID:  r.URL.Query().Get("delivery_type_id"),
		DeliveryBasisID: r.URL.Query().Get("delivery_basis_id"),
		StartDate:       parseDate(r, "start_date", &errs),
		EndDate:         parseDate(r, "end_date", &errs),
	}
	if len(errs) > 0 {
		writeValidationError(w, errs)
		return
	}

	results, err := h.service.GetDynamics(r.Context(), f)
	if err != nil {
		h.writeServerError(w, r, err)
		return
	}
	if results == nil {
		results = []trading.TradingResult{}
	}

	writeJSON(w, http.StatusOK, results)
}

func (h *handlers) handleTradingResults(w http.ResponseWriter, r *http.Request) {
	var errs []FieldError
	f := trading.ResultsFilter{
		OilID:           requireParam(r, "oil_id", &errs),
		DeliveryTypeID:  requireParam(r, "delivery_type_id", &errs),
		DeliveryBasisID: requireParam(r, "delivery_basis_id", &errs),
	}
	limit := parseLimit(r, "limit", defaultResultsLimit, &errs)
	if len(errs) > 0 {
		writeValidationError(w, errs)
		return
	}

	results, err := h.service.GetTradingResults(r.Context(), f, limit)
	if err != nil {
		h.writeServerError(w, r, err)
		return
	}
	if results == nil {
		results = []trading.TradingResult{}
	}

	writeJSON(w, http.StatusOK, results)
}

func parseLimit(r *http.Request, name string, def int, errs *[]FieldError) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, FieldError{
			Loc: []string{"query", name},
			Msg: "must be an integer",
		})
		return def
	}
	if limit < limitMin || limit > limitMax {
		*errs = append(*errs, FieldError{
			Loc: []string{"query", name},
			Msg: fmt.Sprintf("must be between %d and %d", limitMin, limitMax),
		})
		return def
	}
	return limit
}

func parseDate(r *http.Request, name string, errs *[]FieldError) *trading.Date {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}

	d, err := trading.ParseDate(raw)
	if err != nil {
		*errs = append(*errs, FieldError{
			Loc: []string{"query", name},
			Msg: "must be a date in YYYY-MM-DD format",
		})
		return nil
	}
	return &d
}

func requireParam(r *http.Request, name string, errs *[]FieldError) string {
	value := r.URL.Query().Get(name)
	if value == "" {
		*errs = append(*errs, FieldError{
			Loc: []string{"query", name},
			Msg: "field required",
		})
	}
	return value
}

func writeValidationError(w http.ResponseWriter, errs []FieldError) {
	writeJSON(w, http.StatusUnprocessableEntity, ValidationResponse{Detail: errs})
}

// writeServerError logs the failure under a fresh error id and returns a
// generic 500 carrying only that id.
func (h *handlers) writeServerError(w http.ResponseWriter, r *http.Request, err error) {
	errorID := uuid.NewString()
	h.logger.Error("request-failed",
		zap.String("error-id", errorID),
		zap.String("path", r.URL.Path),
		zap.Error(err))

	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Detail:  "internal server error",
		ErrorID: errorID,
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
