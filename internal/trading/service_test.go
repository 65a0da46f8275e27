package trading

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

type recordingQueries struct {
	calls []string
	err   error
}

func (r *recordingQueries) LastTradingDates(ctx context.Context, limit int) ([]Date, error) {
	r.calls = append(r.calls, "dates")
	return []Date{NewDate(2024, time.May, 3)}, r.err
}

func (r *recordingQueries) Dynamics(ctx context.Context, f DynamicsFilter) ([]TradingResult, error) {
	r.calls = append(r.calls, "dynamics")
	return nil, r.err
}

func (r *recordingQueries) TradingResults(ctx context.Context, f ResultsFilter, limit int) ([]TradingResult, error) {
	r.calls = append(r.calls, "results")
	return nil, r.err
}

func TestService_DelegatesToQueries(t *testing.T) {
	q := &recordingQueries{}
	s := NewService(q, zap.NewNop())
	ctx := context.Background()

	dates, err := s.GetLastTradingDates(ctx, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dates) != 1 {
		t.Errorf("expected delegated result, got %v", dates)
	}

	_, _ = s.GetDynamics(ctx, DynamicsFilter{})
	_, _ = s.GetTradingResults(ctx, ResultsFilter{}, 10)

	want := []string{"dates", "dynamics", "results"}
	if len(q.calls) != len(want) {
		t.Fatalf("expected %d calls, got %d", len(want), len(q.calls))
	}
	for i, w := range want {
		if q.calls[i] != w {
			t.Errorf("call %d: expected %s, got %s", i, w, q.calls[i])
		}
	}
}

func TestService_PropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	s := NewService(&recordingQueries{err: boom}, zap.NewNop())

	_, err := s.GetLastTradingDates(context.Background(), 5)
	if !errors.Is(err, boom) {
		t.Errorf("expected error to propagate, got %v", err)
	}
}
