package analysis

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// countingProvider tracks peak concurrency and fails selected requests
type countingProvider struct {
	mu       sync.Mutex
	inFlight int
	peak     int
	calls    int32
	failURL  string
}

func (p *countingProvider) Analyze(ctx context.Context, req AnalyzeRequest) (*Result, error) {
	p.mu.Lock()
	p.inFlight++
	if p.inFlight > p.peak {
		p.peak = p.inFlight
	}
	p.mu.Unlock()

	atomic.AddInt32(&p.calls, 1)
	time.Sleep(5 * time.Millisecond)

	p.mu.Lock()
	p.inFlight--
	p.mu.Unlock()

	if req.ImageURL == p.failURL {
		return nil, errors.New("boom")
	}
	return &Result{FaceDetected: true, Gender: GenderMale}, nil
}

func requests(n int) []AnalyzeRequest {
	reqs := make([]AnalyzeRequest, n)
	for i := range reqs {
		reqs[i] = AnalyzeRequest{ImageURL: string(rune('a' + i))}
	}
	return reqs
}

func TestBatchRespectsWindowSize(t *testing.T) {
	provider := &countingProvider{}
	scorer := NewBatchScorer(provider, 3, time.Millisecond)

	results := scorer.AnalyzeAll(context.Background(), requests(7))

	if len(results) != 7 {
		t.Fatalf("expected 7 results, got %d", len(results))
	}
	for i, res := range results {
		if res == nil {
			t.Errorf("result %d is nil", i)
		}
	}
	if provider.peak > 3 {
		t.Errorf("peak concurrency %d exceeds window of 3", provider.peak)
	}
	if got := atomic.LoadInt32(&provider.calls); got != 7 {
		t.Errorf("calls = %d, want 7", got)
	}
}

func TestBatchFailureLeavesNilEntry(t *testing.T) {
	provider := &countingProvider{failURL: "b"}
	scorer := NewBatchScorer(provider, 3, time.Millisecond)

	results := scorer.AnalyzeAll(context.Background(), requests(3))

	if results[0] == nil || results[2] == nil {
		t.Error("successful requests must produce results")
	}
	if results[1] != nil {
		t.Error("failed request must leave a nil entry")
	}
}

func TestBatchStopsOnCanceledContext(t *testing.T) {
	provider := &countingProvider{}
	scorer := NewBatchScorer(provider, 2, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := scorer.AnalyzeAll(ctx, requests(6))

	if len(results) != 6 {
		t.Fatalf("expected positional slice of 6, got %d", len(results))
	}
	if got := atomic.LoadInt32(&provider.calls); got != 0 {
		t.Errorf("expected no calls after cancellation, got %d", got)
	}
}

func TestBatchEmptyInput(t *testing.T) {
	scorer := NewBatchScorer(&countingProvider{}, 0, 0)
	if results := scorer.AnalyzeAll(context.Background(), nil); len(results) != 0 {
		t.Errorf("expected empty results, got %d", len(results))
	}
}
