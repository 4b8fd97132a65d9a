package analysis

import (
    "context"
    "sync"
    "time"
)

const (
    defaultWindowSize  = 3
    defaultWindowDelay = 2 * time.Second
)

// BatchScorer fans analysis requests out in small concurrent windows with a
// delay between windows, to stay under the provider's rate limits. This is a
// caller-side policy; the provider itself is not throttled.
type BatchScorer struct {
    provider Provider
    window   int
    delay    time.Duration
}

func NewBatchScorer(provider Provider, window int, delay time.Duration) *BatchScorer {
    if window <= 0 {
        window = defaultWindowSize
    }
    if delay <= 0 {
        delay = defaultWindowDelay
    }
    return &BatchScorer{provider: provider, window: window, delay: delay}
}

// AnalyzeAll analyzes every request and returns results positionally aligned
// with the input. A failed call leaves a nil entry; callers map nil to the
// default attribute set, so one bad photo never aborts the batch.
func (b *BatchScorer) AnalyzeAll(ctx context.Context, reqs []AnalyzeRequest) []*Result {
    results := make([]*Result, len(reqs))

    for start := 0; start < len(reqs); start += b.window {
        if ctx.Err() != nil {
            break
        }

        end := start + b.window
        if end > len(reqs) {
            end = len(reqs)
        }

        var wg sync.WaitGroup
        for i := start; i < end; i++ {
            wg.Add(1)
            go func(i int) {
                defer wg.Done()
                res, err := b.provider.Analyze(ctx, reqs[i])
                if err != nil {
                    return
                }
                results[i] = res
            }(i)
        }
        wg.Wait()
        RecordBatchWindow()

        if end < len(reqs) && b.delay > 0 {
            select {
            case <-time.After(b.delay):
            case <-ctx.Done():
                return results
            }
        }
    }

    return results
}
