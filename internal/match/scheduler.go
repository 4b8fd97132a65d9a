package match

import (
    "context"
    "log"
    "time"
)

// Scheduler runs the periodic matchmaking jobs.
type Scheduler struct {
    service     Service
    pickHour    int
    cleanupHour int
}

func NewScheduler(service Service, pickHour, cleanupHour int) *Scheduler {
    return &Scheduler{service: service, pickHour: pickHour, cleanupHour: cleanupHour}
}

func (s *Scheduler) Start(ctx context.Context) {
    // Daily picks generation
    go s.runDaily(ctx, s.pickHour, 0, s.service.GenerateDailyPicks)

    // Cleanup expired picks
    go s.runDaily(ctx, s.cleanupHour, 0, s.service.CleanupExpiredPicks)
}

func (s *Scheduler) runDaily(ctx context.Context, hour, minute int, task func(context.Context) error) {
    for {
        now := time.Now()
        next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
        if now.After(next) {
            next = next.Add(24 * time.Hour)
        }

        timer := time.NewTimer(next.Sub(now))

        select {
        case <-timer.C:
            if err := task(ctx); err != nil {
                log.Printf("Scheduled task failed: %v", err)
            }
        case <-ctx.Done():
            timer.Stop()
            return
        }
    }
}
