package match

import (
    "context"
    "encoding/json"
    "log"
    "time"
)

const (
    defaultCandidatePoolLimit = 200
    dailyPickCount            = 10
    dailyPickTTL              = 24 * time.Hour
    defaultActiveWindowDays   = 30
)

// ServiceOptions tunes the candidate pool used for ranking and daily pick
// generation. Zero values fall back to the defaults above.
type ServiceOptions struct {
    CandidatePoolLimit   int
    ActiveUserWindowDays int
}

// PickNotifier tells a user their daily picks are ready, over whatever
// channels are configured.
type PickNotifier interface {
    PicksReady(ctx context.Context, userID int64, count int) error
}

type Service interface {
    ComputeMatch(ctx context.Context, userAID, userBID int64) (*MatchResult, error)
    RankCandidates(ctx context.Context, subjectID int64, candidateIDs []int64, opts RankOptions) ([]*MatchResult, error)

    GetDailyPicks(ctx context.Context, userID int64, limit int) ([]*DailyPick, error)
    GenerateDailyPicks(ctx context.Context) error
    CleanupExpiredPicks(ctx context.Context) error
}

type service struct {
    repo       Repository
    engine     *Engine
    hub        *Hub
    notifier   PickNotifier
    poolLimit  int
    activeDays int
}

// NewService wires the scoring engine to persistence and notification. Hub
// and notifier may be nil; daily pick generation then skips those channels.
func NewService(repo Repository, engine *Engine, hub *Hub, notifier PickNotifier, opts ServiceOptions) Service {
    if opts.CandidatePoolLimit <= 0 {
        opts.CandidatePoolLimit = defaultCandidatePoolLimit
    }
    if opts.ActiveUserWindowDays <= 0 {
        opts.ActiveUserWindowDays = defaultActiveWindowDays
    }
    return &service{
        repo:       repo,
        engine:     engine,
        hub:        hub,
        notifier:   notifier,
        poolLimit:  opts.CandidatePoolLimit,
        activeDays: opts.ActiveUserWindowDays,
    }
}

// loadProfile fetches a user's scoring view with the primary photo's
// attributes attached. A missing or unanalyzed photo leaves PrimaryPhoto
// nil; the engine resolves that to defaults.
func (s *service) loadProfile(ctx context.Context, userID int64) (*UserProfile, error) {
    profile, err := s.repo.GetUserProfile(ctx, userID)
    if err != nil {
        return nil, err
    }

    attrs, err := s.repo.GetPrimaryPhotoAttributes(ctx, userID)
    if err != nil {
        // Degraded photo data must not fail a match computation.
        log.Printf("match: photo attributes lookup failed for user %d: %v", userID, err)
        attrs = nil
    }
    profile.PrimaryPhoto = attrs

    return profile, nil
}

func (s *service) ComputeMatch(ctx context.Context, userAID, userBID int64) (*MatchResult, error) {
    a, err := s.loadProfile(ctx, userAID)
    if err != nil {
        return nil, err
    }
    b, err := s.loadProfile(ctx, userBID)
    if err != nil {
        return nil, err
    }

    return s.engine.Score(a, b)
}

func (s *service) RankCandidates(ctx context.Context, subjectID int64, candidateIDs []int64, opts RankOptions) ([]*MatchResult, error) {
    subject, err := s.loadProfile(ctx, subjectID)
    if err != nil {
        return nil, err
    }

    wanted, ok := subject.Gender.Complement()
    if !ok {
        // Unknown subject gender: fail safe with an empty result, matching
        // the ranker's own gate.
        return []*MatchResult{}, nil
    }

    var candidates []*UserProfile
    if len(candidateIDs) == 0 {
        candidates, err = s.repo.ListCandidates(ctx, wanted, subjectID, s.poolLimit)
        if err != nil {
            return nil, err
        }
    } else {
        candidates = make([]*UserProfile, 0, len(candidateIDs))
        for _, id := range candidateIDs {
            if id == subjectID {
                // The ranker does not know "self"; exclusion happens here.
                continue
            }
            c, err := s.repo.GetUserProfile(ctx, id)
            if err != nil {
                continue
            }
            candidates = append(candidates, c)
        }
    }

    for _, c := range candidates {
        attrs, err := s.repo.GetPrimaryPhotoAttributes(ctx, c.ID)
        if err != nil {
            continue
        }
        c.PrimaryPhoto = attrs
    }

    return s.engine.Rank(subject, candidates, opts), nil
}

func (s *service) GetDailyPicks(ctx context.Context, userID int64, limit int) ([]*DailyPick, error) {
    if limit <= 0 {
        limit = dailyPickCount
    }
    return s.repo.GetUserDailyPicks(ctx, userID, limit)
}

func (s *service) GenerateDailyPicks(ctx context.Context) error {
    userIDs, err := s.repo.GetActiveUserIDs(ctx, s.activeDays)
    if err != nil {
        return err
    }

    for _, userID := range userIDs {
        hasToday, err := s.repo.HasTodayPicks(ctx, userID)
        if err != nil || hasToday {
            continue
        }

        results, err := s.RankCandidates(ctx, userID, nil, RankOptions{TopN: dailyPickCount})
        if err != nil || len(results) == 0 {
            continue
        }

        expires := time.Now().Add(dailyPickTTL)
        created := 0
        for _, result := range results {
            reasons, _ := json.Marshal(result.Reasons)
            dims, _ := json.Marshal(result.DimensionScores)

            pick := &DailyPick{
                UserID:            userID,
                RecommendedUserID: result.UserID,
                Score:             result.TotalScore,
                Reasons:           reasons,
                DimensionScores:   dims,
                ExpiresAt:         &expires,
            }
            if err := s.repo.CreateDailyPick(ctx, pick); err != nil {
                log.Printf("match: failed to store daily pick for user %d: %v", userID, err)
                continue
            }
            RecordDailyPick()
            created++
        }

        if created == 0 {
            continue
        }
        if s.hub != nil {
            s.hub.NotifyPicksReady(userID, created)
        }
        if s.notifier != nil {
            if err := s.notifier.PicksReady(ctx, userID, created); err != nil {
                log.Printf("match: pick notification failed for user %d: %v", userID, err)
            }
        }
    }

    return nil
}

func (s *service) CleanupExpiredPicks(ctx context.Context) error {
    return s.repo.DeleteExpiredPicks(ctx)
}
