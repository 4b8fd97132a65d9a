package match

import (
    "sort"
    "time"
)

const defaultTopN = 10

// RankOptions control truncation and filtering of a ranking call.
type RankOptions struct {
    TopN     int
    MinScore float64
}

// Rank scores every eligible candidate against the subject and returns the
// top results sorted descending by total score. Eligibility is a hard
// opposite-gender gate applied before scoring and re-verified afterwards.
// A subject with an unrecognized gender yields an empty result: fail safe,
// never fail open. Self-exclusion is the caller's responsibility.
func (e *Engine) Rank(subject *UserProfile, candidates []*UserProfile, opts RankOptions) []*MatchResult {
    start := time.Now()
    defer func() { RecordRankingDuration(time.Since(start)) }()

    if subject == nil {
        return []*MatchResult{}
    }

    wanted, ok := subject.Gender.Complement()
    if !ok {
        return []*MatchResult{}
    }

    type scored struct {
        result    *MatchResult
        candidate *UserProfile
    }

    eligible := make([]scored, 0, len(candidates))
    for _, c := range candidates {
        if c == nil || c.Gender != wanted {
            continue
        }
        result, err := e.Score(subject, c)
        if err != nil {
            continue
        }
        eligible = append(eligible, scored{result: result, candidate: c})
    }

    // Stable sort: equal scores keep input order.
    sort.SliceStable(eligible, func(i, j int) bool {
        return eligible[i].result.TotalScore > eligible[j].result.TotalScore
    })

    topN := opts.TopN
    if topN <= 0 {
        topN = defaultTopN
    }

    results := make([]*MatchResult, 0, topN)
    for _, s := range eligible {
        // Defense in depth: the gate already filtered, but a same-gender
        // candidate must never leak past this point.
        if s.candidate.Gender != wanted {
            continue
        }
        if s.result.TotalScore < opts.MinScore {
            continue
        }
        results = append(results, s.result)
        if len(results) >= topN {
            break
        }
    }

    return results
}
