package match

import (
    "time"

    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promauto"
)

var (
    matchComputationsTotal = promauto.NewCounter(
        prometheus.CounterOpts{
            Name: "match_computations_total",
            Help: "Total number of pairwise match computations",
        },
    )

    matchScores = promauto.NewHistogram(
        prometheus.HistogramOpts{
            Name:    "match_total_scores",
            Help:    "Distribution of pairwise total match scores",
            Buckets: prometheus.LinearBuckets(0, 10, 11),
        },
    )

    rankingDuration = promauto.NewHistogram(
        prometheus.HistogramOpts{
            Name: "match_ranking_duration_seconds",
            Help: "Time spent ranking a candidate set",
        },
    )

    dailyPicksGenerated = promauto.NewCounter(
        prometheus.CounterOpts{
            Name: "match_daily_picks_generated_total",
            Help: "Total number of daily picks created",
        },
    )
)

func RecordMatchScore(score float64) {
    matchComputationsTotal.Inc()
    matchScores.Observe(score)
}

func RecordRankingDuration(d time.Duration) {
    rankingDuration.Observe(d.Seconds())
}

func RecordDailyPick() {
    dailyPicksGenerated.Inc()
}
