package analysis

import (
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promauto"
)

var (
    analyzeRequestsTotal = promauto.NewCounterVec(
        prometheus.CounterOpts{
            Name: "analysis_requests_total",
            Help: "Total number of face analysis requests by outcome",
        },
        []string{"outcome"},
    )

    batchWindowsTotal = promauto.NewCounter(
        prometheus.CounterOpts{
            Name: "analysis_batch_windows_total",
            Help: "Total number of throttled batch analysis windows processed",
        },
    )
)

func RecordAnalyzeResult(outcome string) {
    analyzeRequestsTotal.WithLabelValues(outcome).Inc()
}

func RecordBatchWindow() {
    batchWindowsTotal.Inc()
}
