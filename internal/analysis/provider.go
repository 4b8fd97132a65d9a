package analysis

import (
    "context"
    "errors"
)

var ErrNoImage = errors.New("image path or url is required")

// GenderTag is the gender label reported by the face analysis provider.
type GenderTag string

const (
    GenderMale   GenderTag = "Male"
    GenderFemale GenderTag = "Female"
)

// AnalyzeRequest points at the photo to analyze. At least one of the two
// fields must be set; ImagePath wins when both are present.
type AnalyzeRequest struct {
    ImagePath string
    ImageURL  string
}

// Result carries the raw per-photo attributes the provider reports.
// Beauty sub-scores, quality and smiling are all on the provider's 0-100
// scale; normalization happens downstream in the match package.
type Result struct {
    FaceDetected bool
    Gender       GenderTag
    BeautyMale   float64
    BeautyFemale float64
    Quality      float64
    Smiling      float64
    Age          int
}

// Provider is the face analysis capability. Implementations must return a
// Result with FaceDetected=false (not an error) when the photo contains no
// face; errors are reserved for transport/auth failures.
type Provider interface {
    Analyze(ctx context.Context, req AnalyzeRequest) (*Result, error)
}
