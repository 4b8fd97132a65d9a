package match

import (
    "errors"
    "math"
)

var ErrMissingProfile = errors.New("both user profiles are required")

// Engine computes pairwise compatibility. It closes over the read-only
// quantization table and weights only, so it is safe for concurrent use.
type Engine struct {
    table   *QuantTable
    weights Weights
}

// NewEngine builds a scoring engine from injected configuration. Weight
// validation happens here, never inside the hot path.
func NewEngine(table *QuantTable, weights Weights) (*Engine, error) {
    if table == nil {
        table = DefaultTable()
    }
    if err := weights.Validate(); err != nil {
        return nil, err
    }
    return &Engine{table: table, weights: weights}, nil
}

// breakdown carries the intermediates of one scoring call so the reason
// generator works from the exact values the scorer used, with no
// recomputation drift.
type breakdown struct {
    commonInterests []string
    intentDistance  float64
    distAtoB        float64 // |A's demand - B's observed attractiveness|
    distBtoA        float64
}

// Score computes the weighted multi-dimension compatibility between two
// profiles. It fails only when a profile is missing; degraded data (unset
// answers, missing photos) always resolves to defaults.
func (e *Engine) Score(a, b *UserProfile) (*MatchResult, error) {
    result, _, err := e.score(a, b)
    return result, err
}

func (e *Engine) score(a, b *UserProfile) (*MatchResult, *breakdown, error) {
    if a == nil || b == nil {
        return nil, nil, ErrMissingProfile
    }

    bd := &breakdown{}
    dims := make(map[string]float64, 4)

    // 1. Interests: Jaccard similarity of the two tag sets.
    interestsRaw, common := interestSimilarity(a.Interests, b.Interests)
    bd.commonInterests = common
    dims[DimInterests] = interestsRaw * e.weights.Interests

    // 2. Relationship intent: symmetric distance on the quantized scale.
    intentA := e.table.QuantizeIntent(a.Intent)
    intentB := e.table.QuantizeIntent(b.Intent)
    bd.intentDistance = math.Abs(intentA - intentB)
    dims[DimIntent] = (100 - bd.intentDistance) * e.weights.Intent

    // 3. Social boundary: same distance formula.
    boundaryA := e.table.QuantizeBoundary(a.Boundary)
    boundaryB := e.table.QuantizeBoundary(b.Boundary)
    dims[DimBoundary] = (100 - math.Abs(boundaryA-boundaryB)) * e.weights.Boundary

    // 4. Appearance: bidirectional demand-vs-observed rule.
    appearanceRaw := e.appearanceMatch(a, b, bd)
    dims[DimAppearance] = appearanceRaw * e.weights.Appearance

    total := dims[DimInterests] + dims[DimIntent] + dims[DimBoundary] + dims[DimAppearance]

    result := &MatchResult{
        UserID:          b.ID,
        TotalScore:      total,
        DimensionScores: dims,
        Reasons:         e.buildReasons(bd, a, b),
    }

    RecordMatchScore(total)
    return result, bd, nil
}

// appearanceMatch implements the one asymmetric dimension. A preference is
// about the other party's observed trait, so each direction compares one
// user's demand level against the other's measured attractiveness; the two
// directions are averaged.
func (e *Engine) appearanceMatch(a, b *UserProfile, bd *breakdown) float64 {
    reqA := e.table.QuantizeAppearancePref(a.AppearancePref)
    reqB := e.table.QuantizeAppearancePref(b.AppearancePref)

    attrA := MapAppearanceToQuantized(Composite(a.PrimaryPhoto))
    attrB := MapAppearanceToQuantized(Composite(b.PrimaryPhoto))

    bd.distAtoB = math.Abs(reqA - attrB)
    bd.distBtoA = math.Abs(reqB - attrA)

    avg := ((100 - bd.distAtoB) + (100 - bd.distBtoA)) / 2
    return clamp(avg, 0, 100)
}

// interestSimilarity returns the Jaccard similarity scaled to 0-100 and the
// intersecting tags in a's order. Duplicate tags count once.
func interestSimilarity(a, b []string) (float64, []string) {
    setA := make(map[string]bool, len(a))
    for _, tag := range a {
        setA[tag] = true
    }
    setB := make(map[string]bool, len(b))
    for _, tag := range b {
        setB[tag] = true
    }

    var common []string
    seen := make(map[string]bool, len(a))
    for _, tag := range a {
        if setB[tag] && !seen[tag] {
            common = append(common, tag)
            seen[tag] = true
        }
    }

    union := len(setA) + len(setB) - len(common)
    if union == 0 {
        return 0, nil
    }

    return float64(len(common)) / float64(union) * 100, common
}
