package match

import (
    "fmt"
    "math"
)

// quantMidpoint is the fallback for unrecognized or unset categorical
// answers: never an error, always the middle of the scale.
const quantMidpoint = 50.0

// Weights are the per-dimension multipliers. They must sum to 1.0 so that
// the weighted contributions stay on the 0-100 scale.
type Weights struct {
    Interests  float64
    Intent     float64
    Boundary   float64
    Appearance float64
}

func DefaultWeights() Weights {
    return Weights{
        Interests:  0.10,
        Intent:     0.40,
        Boundary:   0.10,
        Appearance: 0.40,
    }
}

func (w Weights) Sum() float64 {
    return w.Interests + w.Intent + w.Boundary + w.Appearance
}

func (w Weights) Validate() error {
    if math.Abs(w.Sum()-1.0) > 1e-9 {
        return fmt.Errorf("dimension weights must sum to 1.0, got %v", w.Sum())
    }
    return nil
}

// QuantTable maps every recognized categorical option onto the common 0-100
// scale (3-point scales in steps of 50). It is read-only after construction
// and safe for concurrent use.
type QuantTable struct {
    intent         map[RelationshipIntent]float64
    boundary       map[SocialBoundary]float64
    appearancePref map[AppearancePreference]float64
}

func DefaultTable() *QuantTable {
    return &QuantTable{
        intent: map[RelationshipIntent]float64{
            IntentShortTerm: 0,
            IntentLongTerm:  50,
            IntentDestined:  100,
        },
        boundary: map[SocialBoundary]float64{
            BoundaryStrict:   0,
            BoundaryModerate: 50,
            BoundaryOpen:     100,
        },
        // Inverted demand scale: 0 means the user demands maximum
        // attractiveness, 100 means looks barely matter.
        appearancePref: map[AppearancePreference]float64{
            PrefLooksFocused:     0,
            PrefSomewhat:         50,
            PrefCharacterFocused: 100,
        },
    }
}

func (t *QuantTable) QuantizeIntent(v RelationshipIntent) float64 {
    if q, ok := t.intent[v]; ok {
        return q
    }
    return quantMidpoint
}

func (t *QuantTable) QuantizeBoundary(v SocialBoundary) float64 {
    if q, ok := t.boundary[v]; ok {
        return q
    }
    return quantMidpoint
}

func (t *QuantTable) QuantizeAppearancePref(v AppearancePreference) float64 {
    if q, ok := t.appearancePref[v]; ok {
        return q
    }
    return quantMidpoint
}

// MapAppearanceToQuantized maps a 1-10 composite appearance score onto the
// 0-100 scale used for preference distance: 1 -> 0, 5.5 -> 50, 10 -> 100.
func MapAppearanceToQuantized(score float64) float64 {
    clamped := clamp(score, 1, 10)
    return (clamped - 1) / 9 * 100
}

func clamp(v, lo, hi float64) float64 {
    return math.Max(lo, math.Min(hi, v))
}

// round1 keeps one decimal place, the precision all photo-derived scores are
// stored with.
func round1(v float64) float64 {
    return math.Round(v*10) / 10
}
