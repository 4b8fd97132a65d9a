package match

import (
    "github.com/heartlinkhq/heartlink-backend/internal/analysis"
)

const (
    // defaultAttributeScore is stored for photos whose analysis failed or
    // found no face.
    defaultAttributeScore = 5.5

    // fallbackComponentScore stands in for unset components when computing
    // the composite score.
    fallbackComponentScore = 5.0
)

// Composite appearance blend weights. Taste dominates because it carries the
// strongest overall impression; style and coordination split the rest.
const (
    compositeStyleWeight        = 0.3
    compositeTasteWeight        = 0.4
    compositeCoordinationWeight = 0.3
)

// DefaultAttributes is the universal fallback attribute set: mid scores with
// FaceDetected=false so consumers know these are not measurements.
func DefaultAttributes() PhotoAttributeSet {
    return PhotoAttributeSet{
        Style:        defaultAttributeScore,
        Taste:        defaultAttributeScore,
        Coordination: defaultAttributeScore,
        Quality:      defaultAttributeScore,
        Beauty:       defaultAttributeScore,
        FaceDetected: false,
    }
}

// NormalizeAttributes converts a raw analyzer result into the bounded
// attribute set. A nil result (provider failure mapped by the caller) or a
// no-face result degrades to DefaultAttributes; this is the single place the
// fallback policy lives, callers never special-case analyzer failures.
func NormalizeAttributes(res *analysis.Result) PhotoAttributeSet {
    if res == nil || !res.FaceDetected {
        return DefaultAttributes()
    }

    // The provider reports one beauty sub-score per gender; pick the one
    // matching the detected gender, defaulting to the male sub-score when
    // the tag is unrecognized.
    beautyRaw := res.BeautyMale
    if res.Gender == analysis.GenderFemale {
        beautyRaw = res.BeautyFemale
    }

    beauty := clamp(beautyRaw/10, 1, 10)
    quality := clamp(res.Quality/10, 1, 10)
    smiling := clamp(res.Smiling/10, 1, 10)

    style := beauty*0.7 + smiling*0.3
    taste := beauty * 0.8
    if res.Gender == analysis.GenderFemale {
        taste += 0.5
    }
    coordination := beauty*0.6 + quality*0.4

    return PhotoAttributeSet{
        Style:        round1(style),
        Taste:        round1(taste),
        Coordination: round1(coordination),
        Quality:      round1(quality),
        Beauty:       round1(beauty),
        FaceDetected: true,
    }
}

// Composite reduces a photo's attribute set to a single 1-10 attractiveness
// value. Nil input and unset components resolve to the mid score; the
// function is pure and deterministic.
func Composite(p *PhotoAttributeSet) float64 {
    var style, taste, coordination float64
    if p != nil {
        style = p.Style
        taste = p.Taste
        coordination = p.Coordination
    }

    composite := resolveComponent(style)*compositeStyleWeight +
        resolveComponent(taste)*compositeTasteWeight +
        resolveComponent(coordination)*compositeCoordinationWeight

    return round1(composite)
}

func resolveComponent(v float64) float64 {
    if v <= 0 {
        return fallbackComponentScore
    }
    return v
}
