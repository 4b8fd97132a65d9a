package match

import (
    "math"
    "testing"

    "github.com/heartlinkhq/heartlink-backend/internal/analysis"
)

func TestNormalizeAttributesFromAnalyzerResult(t *testing.T) {
    res := &analysis.Result{
        FaceDetected: true,
        Gender:       analysis.GenderMale,
        BeautyMale:   75,
        BeautyFemale: 80,
        Quality:      85,
        Smiling:      60,
    }

    attrs := NormalizeAttributes(res)

    // beauty 7.5, quality 8.5, smiling 6.0
    if attrs.Beauty != 7.5 {
        t.Errorf("Beauty = %v, want 7.5", attrs.Beauty)
    }
    if attrs.Quality != 8.5 {
        t.Errorf("Quality = %v, want 8.5", attrs.Quality)
    }
    // style = 7.5*0.7 + 6.0*0.3 = 7.05 -> 7.1 (one decimal)
    if attrs.Style != 7.1 {
        t.Errorf("Style = %v, want 7.1", attrs.Style)
    }
    // taste = 7.5*0.8 = 6.0, no female bias
    if attrs.Taste != 6.0 {
        t.Errorf("Taste = %v, want 6.0", attrs.Taste)
    }
    // coordination = 7.5*0.6 + 8.5*0.4 = 7.9
    if attrs.Coordination != 7.9 {
        t.Errorf("Coordination = %v, want 7.9", attrs.Coordination)
    }
    if !attrs.FaceDetected {
        t.Error("FaceDetected should be true")
    }
}

func TestNormalizeAttributesSelectsGenderSubScore(t *testing.T) {
    res := &analysis.Result{
        FaceDetected: true,
        Gender:       analysis.GenderFemale,
        BeautyMale:   40,
        BeautyFemale: 90,
        Quality:      50,
        Smiling:      50,
    }

    attrs := NormalizeAttributes(res)

    if attrs.Beauty != 9.0 {
        t.Errorf("Beauty = %v, want female sub-score 9.0", attrs.Beauty)
    }
    // taste = 9.0*0.8 + 0.5 female bias = 7.7
    if attrs.Taste != 7.7 {
        t.Errorf("Taste = %v, want 7.7", attrs.Taste)
    }
}

func TestNormalizeAttributesUnrecognizedGenderDefaultsToMale(t *testing.T) {
    res := &analysis.Result{
        FaceDetected: true,
        Gender:       "Unknown",
        BeautyMale:   60,
        BeautyFemale: 90,
        Quality:      50,
        Smiling:      50,
    }

    attrs := NormalizeAttributes(res)
    if attrs.Beauty != 6.0 {
        t.Errorf("Beauty = %v, want male sub-score 6.0", attrs.Beauty)
    }
}

func TestNormalizeAttributesFallback(t *testing.T) {
    cases := []struct {
        name string
        res  *analysis.Result
    }{
        {"nil result (provider failure)", nil},
        {"no face detected", &analysis.Result{FaceDetected: false}},
    }

    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            attrs := NormalizeAttributes(tc.res)

            want := DefaultAttributes()
            if attrs != want {
                t.Errorf("got %+v, want default set %+v", attrs, want)
            }
            if attrs.Style != 5.5 || attrs.Taste != 5.5 || attrs.Coordination != 5.5 ||
                attrs.Quality != 5.5 || attrs.Beauty != 5.5 {
                t.Errorf("fallback scores must all be 5.5, got %+v", attrs)
            }
            if attrs.FaceDetected {
                t.Error("fallback must report FaceDetected=false")
            }
        })
    }
}

func TestNormalizeAttributesClampsExtremes(t *testing.T) {
    res := &analysis.Result{
        FaceDetected: true,
        Gender:       analysis.GenderMale,
        BeautyMale:   0, // rescales to 0, clamps to 1
        Quality:      100,
        Smiling:      100,
    }

    attrs := NormalizeAttributes(res)
    if attrs.Beauty != 1.0 {
        t.Errorf("Beauty = %v, want clamped 1.0", attrs.Beauty)
    }
    if attrs.Quality != 10.0 {
        t.Errorf("Quality = %v, want 10.0", attrs.Quality)
    }
}

func TestCompositeBlend(t *testing.T) {
    p := &PhotoAttributeSet{Style: 7.5, Taste: 8.0, Coordination: 7.8}

    // 7.5*0.3 + 8.0*0.4 + 7.8*0.3 = 7.79 -> 7.8
    if got := Composite(p); got != 7.8 {
        t.Errorf("Composite = %v, want 7.8", got)
    }

    q := &PhotoAttributeSet{Style: 6.5, Taste: 7.0, Coordination: 6.8}
    if got := Composite(q); got != 6.8 {
        t.Errorf("Composite = %v, want 6.8", got)
    }
}

func TestCompositeWeightsSumToOne(t *testing.T) {
    sum := compositeStyleWeight + compositeTasteWeight + compositeCoordinationWeight
    if math.Abs(sum-1.0) > 1e-9 {
        t.Errorf("composite weights sum to %v, want 1.0", sum)
    }
}

func TestCompositeNilAndUnsetDefaults(t *testing.T) {
    if got := Composite(nil); got != 5.0 {
        t.Errorf("Composite(nil) = %v, want 5.0", got)
    }

    // Unset components resolve to 5.0 individually.
    p := &PhotoAttributeSet{Taste: 8.0}
    want := round1(5.0*0.3 + 8.0*0.4 + 5.0*0.3)
    if got := Composite(p); got != want {
        t.Errorf("Composite with unset components = %v, want %v", got, want)
    }
}

func TestCompositeIsIdempotent(t *testing.T) {
    p := &PhotoAttributeSet{Style: 7.5, Taste: 8.0, Coordination: 7.8}
    first := Composite(p)
    second := Composite(p)
    if first != second {
        t.Errorf("Composite not deterministic: %v vs %v", first, second)
    }
}
