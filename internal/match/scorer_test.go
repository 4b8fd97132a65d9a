package match

import (
    "math"
    "testing"
)

func newTestEngine(t *testing.T) *Engine {
    t.Helper()
    engine, err := NewEngine(DefaultTable(), DefaultWeights())
    if err != nil {
        t.Fatalf("NewEngine: %v", err)
    }
    return engine
}

func TestScoreRejectsMissingProfiles(t *testing.T) {
    engine := newTestEngine(t)

    if _, err := engine.Score(nil, &UserProfile{}); err != ErrMissingProfile {
        t.Errorf("expected ErrMissingProfile for nil first arg, got %v", err)
    }
    if _, err := engine.Score(&UserProfile{}, nil); err != ErrMissingProfile {
        t.Errorf("expected ErrMissingProfile for nil second arg, got %v", err)
    }
    if _, err := engine.Score(nil, nil); err != ErrMissingProfile {
        t.Errorf("expected ErrMissingProfile for both nil, got %v", err)
    }
}

func TestScoreRangeAndDimensionSumInvariant(t *testing.T) {
    engine := newTestEngine(t)

    intents := []RelationshipIntent{IntentShortTerm, IntentLongTerm, IntentDestined, ""}
    boundaries := []SocialBoundary{BoundaryStrict, BoundaryModerate, BoundaryOpen, ""}
    prefs := []AppearancePreference{PrefLooksFocused, PrefSomewhat, PrefCharacterFocused, ""}
    photos := []*PhotoAttributeSet{
        nil,
        {Style: 1, Taste: 1, Coordination: 1, Quality: 1, Beauty: 1, FaceDetected: true},
        {Style: 10, Taste: 10, Coordination: 10, Quality: 10, Beauty: 10, FaceDetected: true},
    }

    a := &UserProfile{ID: 1, Gender: GenderMaleStudent, Interests: []string{"sports", "music"}}
    b := &UserProfile{ID: 2, Gender: GenderFemale, Interests: []string{"music", "travel"}}

    for _, ia := range intents {
        for _, ba := range boundaries {
            for _, pa := range prefs {
                for _, pha := range photos {
                    a.Intent, a.Boundary, a.AppearancePref, a.PrimaryPhoto = ia, ba, pa, pha
                    b.Intent, b.Boundary, b.AppearancePref = ia, ba, pa
                    b.PrimaryPhoto = photos[0]

                    result, err := engine.Score(a, b)
                    if err != nil {
                        t.Fatalf("Score: %v", err)
                    }

                    if result.TotalScore < 0 || result.TotalScore > 100 {
                        t.Errorf("total score %v out of [0,100]", result.TotalScore)
                    }

                    var sum float64
                    for _, v := range result.DimensionScores {
                        sum += v
                    }
                    if math.Abs(sum-result.TotalScore) > 1e-6 {
                        t.Errorf("dimension sum %v != total %v", sum, result.TotalScore)
                    }
                    if len(result.DimensionScores) != 4 {
                        t.Errorf("expected 4 dimensions, got %d", len(result.DimensionScores))
                    }
                }
            }
        }
    }
}

func TestNonAppearanceDimensionsAreSymmetric(t *testing.T) {
    engine := newTestEngine(t)

    a := &UserProfile{
        ID: 1, Gender: GenderMaleStudent,
        Interests: []string{"sports", "reading"},
        Intent:    IntentShortTerm, Boundary: BoundaryStrict,
        AppearancePref: PrefLooksFocused,
        PrimaryPhoto:   &PhotoAttributeSet{Style: 9, Taste: 9, Coordination: 9, FaceDetected: true},
    }
    b := &UserProfile{
        ID: 2, Gender: GenderFemale,
        Interests: []string{"reading", "travel"},
        Intent:    IntentDestined, Boundary: BoundaryOpen,
        AppearancePref: PrefCharacterFocused,
        PrimaryPhoto:   &PhotoAttributeSet{Style: 3, Taste: 3, Coordination: 3, FaceDetected: true},
    }

    ab, err := engine.Score(a, b)
    if err != nil {
        t.Fatal(err)
    }
    ba, err := engine.Score(b, a)
    if err != nil {
        t.Fatal(err)
    }

    for _, dim := range []string{DimInterests, DimIntent, DimBoundary} {
        if math.Abs(ab.DimensionScores[dim]-ba.DimensionScores[dim]) > 1e-9 {
            t.Errorf("dimension %s not symmetric: %v vs %v",
                dim, ab.DimensionScores[dim], ba.DimensionScores[dim])
        }
    }

    // The appearance dimension averages both directions, so the averaged
    // value is symmetric even though each direction is not.
    if math.Abs(ab.DimensionScores[DimAppearance]-ba.DimensionScores[DimAppearance]) > 1e-9 {
        t.Errorf("averaged appearance dimension not symmetric: %v vs %v",
            ab.DimensionScores[DimAppearance], ba.DimensionScores[DimAppearance])
    }
}

func TestAppearanceDirectionsAreAsymmetric(t *testing.T) {
    engine := newTestEngine(t)

    // A demands maximum attractiveness (req 0) and is minimally attractive;
    // B tolerates anything (req 100) and is maximally attractive.
    a := &UserProfile{
        ID: 1, Gender: GenderMaleStudent,
        AppearancePref: PrefLooksFocused,
        PrimaryPhoto:   &PhotoAttributeSet{Style: 1, Taste: 1, Coordination: 1, FaceDetected: true},
    }
    b := &UserProfile{
        ID: 2, Gender: GenderFemale,
        AppearancePref: PrefCharacterFocused,
        PrimaryPhoto:   &PhotoAttributeSet{Style: 10, Taste: 10, Coordination: 10, FaceDetected: true},
    }

    _, bd, err := engine.score(a, b)
    if err != nil {
        t.Fatal(err)
    }

    // reqA=0 vs attrB=100 and reqB=100 vs attrA=0: both directions at
    // maximal distance, averaged per the quantized-distance contract.
    if bd.distAtoB != 100 {
        t.Errorf("distAtoB = %v, want 100", bd.distAtoB)
    }
    if bd.distBtoA != 100 {
        t.Errorf("distBtoA = %v, want 100", bd.distBtoA)
    }

    // Swap one side's demand: directions now differ, showing the rule is
    // genuinely bidirectional rather than a same-axis distance.
    a.AppearancePref = PrefCharacterFocused // req 100 vs attrB 100 -> dist 0
    _, bd, err = engine.score(a, b)
    if err != nil {
        t.Fatal(err)
    }
    if bd.distAtoB != 0 {
        t.Errorf("distAtoB = %v, want 0", bd.distAtoB)
    }
    if bd.distBtoA != 100 {
        t.Errorf("distBtoA = %v, want 100", bd.distBtoA)
    }
}

func TestScoreEndToEndScenario(t *testing.T) {
    engine := newTestEngine(t)

    a := &UserProfile{
        ID: 1, Gender: GenderMaleStudent,
        Interests:      []string{"sports", "reading", "travel", "movies"},
        Intent:         IntentLongTerm,
        Boundary:       BoundaryModerate,
        AppearancePref: PrefSomewhat,
        PrimaryPhoto:   &PhotoAttributeSet{Style: 7.5, Taste: 8.0, Coordination: 7.8, FaceDetected: true},
    }
    b := &UserProfile{
        ID: 2, Gender: GenderFemale,
        Interests:      []string{"sports", "movies", "music"},
        Intent:         IntentLongTerm,
        Boundary:       BoundaryModerate,
        AppearancePref: PrefCharacterFocused,
        PrimaryPhoto:   &PhotoAttributeSet{Style: 6.5, Taste: 7.0, Coordination: 6.8, FaceDetected: true},
    }

    result, err := engine.Score(a, b)
    if err != nil {
        t.Fatal(err)
    }

    // Interests: Jaccard 2/5 -> 40 raw -> 4.0 weighted.
    if math.Abs(result.DimensionScores[DimInterests]-4.0) > 1e-9 {
        t.Errorf("interests contribution = %v, want 4.0", result.DimensionScores[DimInterests])
    }

    // Intent: identical -> 100 raw -> 40 weighted.
    if math.Abs(result.DimensionScores[DimIntent]-40.0) > 1e-9 {
        t.Errorf("intent contribution = %v, want 40.0", result.DimensionScores[DimIntent])
    }

    // Boundary: identical -> 100 raw -> 10 weighted.
    if math.Abs(result.DimensionScores[DimBoundary]-10.0) > 1e-9 {
        t.Errorf("boundary contribution = %v, want 10.0", result.DimensionScores[DimBoundary])
    }

    // Appearance: composite A=7.8 -> attrA=75.56; composite B=6.8 ->
    // attrB=64.44; reqA=50, reqB=100; directions 85.56/75.56, avg 80.56,
    // weighted 32.22.
    if math.Abs(result.DimensionScores[DimAppearance]-32.2222) > 0.001 {
        t.Errorf("appearance contribution = %v, want ~32.222", result.DimensionScores[DimAppearance])
    }

    if math.Abs(result.TotalScore-86.2222) > 0.001 {
        t.Errorf("total score = %v, want ~86.222", result.TotalScore)
    }
}

func TestInterestSimilarity(t *testing.T) {
    cases := []struct {
        name       string
        a, b       []string
        wantScore  float64
        wantCommon int
    }{
        {"both empty", nil, nil, 0, 0},
        {"one empty", []string{"x"}, nil, 0, 0},
        {"disjoint", []string{"a"}, []string{"b"}, 0, 0},
        {"identical", []string{"a", "b"}, []string{"a", "b"}, 100, 2},
        {"partial", []string{"a", "b", "c", "d"}, []string{"a", "d", "e"}, 40, 2},
        {"duplicates collapse", []string{"a", "a", "b"}, []string{"a"}, 50, 1},
    }

    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            score, common := interestSimilarity(tc.a, tc.b)
            if math.Abs(score-tc.wantScore) > 1e-9 {
                t.Errorf("score = %v, want %v", score, tc.wantScore)
            }
            if len(common) != tc.wantCommon {
                t.Errorf("common = %v, want %d entries", common, tc.wantCommon)
            }
        })
    }
}
