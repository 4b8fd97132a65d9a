package match

import (
    "strings"
    "testing"
)

func TestReasonsCommonInterests(t *testing.T) {
    engine := newTestEngine(t)

    a := &UserProfile{
        ID: 1, Gender: GenderMaleStudent,
        Interests: []string{"sports", "reading", "travel", "movies"},
    }
    b := &UserProfile{
        ID: 2, Gender: GenderFemale,
        Interests: []string{"sports", "reading", "travel", "movies"},
    }

    result, err := engine.Score(a, b)
    if err != nil {
        t.Fatal(err)
    }

    if len(result.Reasons) == 0 {
        t.Fatal("expected at least one reason")
    }
    first := result.Reasons[0]
    if !strings.HasPrefix(first, "common interests: ") {
        t.Errorf("first reason = %q, want common interests", first)
    }
    // At most 3 names, in A's order.
    if !strings.Contains(first, "sports, reading, travel") || strings.Contains(first, "movies") {
        t.Errorf("reason should name first 3 shared interests only, got %q", first)
    }
}

func TestReasonsIntentAlignment(t *testing.T) {
    engine := newTestEngine(t)

    a := &UserProfile{ID: 1, Gender: GenderMaleStudent, Intent: IntentLongTerm}
    b := &UserProfile{ID: 2, Gender: GenderFemale, Intent: IntentLongTerm}

    result, err := engine.Score(a, b)
    if err != nil {
        t.Fatal(err)
    }

    found := false
    for _, reason := range result.Reasons {
        if reason == "relationship expectations aligned: long-term soulmate" {
            found = true
        }
    }
    if !found {
        t.Errorf("expected aligned-intent reason, got %v", result.Reasons)
    }

    // Adjacent values (distance 50) produce the weaker "close" reason.
    b.Intent = IntentDestined
    result, err = engine.Score(a, b)
    if err != nil {
        t.Fatal(err)
    }
    found = false
    for _, reason := range result.Reasons {
        if reason == "relationship expectations close" {
            found = true
        }
    }
    if !found {
        t.Errorf("expected close-intent reason, got %v", result.Reasons)
    }

    // Opposite ends (distance 100) produce no intent reason.
    a.Intent, b.Intent = IntentShortTerm, IntentDestined
    result, err = engine.Score(a, b)
    if err != nil {
        t.Fatal(err)
    }
    for _, reason := range result.Reasons {
        if strings.Contains(reason, "relationship expectations") {
            t.Errorf("unexpected intent reason %q for opposite intents", reason)
        }
    }

    // Unset intent on either side produces no intent reason.
    a.Intent, b.Intent = "", IntentLongTerm
    result, err = engine.Score(a, b)
    if err != nil {
        t.Fatal(err)
    }
    for _, reason := range result.Reasons {
        if strings.Contains(reason, "relationship expectations") {
            t.Errorf("unexpected intent reason %q with unset intent", reason)
        }
    }
}

func TestReasonsAppearanceSatisfaction(t *testing.T) {
    engine := newTestEngine(t)

    // A has a mid demand (req 50); B's composite 5.5 maps to exactly 50, so
    // A's expectation is met (distance 0). B has no stated preference, so no
    // reason is generated for B's direction.
    a := &UserProfile{
        ID: 1, Gender: GenderMaleStudent,
        AppearancePref: PrefSomewhat,
    }
    b := &UserProfile{
        ID: 2, Gender: GenderFemale,
        PrimaryPhoto: &PhotoAttributeSet{Style: 5.5, Taste: 5.5, Coordination: 5.5, FaceDetected: true},
    }

    result, err := engine.Score(a, b)
    if err != nil {
        t.Fatal(err)
    }

    want := "appearance match: somewhat looks-focused expectation is met"
    found := false
    for _, reason := range result.Reasons {
        if reason == want {
            found = true
        }
    }
    if !found {
        t.Errorf("expected %q, got %v", want, result.Reasons)
    }
}

func TestReasonsCappedAtThreeInRuleOrder(t *testing.T) {
    engine := newTestEngine(t)

    // All four rules fire: common interests, aligned intent, both
    // appearance directions satisfied (both demand mid, both observed mid).
    midPhoto := &PhotoAttributeSet{Style: 5.5, Taste: 5.5, Coordination: 5.5, FaceDetected: true}
    a := &UserProfile{
        ID: 1, Gender: GenderMaleStudent,
        Interests:      []string{"sports"},
        Intent:         IntentLongTerm,
        AppearancePref: PrefSomewhat,
        PrimaryPhoto:   midPhoto,
    }
    b := &UserProfile{
        ID: 2, Gender: GenderFemale,
        Interests:      []string{"sports"},
        Intent:         IntentLongTerm,
        AppearancePref: PrefSomewhat,
        PrimaryPhoto:   midPhoto,
    }

    result, err := engine.Score(a, b)
    if err != nil {
        t.Fatal(err)
    }

    if len(result.Reasons) != 3 {
        t.Fatalf("expected exactly 3 reasons, got %d: %v", len(result.Reasons), result.Reasons)
    }
    if !strings.HasPrefix(result.Reasons[0], "common interests") {
        t.Errorf("rule order violated, first reason %q", result.Reasons[0])
    }
    if !strings.HasPrefix(result.Reasons[1], "relationship expectations aligned") {
        t.Errorf("rule order violated, second reason %q", result.Reasons[1])
    }
    if !strings.HasPrefix(result.Reasons[2], "appearance match") {
        t.Errorf("rule order violated, third reason %q", result.Reasons[2])
    }
}
