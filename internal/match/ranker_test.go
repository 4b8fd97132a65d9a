package match

import (
    "testing"
)

func maleProfile(id int64) *UserProfile {
    return &UserProfile{ID: id, Gender: GenderMaleStudent, Intent: IntentLongTerm}
}

func femaleProfile(id int64) *UserProfile {
    return &UserProfile{ID: id, Gender: GenderFemale, Intent: IntentLongTerm}
}

func TestRankEligibilityGate(t *testing.T) {
    engine := newTestEngine(t)

    subject := maleProfile(1)
    candidates := []*UserProfile{
        femaleProfile(2),
        maleProfile(3), // same gender, must be excluded
        femaleProfile(4),
        {ID: 5, Gender: "unknown"}, // unrecognized, must be excluded
        nil,                        // defensive
    }

    results := engine.Rank(subject, candidates, RankOptions{TopN: 10})

    if len(results) != 2 {
        t.Fatalf("expected 2 eligible candidates, got %d", len(results))
    }
    for _, r := range results {
        if r.UserID != 2 && r.UserID != 4 {
            t.Errorf("unexpected candidate %d in results", r.UserID)
        }
    }
}

func TestRankFailsSafeOnUnknownSubjectGender(t *testing.T) {
    engine := newTestEngine(t)

    cases := []*UserProfile{
        {ID: 1, Gender: ""},
        {ID: 1, Gender: "nonbinary_unmapped"},
        nil,
    }
    candidates := []*UserProfile{femaleProfile(2), maleProfile(3)}

    for _, subject := range cases {
        results := engine.Rank(subject, candidates, RankOptions{TopN: 10})
        if len(results) != 0 {
            t.Errorf("subject %+v: expected empty result, got %d entries", subject, len(results))
        }
        if results == nil {
            t.Errorf("subject %+v: expected empty slice, got nil", subject)
        }
    }
}

func TestRankSortsDescendingWithStableTies(t *testing.T) {
    engine := newTestEngine(t)

    subject := maleProfile(1)
    subject.Interests = []string{"sports", "music"}

    // Candidate 10 shares no interests; 20 and 30 are identical profiles
    // (equal scores) and must keep input order; 40 shares both interests.
    c10 := femaleProfile(10)
    c20 := femaleProfile(20)
    c30 := femaleProfile(30)
    c40 := femaleProfile(40)
    c20.Interests = []string{"sports"}
    c30.Interests = []string{"sports"}
    c40.Interests = []string{"sports", "music"}

    results := engine.Rank(subject, []*UserProfile{c10, c20, c30, c40}, RankOptions{TopN: 10})

    if len(results) != 4 {
        t.Fatalf("expected 4 results, got %d", len(results))
    }

    if results[0].UserID != 40 {
        t.Errorf("expected candidate 40 first, got %d", results[0].UserID)
    }
    if results[1].UserID != 20 || results[2].UserID != 30 {
        t.Errorf("equal scores must preserve input order, got %d then %d",
            results[1].UserID, results[2].UserID)
    }
    if results[3].UserID != 10 {
        t.Errorf("expected candidate 10 last, got %d", results[3].UserID)
    }

    for i := 1; i < len(results); i++ {
        if results[i].TotalScore > results[i-1].TotalScore {
            t.Errorf("results not sorted descending at %d", i)
        }
    }
}

func TestRankAppliesTopNAndMinScore(t *testing.T) {
    engine := newTestEngine(t)

    subject := maleProfile(1)
    var candidates []*UserProfile
    for i := int64(2); i <= 8; i++ {
        candidates = append(candidates, femaleProfile(i*10))
    }

    results := engine.Rank(subject, candidates, RankOptions{TopN: 3})
    if len(results) != 3 {
        t.Errorf("TopN=3: got %d results", len(results))
    }

    // All identical profiles score the same; a threshold above that score
    // filters everything.
    all := engine.Rank(subject, candidates, RankOptions{TopN: 10})
    if len(all) == 0 {
        t.Fatal("expected results")
    }
    threshold := all[0].TotalScore + 1

    filtered := engine.Rank(subject, candidates, RankOptions{TopN: 10, MinScore: threshold})
    if len(filtered) != 0 {
        t.Errorf("MinScore above every score: got %d results", len(filtered))
    }
}

func TestRankDefaultsTopN(t *testing.T) {
    engine := newTestEngine(t)

    subject := maleProfile(1)
    var candidates []*UserProfile
    for i := int64(0); i < 25; i++ {
        candidates = append(candidates, femaleProfile(100+i))
    }

    results := engine.Rank(subject, candidates, RankOptions{})
    if len(results) != defaultTopN {
        t.Errorf("expected default top %d, got %d", defaultTopN, len(results))
    }
}
