package match

import (
    "fmt"
    "strings"
)

const (
    maxReasons         = 3
    maxNamedInterests  = 3
    closeDistance      = 50.0
    satisfiedThreshold = 25.0
)

// Preference labels used in reason strings.
var appearancePrefLabels = map[AppearancePreference]string{
    PrefLooksFocused:     "looks-focused",
    PrefSomewhat:         "somewhat looks-focused",
    PrefCharacterFocused: "character-focused",
}

var intentLabels = map[RelationshipIntent]string{
    IntentShortTerm: "short-term partner",
    IntentLongTerm:  "long-term soulmate",
    IntentDestined:  "destined marriage",
}

// buildReasons derives up to three human-readable justifications from the
// scorer's own intermediates. Rule order is significant: it decides which
// reasons survive truncation.
func (e *Engine) buildReasons(bd *breakdown, a, b *UserProfile) []string {
    reasons := make([]string, 0, maxReasons+1)

    if len(bd.commonInterests) > 0 {
        names := bd.commonInterests
        if len(names) > maxNamedInterests {
            names = names[:maxNamedInterests]
        }
        reasons = append(reasons, "common interests: "+strings.Join(names, ", "))
    }

    if a.Intent != "" && b.Intent != "" {
        if a.Intent == b.Intent {
            reasons = append(reasons, "relationship expectations aligned: "+intentLabel(a.Intent))
        } else if bd.intentDistance <= closeDistance {
            reasons = append(reasons, "relationship expectations close")
        }
    }

    if a.AppearancePref != "" && bd.distAtoB <= satisfiedThreshold {
        reasons = append(reasons, appearanceReason(a.AppearancePref))
    }
    if b.AppearancePref != "" && bd.distBtoA <= satisfiedThreshold {
        reasons = append(reasons, appearanceReason(b.AppearancePref))
    }

    if len(reasons) > maxReasons {
        reasons = reasons[:maxReasons]
    }
    return reasons
}

func appearanceReason(pref AppearancePreference) string {
    return fmt.Sprintf("appearance match: %s expectation is met", prefLabel(pref))
}

func prefLabel(pref AppearancePreference) string {
    if label, ok := appearancePrefLabels[pref]; ok {
        return label
    }
    return string(pref)
}

func intentLabel(intent RelationshipIntent) string {
    if label, ok := intentLabels[intent]; ok {
        return label
    }
    return string(intent)
}
