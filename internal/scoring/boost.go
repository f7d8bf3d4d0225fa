package scoring

import "strings"

const (
	// therapeuticAreaBoost is added when a priority therapeutic area matches
	// a brand family mentioned in the text.
	therapeuticAreaBoost = 3.0
	// audienceBoost is added for patient or HCP audience alignment.
	audienceBoost = 2.0
)

// Audience-keyed brand lists for the highlight boost layer. These are
// independent of the taxonomy family split: a brand can serve both lists.
var (
	patientBrands = []string{"tagrisso", "banzel", "lucentis", "tecfidera", "lyrica"}
	hcpBrands     = []string{"kisqali", "brukinsa", "lipitor", "caduet", "viagra"}
)

// HighlightBoost is the second, independent boost layer used when ranking
// achievements across the entire career. Boosts are additive and larger than
// the per-role boost in EnhancedScore because highlights compete globally.
func HighlightBoost(text string, priorityTags []string) float64 {
	lower := strings.ToLower(text)
	boost := 0.0

	if HasTag(priorityTags, "oncology") && containsAny(lower, familyBrands("oncology")) {
		boost += therapeuticAreaBoost
	}
	if (HasTag(priorityTags, "cardio") || HasTag(priorityTags, "cardiovascular")) &&
		containsAny(lower, familyBrands("cardio")) {
		boost += therapeuticAreaBoost
	}
	if HasTag(priorityTags, "hiv") || HasTag(priorityTags, "rare_disease") || HasTag(priorityTags, "mens_health") {
		// Free-text "hiv" counts alongside the named brands.
		if containsAny(lower, familyBrands("hiv")) || containsAny(lower, familyBrands("rare_disease")) ||
			containsAny(lower, familyBrands("mens_health")) || strings.Contains(lower, "hiv") {
			boost += therapeuticAreaBoost
		}
	}
	if HasTag(priorityTags, "patient") && containsAny(lower, patientBrands) {
		boost += audienceBoost
	}
	if HasTag(priorityTags, "hcp") && containsAny(lower, hcpBrands) {
		boost += audienceBoost
	}

	return boost
}
