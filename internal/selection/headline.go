package selection

import (
	"fmt"
	"strings"

	"github.com/mschulz/resume-tailor/internal/types"
)

// therapeuticAreaIDs are the checkbox ids whose label is prepended to a
// dynamic headline.
var therapeuticAreaIDs = map[string]bool{
	"oncology":    true,
	"cardio":      true,
	"hiv":         true,
	"mens_health": true,
}

// headlineRule maps an interest-area checkbox id to its fixed headline
// phrase. Rules fire in priority order; the first selected id wins.
type headlineRule struct {
	ID     string
	Phrase string
}

var headlineRules = []headlineRule{
	{ID: "ai", Phrase: "AI-Driven Marketing Leader"},
	{ID: "cx", Phrase: "Customer Experience Strategist"},
	{ID: "omnichannel", Phrase: "Omnichannel Marketing Leader"},
	{ID: "brand", Phrase: "Brand Marketing Leader"},
	{ID: "strategy", Phrase: "Strategic Marketing Leader"},
	{ID: "hcp", Phrase: "HCP Engagement Leader"},
	{ID: "media", Phrase: "Media Strategy Leader"},
}

const (
	// leadershipCategory is the checkbox category that alone justifies a
	// leadership headline when no interest-area rule fires.
	leadershipCategory = "leadership"
	leadershipPhrase   = "Marketing Leader"
)

// GenerateDynamicHeadline derives a short title for a custom profile from
// the selected checkboxes: an optional therapeutic-area prefix, then the
// first matching phrase from the rule table, with a leadership-category
// fallback and finally the top two remaining labels plus "Specialist". A
// word-level dedup pass removes repeated words so phrasing like
// "Strategy Strategy Leader" cannot occur.
func GenerateDynamicHeadline(checkboxes []types.Checkbox, categories map[string]int) string {
	used := make(map[string]bool)
	var parts []string

	for _, cb := range checkboxes {
		if therapeuticAreaIDs[cb.ID] {
			parts = append(parts, cb.Label)
			used[cb.ID] = true
			break
		}
	}

	selected := make(map[string]bool, len(checkboxes))
	for _, cb := range checkboxes {
		selected[cb.ID] = true
	}

	phrase := ""
	for _, rule := range headlineRules {
		if selected[rule.ID] {
			phrase = rule.Phrase
			used[rule.ID] = true
			break
		}
	}
	if phrase == "" && categories[leadershipCategory] > 0 {
		phrase = leadershipPhrase
	}
	if phrase == "" {
		var rest []string
		for _, cb := range checkboxes {
			if used[cb.ID] {
				continue
			}
			rest = append(rest, cb.Label)
			if len(rest) == 2 {
				break
			}
		}
		phrase = strings.Join(append(rest, "Specialist"), " ")
	}

	parts = append(parts, phrase)
	return dedupeWords(strings.Join(parts, " "))
}

// GenerateDynamicTagline joins the selected checkbox labels into a sentence.
// Up to three labels are listed in full; beyond that the first two and the
// last are kept and the middle ones dropped.
func GenerateDynamicTagline(checkboxes []types.Checkbox) string {
	labels := make([]string, 0, len(checkboxes))
	for _, cb := range checkboxes {
		if cb.Label != "" {
			labels = append(labels, cb.Label)
		}
	}

	if len(labels) == 0 {
		return "Marketing leader with a tailored area of focus."
	}
	return fmt.Sprintf("Marketing leader specializing in %s.", joinLabels(labels))
}

// joinLabels renders a label list as natural-language enumeration.
func joinLabels(labels []string) string {
	switch len(labels) {
	case 1:
		return labels[0]
	case 2:
		return labels[0] + " and " + labels[1]
	case 3:
		return labels[0] + ", " + labels[1] + ", and " + labels[2]
	default:
		return labels[0] + ", " + labels[1] + ", and " + labels[len(labels)-1]
	}
}

// dedupeWords keeps the first occurrence of each word (case-insensitive),
// dropping later repeats.
func dedupeWords(s string) string {
	seen := make(map[string]bool)
	var kept []string
	for _, word := range strings.Fields(s) {
		key := strings.ToLower(word)
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, word)
	}
	return strings.Join(kept, " ")
}
