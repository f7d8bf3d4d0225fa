// Package scoring provides tag-overlap relevance scoring for achievement
// items, plus the brand-awareness heuristics layered on top of it.
package scoring

import (
	"regexp"

	"github.com/mschulz/resume-tailor/internal/types"
)

const (
	// brandMentionBoost is added once when a text names any taxonomy brand.
	brandMentionBoost = 2.0
	// quantifiedImpactBoost is added when a text shows a measurable outcome.
	quantifiedImpactBoost = 0.5
)

// quantifiedImpact matches quantified outcomes: a percentage, a dollar
// amount, a multiplier, or an outcome verb.
var quantifiedImpact = regexp.MustCompile(`(?i)(\d+(\.\d+)?\s*%|\$[\d][\d,.]*[KMB]?|\b\d+(x|\+)|\b(reduced|increased|grew|saved)\b)`)

// Score returns the count of itemTags that appear in priorityTags. Absent or
// empty tags score zero. This is the sole signal for "has any match" and
// must be used identically wherever that decision is made.
func Score(itemTags, priorityTags []string) int {
	if len(itemTags) == 0 || len(priorityTags) == 0 {
		return 0
	}

	prioritySet := make(map[string]bool, len(priorityTags))
	for _, tag := range priorityTags {
		prioritySet[tag] = true
	}

	count := 0
	for _, tag := range itemTags {
		if prioritySet[tag] {
			count++
		}
	}
	return count
}

// EnhancedScore ranks an achievement item for the executive format. Items
// with no tag overlap always score zero. Otherwise the base tag count is
// boosted for brand specificity and quantified impact, which separates
// concrete bullets from generic ones that share the same tags.
func EnhancedScore(item types.AchievementItem, priorityTags []string) float64 {
	base := Score(item.Tags, priorityTags)
	if base == 0 {
		return 0
	}

	score := float64(base)
	if MentionedBrand(item.Text) != "" {
		score += brandMentionBoost
	}
	if quantifiedImpact.MatchString(item.Text) {
		score += quantifiedImpactBoost
	}
	return score
}

// HasTag reports whether tag is present in tags.
func HasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
