package selection

import (
	"regexp"
	"sort"
	"strings"

	"github.com/mschulz/resume-tailor/internal/scoring"
	"github.com/mschulz/resume-tailor/internal/types"
)

// nearDuplicateThreshold is the word-set Jaccard similarity at or above
// which a candidate highlight is considered a near-duplicate of an accepted
// one and dropped.
const nearDuplicateThreshold = 0.7

var whitespaceRun = regexp.MustCompile(`\s+`)

// TopAchievements ranks achievements across the entire career for the
// targeted-highlights section. Only tag-matched achievements compete; the
// highlight boost layer rewards therapeutic-area and audience alignment.
// Exact duplicates and near-duplicates of already-accepted highlights are
// dropped before ranking, then the survivors are score-sorted and
// brand-diversity-capped to maxHighlights.
func (e *Engine) TopAchievements(priorityTags []string, maxHighlights int) []types.Highlight {
	var candidates []types.Highlight
	seen := make(map[string]bool)
	var acceptedWords []map[string]bool

	for _, emp := range e.dataset.Experience {
		for _, position := range emp.Positions {
			for _, group := range position.AchievementGroups {
				for _, item := range group.Items {
					base := scoring.Score(item.Tags, priorityTags)
					if base == 0 {
						continue
					}

					norm := normalizeText(item.Text)
					if norm == "" || seen[norm] {
						continue
					}

					words := wordSet(norm)
					if isNearDuplicate(words, acceptedWords) {
						continue
					}

					seen[norm] = true
					acceptedWords = append(acceptedWords, words)
					candidates = append(candidates, types.Highlight{
						ScoredAchievement: types.ScoredAchievement{
							Text:      item.Text,
							Tags:      item.Tags,
							Category:  group.Category,
							Score:     float64(base) + scoring.HighlightBoost(item.Text, priorityTags),
							BaseScore: base,
						},
						Company: emp.Company,
						Title:   position.Title,
					})
				}
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return capHighlights(candidates, maxHighlights)
}

// normalizeText lowercases and collapses whitespace for duplicate checks.
func normalizeText(text string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(strings.ToLower(text)), " ")
}

// wordSet returns the set of words in a normalized text.
func wordSet(norm string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(norm) {
		words[w] = true
	}
	return words
}

// isNearDuplicate reports whether the candidate word set meets the Jaccard
// threshold against any accepted highlight.
func isNearDuplicate(candidate map[string]bool, accepted []map[string]bool) bool {
	for _, other := range accepted {
		if jaccard(candidate, other) >= nearDuplicateThreshold {
			return true
		}
	}
	return false
}

// jaccard is intersection size over union size of two word sets.
func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	intersection := 0
	for w := range a {
		if b[w] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
