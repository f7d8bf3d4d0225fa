package selection

import (
	"github.com/mschulz/resume-tailor/internal/scoring"
	"github.com/mschulz/resume-tailor/internal/types"
)

// maxBulletsPerBrand caps how many selected bullets may mention the same
// product, so one frequently-mentioned brand cannot dominate the narrative.
const maxBulletsPerBrand = 2

// diverseIndices walks pre-sorted texts in order and returns the indices of
// those selected under the per-brand cap. Texts mentioning no taxonomy brand
// are always eligible; a brand at its cap is skipped, not replaced, and the
// scan continues until maxItems are selected or the list is exhausted.
func diverseIndices(texts []string, maxItems int) []int {
	selected := make([]int, 0, maxItems)
	brandCounts := make(map[string]int)

	for i, text := range texts {
		if len(selected) >= maxItems {
			break
		}
		brand := scoring.MentionedBrand(text)
		if brand != "" && brandCounts[brand] >= maxBulletsPerBrand {
			continue
		}
		if brand != "" {
			brandCounts[brand]++
		}
		selected = append(selected, i)
	}

	return selected
}

// EnsureBrandDiversity selects up to maxBullets from a score-sorted bullet
// list, applying the per-brand cap.
func EnsureBrandDiversity(sorted []types.ScoredAchievement, maxBullets int) []types.ScoredAchievement {
	texts := make([]string, len(sorted))
	for i, a := range sorted {
		texts[i] = a.Text
	}

	indices := diverseIndices(texts, maxBullets)
	result := make([]types.ScoredAchievement, 0, len(indices))
	for _, i := range indices {
		result = append(result, sorted[i])
	}
	return result
}

// capHighlights applies the same per-brand cap to a score-sorted highlight
// list.
func capHighlights(sorted []types.Highlight, maxHighlights int) []types.Highlight {
	texts := make([]string, len(sorted))
	for i, h := range sorted {
		texts[i] = h.Text
	}

	indices := diverseIndices(texts, maxHighlights)
	result := make([]types.Highlight, 0, len(indices))
	for _, i := range indices {
		result = append(result, sorted[i])
	}
	return result
}
