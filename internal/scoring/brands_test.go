package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMentionedBrand_FirstTaxonomyMatchWins(t *testing.T) {
	// Oncology precedes cardio in the taxonomy.
	assert.Equal(t, "tagrisso", MentionedBrand("Scaled Lipitor and Tagrisso programs"))
	assert.Equal(t, "lipitor", MentionedBrand("Relaunched Lipitor DTC campaign"))
}

func TestMentionedBrand_CaseInsensitive(t *testing.T) {
	assert.Equal(t, "kisqali", MentionedBrand("KISQALI HCP portal redesign"))
	assert.Equal(t, "viagra", MentionedBrand("viagra brand refresh"))
}

func TestMentionedBrand_NoMention(t *testing.T) {
	assert.Equal(t, "", MentionedBrand("Built the annual media plan"))
	assert.Equal(t, "", MentionedBrand(""))
}

func TestHighlightBoost_TherapeuticAreaAlignment(t *testing.T) {
	text := "Launched Tagrisso patient activation campaign"

	assert.Equal(t, 3.0, HighlightBoost(text, []string{"oncology"}))
	assert.Equal(t, 0.0, HighlightBoost(text, []string{"cardio"}))
}

func TestHighlightBoost_CardioAcceptsBothTagSpellings(t *testing.T) {
	text := "Grew Lipitor share of voice"

	assert.Equal(t, 3.0, HighlightBoost(text, []string{"cardio"}))
	assert.Equal(t, 3.0, HighlightBoost(text, []string{"cardiovascular"}))
}

func TestHighlightBoost_FreeTextHIVCounts(t *testing.T) {
	// No taxonomy brand named, but the disease itself is.
	text := "Directed HIV prevention awareness initiative"

	assert.Equal(t, 3.0, HighlightBoost(text, []string{"hiv"}))
	assert.Equal(t, 3.0, HighlightBoost(text, []string{"rare_disease"}))
}

func TestHighlightBoost_AudienceBoostsStack(t *testing.T) {
	// Tagrisso is a patient brand, Kisqali an HCP brand; oncology covers both.
	text := "Coordinated Tagrisso patient services with Kisqali HCP outreach"

	boost := HighlightBoost(text, []string{"oncology", "patient", "hcp"})
	assert.Equal(t, 7.0, boost)
}

func TestHighlightBoost_NoPriorityAlignment(t *testing.T) {
	assert.Equal(t, 0.0, HighlightBoost("Managed Banzel caregiver program", nil))
	assert.Equal(t, 0.0, HighlightBoost("Managed Banzel caregiver program", []string{"analytics"}))
}
