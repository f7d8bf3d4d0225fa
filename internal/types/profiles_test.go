package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfileSet() *ProfileSet {
	return &ProfileSet{
		Profiles: []Profile{
			{ID: "oncology_marketing", Label: "Oncology Marketing", PriorityTags: []string{"oncology"}},
			{ID: "brand_management", Label: "Brand Management", PriorityTags: []string{"brand"}},
		},
		CustomOptions: []CheckboxOption{
			{ID: "oncology", Label: "Oncology", Category: "therapeutic_area", Tags: []string{"oncology", "hcp"}},
			{ID: "ai", Label: "AI & Innovation", Category: "interest_area", Tags: []string{"ai", "innovation"}},
			{ID: "hcp", Label: "HCP Engagement", Category: "interest_area", Tags: []string{"hcp"}},
		},
	}
}

func TestProfileValidate(t *testing.T) {
	valid := Profile{ID: "oncology_marketing", PriorityTags: []string{"oncology"}}
	assert.NoError(t, valid.Validate())

	missingID := Profile{PriorityTags: []string{"oncology"}}
	assert.Error(t, missingID.Validate())

	missingTags := Profile{ID: "oncology_marketing"}
	assert.Error(t, missingTags.Validate())

	emptyTags := Profile{ID: "oncology_marketing", PriorityTags: []string{}}
	assert.Error(t, emptyTags.Validate())
}

func TestCustomProfileValidate(t *testing.T) {
	assert.NoError(t, (&CustomProfile{PriorityTags: []string{"ai"}}).Validate())
	assert.Error(t, (&CustomProfile{}).Validate())
	assert.Error(t, (&CustomProfile{PriorityTags: []string{}}).Validate())
}

func TestFindProfile(t *testing.T) {
	ps := testProfileSet()

	profile := ps.FindProfile("brand_management")
	require.NotNil(t, profile)
	assert.Equal(t, "Brand Management", profile.Label)

	assert.Nil(t, ps.FindProfile("nonexistent"))
}

func TestResolveSelection_UnionAndCounts(t *testing.T) {
	ps := testProfileSet()

	profile := ps.ResolveSelection([]string{"oncology", "ai", "hcp"})

	// "hcp" appears in two options but only once in the union.
	assert.Equal(t, []string{"oncology", "hcp", "ai", "innovation"}, profile.PriorityTags)
	require.Len(t, profile.SelectedCheckboxes, 3)
	assert.Equal(t, "Oncology", profile.SelectedCheckboxes[0].Label)
	assert.Equal(t, map[string]int{"therapeutic_area": 1, "interest_area": 2}, profile.SelectedCategories)
	assert.NoError(t, profile.Validate())
}

func TestResolveSelection_SkipsUnknownIDs(t *testing.T) {
	ps := testProfileSet()

	profile := ps.ResolveSelection([]string{"oncology", "made_up"})
	assert.Equal(t, []string{"oncology", "hcp"}, profile.PriorityTags)
	assert.Len(t, profile.SelectedCheckboxes, 1)
}

func TestResolveSelection_EmptySelection(t *testing.T) {
	profile := testProfileSet().ResolveSelection(nil)

	assert.Empty(t, profile.PriorityTags)
	assert.Empty(t, profile.SelectedCheckboxes)
	// An empty selection cannot drive scoring.
	assert.Error(t, profile.Validate())
}

func TestPositionCount(t *testing.T) {
	dataset := &ResumeDataset{
		Experience: []Employer{
			{Company: "A", Positions: []Position{{Title: "x"}, {Title: "y"}}},
			{Company: "B", Positions: []Position{{Title: "z"}}},
		},
	}
	assert.Equal(t, 3, dataset.PositionCount())

	assert.Equal(t, 0, (&ResumeDataset{}).PositionCount())
}
