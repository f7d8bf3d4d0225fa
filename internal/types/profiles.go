package types

import (
	"github.com/go-playground/validator/v10"
)

// ProfileSet is the profile configuration document: the named role-targeted
// profiles, the shared filtering rules, and the checkbox catalog used to
// assemble custom profiles.
type ProfileSet struct {
	Profiles       []Profile        `json:"profiles"`
	FilteringRules FilteringRules   `json:"filtering_rules,omitempty"`
	CustomOptions  []CheckboxOption `json:"custom_options,omitempty"`
}

// Profile is a role-targeted emphasis configuration. PriorityTags drive all
// relevance scoring.
type Profile struct {
	ID           string   `json:"id" validate:"required"`
	Label        string   `json:"label"`
	Headline     string   `json:"headline"`
	Tagline      string   `json:"tagline"`
	Description  string   `json:"description,omitempty"`
	Competencies []string `json:"competencies,omitempty"`
	FocusSkills  []string `json:"focus_skills,omitempty"`
	PriorityTags []string `json:"priority_tags" validate:"required,min=1"`
	IdealFor     []string `json:"ideal_for,omitempty"`
}

// FilteringRules holds the caps shared by all profiles. Zero values mean
// "use engine defaults". MaxRolesShown is parsed for document compatibility
// but the engine never drops positions.
type FilteringRules struct {
	MaxBulletsPerRole int `json:"max_bullets_per_role,omitempty"`
	MaxProjectsShown  int `json:"max_projects_shown,omitempty"`
	MaxRolesShown     int `json:"max_roles_shown,omitempty"`
}

// Checkbox is one user-selected option in a custom profile, carrying only
// what headline/tagline generation needs.
type Checkbox struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// CheckboxOption is the configuration for one selectable checkbox: which
// category it belongs to and which priority tags it contributes. This mapping
// is external configuration, not engine logic.
type CheckboxOption struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags"`
}

// CustomProfile is a profile synthesized at runtime from checkbox selections
// rather than loaded from the profile set. Headline and tagline are derived
// by the engine, never stored.
type CustomProfile struct {
	PriorityTags       []string       `json:"priority_tags" validate:"required,min=1"`
	SelectedCheckboxes []Checkbox     `json:"selected_checkboxes"`
	SelectedCategories map[string]int `json:"selected_categories,omitempty"`
}

// CustomProfileID is the fixed profile id assigned to synthesized custom
// profiles.
const CustomProfileID = "custom"

var validate = validator.New()

// Validate checks that the profile carries the fields scoring depends on.
func (p *Profile) Validate() error {
	return validate.Struct(p)
}

// Validate checks that the custom profile carries priority tags.
func (p *CustomProfile) Validate() error {
	return validate.Struct(p)
}

// FindProfile returns the profile with the given id, or nil if absent.
func (ps *ProfileSet) FindProfile(id string) *Profile {
	for i := range ps.Profiles {
		if ps.Profiles[i].ID == id {
			return &ps.Profiles[i]
		}
	}
	return nil
}

// ResolveSelection maps selected checkbox ids to a CustomProfile: the union
// of each option's configured tags, the checkbox id/label pairs, and a
// per-category selection count. Unknown ids are skipped.
func (ps *ProfileSet) ResolveSelection(ids []string) *CustomProfile {
	optionsByID := make(map[string]*CheckboxOption, len(ps.CustomOptions))
	for i := range ps.CustomOptions {
		optionsByID[ps.CustomOptions[i].ID] = &ps.CustomOptions[i]
	}

	profile := &CustomProfile{
		SelectedCategories: make(map[string]int),
	}
	seenTags := make(map[string]bool)

	for _, id := range ids {
		opt, found := optionsByID[id]
		if !found {
			continue
		}

		profile.SelectedCheckboxes = append(profile.SelectedCheckboxes, Checkbox{
			ID:    opt.ID,
			Label: opt.Label,
		})
		if opt.Category != "" {
			profile.SelectedCategories[opt.Category]++
		}
		for _, tag := range opt.Tags {
			if !seenTags[tag] {
				seenTags[tag] = true
				profile.PriorityTags = append(profile.PriorityTags, tag)
			}
		}
	}

	return profile
}
