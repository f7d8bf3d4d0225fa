// Package selection implements the scoring, filtering, and diversity-capped
// selection engine that turns a resume dataset and a profile into a tailored
// resume view.
package selection

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/mschulz/resume-tailor/internal/scoring"
	"github.com/mschulz/resume-tailor/internal/types"
)

// FormatMode selects between the two historical output formats. Compact uses
// plain tag-overlap ranking and per-category skill filtering; executive adds
// brand/impact boosts, diversity capping, cross-position highlights, and a
// full skills view.
type FormatMode int

const (
	// FormatCompact is the condensed single-page format.
	FormatCompact FormatMode = iota
	// FormatExecutive is the long-form executive format.
	FormatExecutive
)

// ParseFormatMode converts a config/flag string to a FormatMode.
func ParseFormatMode(s string) (FormatMode, error) {
	switch s {
	case "", "executive":
		return FormatExecutive, nil
	case "compact":
		return FormatCompact, nil
	default:
		return FormatExecutive, fmt.Errorf("unknown format mode %q (want compact or executive)", s)
	}
}

func (m FormatMode) String() string {
	if m == FormatCompact {
		return "compact"
	}
	return "executive"
}

const (
	// defaultMaxBulletsPerRole caps bullets per position when the profile
	// set supplies no filtering rules.
	defaultMaxBulletsPerRole = 5
	// defaultMaxProjects caps the projects section.
	defaultMaxProjects = 4
	// defaultFallbackBullets is how many length-ranked bullets an off-target
	// position shows in executive mode, so career continuity is preserved.
	defaultFallbackBullets = 3
	// defaultMaxHighlights caps the targeted-highlights section.
	defaultMaxHighlights = 5
)

// Engine computes tailored resume views. The dataset and profile set are
// immutable inputs; every generation request is an independent, pure
// computation, so concurrent calls are safe.
type Engine struct {
	dataset    *types.ResumeDataset
	profileSet *types.ProfileSet
	mode       FormatMode
}

// New creates an engine over an already-loaded dataset and profile set.
func New(dataset *types.ResumeDataset, profileSet *types.ProfileSet, mode FormatMode) *Engine {
	return &Engine{
		dataset:    dataset,
		profileSet: profileSet,
		mode:       mode,
	}
}

// Profiles returns the stored profiles in document order.
func (e *Engine) Profiles() []types.Profile {
	return e.profileSet.Profiles
}

// ProfileSet returns the engine's profile configuration document.
func (e *Engine) ProfileSet() *types.ProfileSet {
	return e.profileSet
}

// Generate builds the tailored resume for a stored profile id.
func (e *Engine) Generate(profileID string) (*types.TailoredResume, error) {
	profile := e.profileSet.FindProfile(profileID)
	if profile == nil {
		return nil, &ProfileNotFoundError{ProfileID: profileID}
	}

	view := types.ProfileView{
		ID:           profile.ID,
		Label:        profile.Label,
		Headline:     profile.Headline,
		Tagline:      profile.Tagline,
		Description:  profile.Description,
		Competencies: profile.Competencies,
		FocusSkills:  profile.FocusSkills,
	}

	return e.build(view, profile.PriorityTags), nil
}

// GenerateCustom builds the tailored resume for a profile synthesized from
// checkbox selections. Headline and tagline are derived, not stored.
func (e *Engine) GenerateCustom(custom *types.CustomProfile) (*types.TailoredResume, error) {
	if custom == nil {
		return nil, &InvalidProfileError{Message: "custom profile is nil"}
	}
	if err := custom.Validate(); err != nil {
		return nil, &InvalidProfileError{Message: "missing priority_tags", Cause: err}
	}

	view := types.ProfileView{
		ID:       types.CustomProfileID,
		Label:    "Custom Selection",
		Headline: GenerateDynamicHeadline(custom.SelectedCheckboxes, custom.SelectedCategories),
		Tagline:  GenerateDynamicTagline(custom.SelectedCheckboxes),
		IsCustom: true,
	}

	return e.build(view, custom.PriorityTags), nil
}

// build runs the full selection pipeline for a resolved profile view.
func (e *Engine) build(view types.ProfileView, priorityTags []string) *types.TailoredResume {
	maxBullets := e.maxBulletsPerRole()
	fallbackBullets := defaultFallbackBullets
	if e.mode == FormatCompact {
		// The compact format fills off-target roles up to the same cap.
		fallbackBullets = maxBullets
	}

	experience := e.FilterExperience(priorityTags, maxBullets, fallbackBullets)
	projects := e.FilterProjects(priorityTags, e.maxProjects())
	skills := e.Skills(priorityTags)

	var highlights []types.Highlight
	if e.mode == FormatExecutive || view.IsCustom {
		highlights = e.TopAchievements(priorityTags, defaultMaxHighlights)
	}

	totalShown := 0
	for _, entry := range experience {
		totalShown += len(entry.Bullets)
	}

	return &types.TailoredResume{
		Profile:          view,
		Personal:         e.dataset.Personal,
		Summary:          e.dataset.Summary,
		Experience:       experience,
		Projects:         projects,
		Skills:           skills,
		CoreCompetencies: e.dataset.Skills.CoreCompetencies,
		TopHighlights:    highlights,
		Education:        e.dataset.Education,
		Languages:        e.dataset.Languages,
		Stats: types.Stats{
			ExperienceCount: len(experience),
			ProjectCount:    len(projects),
			TotalBullets:    totalShown,
			MatchRate:       matchRate(experience),
		},
	}
}

// FilterExperience emits exactly one entry per position, in dataset order.
// Positions with tag matches get their matching bullets ranked and capped;
// positions without any get fallbackBullets length-ranked bullets so no role
// ever disappears from the career narrative.
func (e *Engine) FilterExperience(priorityTags []string, maxBulletsPerRole, fallbackBullets int) []types.PositionEntry {
	entries := make([]types.PositionEntry, 0, e.dataset.PositionCount())

	for _, emp := range e.dataset.Experience {
		for _, position := range emp.Positions {
			scored := e.scorePosition(position, priorityTags)

			matched := make([]types.ScoredAchievement, 0, len(scored))
			for _, a := range scored {
				if a.BaseScore > 0 {
					matched = append(matched, a)
				}
			}

			var bullets []types.ScoredAchievement
			if len(matched) > 0 {
				sort.SliceStable(matched, func(i, j int) bool {
					return matched[i].Score > matched[j].Score
				})
				if e.mode == FormatExecutive {
					bullets = EnsureBrandDiversity(matched, maxBulletsPerRole)
				} else {
					bullets = capBullets(matched, maxBulletsPerRole)
				}
			} else {
				// Length as a proxy for substance: the longest bullets tend
				// to carry the most complete accomplishment statements.
				fallback := append([]types.ScoredAchievement(nil), scored...)
				sort.SliceStable(fallback, func(i, j int) bool {
					return len(fallback[i].Text) > len(fallback[j].Text)
				})
				bullets = capBullets(fallback, fallbackBullets)
			}

			endDate := position.EndDate
			if endDate == "" {
				endDate = "Present"
			}

			entries = append(entries, types.PositionEntry{
				Company:        emp.Company,
				CompanyParent:  emp.CompanyParent,
				Location:       emp.Location,
				Title:          position.Title,
				StartDate:      position.StartDate,
				EndDate:        endDate,
				Current:        position.Current,
				Bullets:        bullets,
				TotalBullets:   len(scored),
				MatchedBullets: len(matched),
				HasMatches:     len(matched) > 0,
			})
		}
	}

	return entries
}

// scorePosition scores every achievement item in a position, preserving
// group/item order for stable tie-breaking later.
func (e *Engine) scorePosition(position types.Position, priorityTags []string) []types.ScoredAchievement {
	var scored []types.ScoredAchievement
	for _, group := range position.AchievementGroups {
		for _, item := range group.Items {
			if item.Text == "" {
				continue
			}
			base := scoring.Score(item.Tags, priorityTags)
			score := float64(base)
			if e.mode == FormatExecutive {
				score = scoring.EnhancedScore(item, priorityTags)
			}
			scored = append(scored, types.ScoredAchievement{
				Text:      item.Text,
				Tags:      item.Tags,
				Category:  group.Category,
				Score:     score,
				BaseScore: base,
			})
		}
	}
	return scored
}

// FilterProjects scores projects by keyword overlap with the priority tags.
// Projects with no overlap are excluded entirely; there is no fallback.
func (e *Engine) FilterProjects(priorityTags []string, maxProjects int) []types.ScoredProject {
	prioritySet := make(map[string]bool, len(priorityTags))
	for _, tag := range priorityTags {
		prioritySet[tag] = true
	}

	scored := make([]types.ScoredProject, 0, len(e.dataset.Projects))
	for _, project := range e.dataset.Projects {
		score := 0
		for _, keyword := range project.Keywords {
			if prioritySet[strings.ToLower(keyword)] {
				score++
			}
		}
		if score > 0 {
			scored = append(scored, types.ScoredProject{Project: project, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > maxProjects {
		scored = scored[:maxProjects]
	}
	return scored
}

// skillCategoryByTag maps priority tags to technical skill categories for
// the compact format's filtered skills view.
var skillCategoryByTag = map[string]string{
	"ai":               "ai_ml",
	"innovation":       "ai_ml",
	"analytics":        "analytics",
	"data_engineering": "data_engineering",
	"automation":       "tools_platforms",
	"digital":          "web_digital",
}

// Skills returns the skills view for the current format mode. Executive mode
// returns every category and lets the renderer decide what to narrate;
// compact mode returns only the categories mapped from the priority tags.
func (e *Engine) Skills(priorityTags []string) map[string][]string {
	technical := e.dataset.Skills.Technical
	if e.mode == FormatExecutive {
		all := make(map[string][]string, len(technical)+3)
		for category, list := range technical {
			all[category] = list
		}
		// Non-technical inventories join the view as categories of their
		// own so the narrative paragraphs can draw on them.
		if len(e.dataset.Skills.MarketingSpecialized) > 0 {
			all["marketing_specialized"] = e.dataset.Skills.MarketingSpecialized
		}
		if len(e.dataset.Skills.Leadership) > 0 {
			all["leadership"] = e.dataset.Skills.Leadership
		}
		if len(e.dataset.Skills.Methodologies) > 0 {
			all["methodologies"] = e.dataset.Skills.Methodologies
		}
		return all
	}

	relevant := make(map[string][]string)
	for _, tag := range priorityTags {
		category, found := skillCategoryByTag[tag]
		if !found {
			continue
		}
		if list, ok := technical[category]; ok {
			relevant[category] = list
		}
	}
	return relevant
}

// matchRate is matchedBullets/totalBullets across the emitted experience
// entries, as a percentage rounded to one decimal. It reflects what the
// viewer actually sees, not the full dataset.
func matchRate(experience []types.PositionEntry) float64 {
	total := 0
	matched := 0
	for _, entry := range experience {
		total += entry.TotalBullets
		matched += entry.MatchedBullets
	}
	if total == 0 {
		return 0
	}
	return math.Round(float64(matched)/float64(total)*1000) / 10
}

func (e *Engine) maxBulletsPerRole() int {
	if e.profileSet.FilteringRules.MaxBulletsPerRole > 0 {
		return e.profileSet.FilteringRules.MaxBulletsPerRole
	}
	return defaultMaxBulletsPerRole
}

func (e *Engine) maxProjects() int {
	if e.profileSet.FilteringRules.MaxProjectsShown > 0 {
		return e.profileSet.FilteringRules.MaxProjectsShown
	}
	return defaultMaxProjects
}

func capBullets(bullets []types.ScoredAchievement, maxBullets int) []types.ScoredAchievement {
	if len(bullets) > maxBullets {
		return bullets[:maxBullets]
	}
	return bullets
}
