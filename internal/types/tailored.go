package types

// ScoredAchievement is an achievement item with its relevance scores.
// BaseScore is the raw tag-overlap count and is the sole match/no-match
// signal; Score may exceed it through brand and impact boosts.
type ScoredAchievement struct {
	Text      string   `json:"text"`
	Tags      []string `json:"tags,omitempty"`
	Category  string   `json:"category,omitempty"`
	Score     float64  `json:"score"`
	BaseScore int      `json:"base_score"`
}

// Highlight is a cross-position achievement selected for the targeted
// highlights section, carrying its origin role for attribution.
type Highlight struct {
	ScoredAchievement
	Company string `json:"company"`
	Title   string `json:"title"`
}

// PositionEntry is one position in the tailored experience list with its
// capped, ordered bullet list and match statistics.
type PositionEntry struct {
	Company        string              `json:"company"`
	CompanyParent  string              `json:"company_parent,omitempty"`
	Location       string              `json:"location,omitempty"`
	Title          string              `json:"title"`
	StartDate      string              `json:"start_date"`
	EndDate        string              `json:"end_date"`
	Current        bool                `json:"current,omitempty"`
	Bullets        []ScoredAchievement `json:"bullets"`
	TotalBullets   int                 `json:"total_bullets"`
	MatchedBullets int                 `json:"matched_bullets"`
	HasMatches     bool                `json:"has_matches"`
}

// ScoredProject is a project with its keyword-overlap score.
type ScoredProject struct {
	Project
	Score int `json:"score"`
}

// ProfileView is the profile metadata carried on a tailored resume. For
// custom profiles the headline and tagline are generated, not stored.
type ProfileView struct {
	ID           string   `json:"id"`
	Label        string   `json:"label"`
	Headline     string   `json:"headline"`
	Tagline      string   `json:"tagline"`
	Description  string   `json:"description,omitempty"`
	Competencies []string `json:"competencies,omitempty"`
	FocusSkills  []string `json:"focus_skills,omitempty"`
	IsCustom     bool     `json:"is_custom,omitempty"`
}

// Stats summarizes a tailored resume for display.
type Stats struct {
	ExperienceCount int     `json:"experience_count"`
	ProjectCount    int     `json:"project_count"`
	TotalBullets    int     `json:"total_bullets"`
	MatchRate       float64 `json:"match_rate"`
}

// TailoredResume is the complete derived resume view: the renderer's sole
// input. It is recomputed fully on every generation request.
type TailoredResume struct {
	Profile          ProfileView         `json:"profile"`
	Personal         Personal            `json:"personal"`
	Summary          Summary             `json:"summary"`
	Experience       []PositionEntry     `json:"experience"`
	Projects         []ScoredProject     `json:"projects"`
	Skills           map[string][]string `json:"skills"`
	CoreCompetencies []string            `json:"core_competencies,omitempty"`
	TopHighlights    []Highlight         `json:"top_highlights,omitempty"`
	Education        []Education         `json:"education"`
	Languages        []Language          `json:"languages,omitempty"`
	Stats            Stats               `json:"stats"`
}
