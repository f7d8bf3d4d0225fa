// Package types provides type definitions for the resume dataset, profile
// set, and derived tailored-resume views used throughout the system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeDataset is the full career-history document. It is loaded once and
// treated as immutable for the rest of the session.
type ResumeDataset struct {
	Personal   Personal            `json:"personal"`
	Summary    Summary             `json:"summary"`
	Experience []Employer          `json:"experience"`
	Projects   []Project           `json:"projects"`
	Skills     Skills              `json:"skills"`
	Education  []Education         `json:"education"`
	Languages  []Language          `json:"languages,omitempty"`
}

// Personal holds identity and contact fields for the resume header.
type Personal struct {
	Name    Name    `json:"name"`
	Contact Contact `json:"contact"`
}

// Name holds the candidate's name forms.
type Name struct {
	Full  string `json:"full"`
	First string `json:"first,omitempty"`
	Last  string `json:"last,omitempty"`
}

// Contact holds contact details rendered on the resume header line.
type Contact struct {
	Email    string   `json:"email"`
	Phone    string   `json:"phone,omitempty"`
	Website  string   `json:"website,omitempty"`
	Location Location `json:"location"`
}

// Location is a city/state pair.
type Location struct {
	City  string `json:"city"`
	State string `json:"state,omitempty"`
}

// Summary holds short and long narrative summary text.
type Summary struct {
	Short string `json:"short,omitempty"`
	Long  string `json:"long,omitempty"`
}

// Employer is one company with one or more positions held there.
type Employer struct {
	Company       string     `json:"company"`
	CompanyParent string     `json:"company_parent,omitempty"`
	Location      string     `json:"location,omitempty"`
	Positions     []Position `json:"positions"`
}

// Position is a single role at an employer. Achievements are grouped by
// category; the group order is the dataset's presentation order.
type Position struct {
	Title             string             `json:"title"`
	StartDate         string             `json:"start_date"`
	EndDate           string             `json:"end_date,omitempty"`
	Current           bool               `json:"current,omitempty"`
	AchievementGroups []AchievementGroup `json:"achievements,omitempty"`
}

// AchievementGroup is a named category of achievement items within a position.
type AchievementGroup struct {
	Category string            `json:"category,omitempty"`
	Items    []AchievementItem `json:"items"`
}

// AchievementItem is a single bullet-point accomplishment with free text and
// zero or more tags. Missing tags are tolerated and score zero.
type AchievementItem struct {
	Text string   `json:"text"`
	Tags []string `json:"tags,omitempty"`
}

// Project is a standalone initiative with outcomes and matchable keywords.
type Project struct {
	Name     string   `json:"name"`
	Period   string   `json:"period,omitempty"`
	Role     string   `json:"role,omitempty"`
	Outcomes []string `json:"outcomes,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

// Skills groups all skill inventories from the dataset. Technical skills are
// keyed by category (e.g. "ai_ml", "analytics").
type Skills struct {
	CoreCompetencies     []string            `json:"core_competencies,omitempty"`
	Technical            map[string][]string `json:"technical,omitempty"`
	MarketingSpecialized []string            `json:"marketing_specialized,omitempty"`
	Leadership           []string            `json:"leadership,omitempty"`
	Methodologies        []string            `json:"methodologies,omitempty"`
}

// Education is a single degree entry.
type Education struct {
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution"`
	EndDate     string `json:"end_date,omitempty"`
}

// Language is a spoken-language entry with a proficiency label.
type Language struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency,omitempty"`
}

// PositionCount returns the total number of positions across all employers.
func (d *ResumeDataset) PositionCount() int {
	count := 0
	for _, emp := range d.Experience {
		count += len(emp.Positions)
	}
	return count
}
