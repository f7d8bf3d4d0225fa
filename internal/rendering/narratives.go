package rendering

import (
	"fmt"
	"strings"

	"github.com/mschulz/resume-tailor/internal/types"
)

// narrativeKey identifies one skills narrative paragraph.
type narrativeKey string

const (
	narrativeBrand       narrativeKey = "brand"
	narrativeStrategy    narrativeKey = "strategy"
	narrativeCX          narrativeKey = "cx"
	narrativeOmnichannel narrativeKey = "omnichannel"
	narrativeAnalytics   narrativeKey = "analytics"
	narrativeLeadership  narrativeKey = "leadership"
)

// profileNarratives selects the leading narrative paragraphs by profile id.
// Analytics and Leadership are always appended afterward, so a profile entry
// lists only its 1-2 distinguishing paragraphs.
var profileNarratives = map[string][]narrativeKey{
	"brand_management":    {narrativeBrand},
	"strategy_innovation": {narrativeStrategy},
	"cx_engagement":       {narrativeCX, narrativeOmnichannel},
	"omnichannel":         {narrativeOmnichannel},
	types.CustomProfileID: {narrativeStrategy},
}

// defaultNarratives applies to profile ids without a table entry.
var defaultNarratives = []narrativeKey{narrativeBrand, narrativeStrategy}

// renderSkills renders the profile-conditional skills narratives. Paragraphs
// whose underlying skill lists are empty are skipped.
func renderSkills(resume *types.TailoredResume) string {
	keys := profileNarratives[resume.Profile.ID]
	if keys == nil {
		keys = defaultNarratives
	}
	keys = append(append([]narrativeKey(nil), keys...), narrativeAnalytics, narrativeLeadership)

	var b strings.Builder
	b.WriteString(sectionOpen("Skills & Expertise"))
	for _, key := range keys {
		if paragraph := narrativeParagraph(key, resume); paragraph != "" {
			b.WriteString("    " + paragraph + "\n")
		}
	}
	b.WriteString(sectionClose())
	return b.String()
}

// narrativeParagraph builds one labeled paragraph from its slice of the
// skills data, or "" when that slice is empty.
func narrativeParagraph(key narrativeKey, resume *types.TailoredResume) string {
	switch key {
	case narrativeBrand:
		items := resume.Skills["marketing_specialized"]
		if len(items) == 0 {
			items = resume.CoreCompetencies
		}
		return skillParagraph("Brand & Marketing", items)
	case narrativeStrategy:
		return skillParagraph("Strategy & Methodologies", resume.Skills["methodologies"])
	case narrativeCX:
		return skillParagraph("Customer Experience", resume.Skills["web_digital"])
	case narrativeOmnichannel:
		return skillParagraph("Omnichannel & Platforms", resume.Skills["tools_platforms"])
	case narrativeAnalytics:
		items := append(append([]string(nil), resume.Skills["analytics"]...), resume.Skills["data_engineering"]...)
		return skillParagraph("Analytics", items)
	case narrativeLeadership:
		return skillParagraph("Leadership", resume.Skills["leadership"])
	default:
		return ""
	}
}

func skillParagraph(label string, items []string) string {
	if len(items) == 0 {
		return ""
	}
	escaped := make([]string, len(items))
	for i, item := range items {
		escaped[i] = EscapeHTML(item)
	}
	return fmt.Sprintf(`<p><strong>%s:</strong> %s</p>`, EscapeHTML(label), strings.Join(escaped, ", "))
}
