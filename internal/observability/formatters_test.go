package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mschulz/resume-tailor/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintProfile(types.ProfileView{
		Label:    "Oncology Marketing",
		Headline: "Oncology Marketing Leader",
	}, []string{"oncology", "hcp"})

	output := buf.String()
	assert.Contains(t, output, "SELECTED PROFILE")
	assert.Contains(t, output, "Oncology Marketing")
	assert.Contains(t, output, "• oncology")
	assert.Contains(t, output, "• hcp")
	assert.NotContains(t, output, "more")
}

func TestPrintProfile_TruncatesLongTagLists(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	tags := []string{"a", "b", "c", "d", "e", "f", "g"}
	printer.PrintProfile(types.ProfileView{Label: "Custom"}, tags)

	output := buf.String()
	assert.Contains(t, output, "... and 2 more")
	assert.NotContains(t, output, "• f")
}

func TestPrintResumeStats(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintResumeStats(&types.TailoredResume{
		Stats: types.Stats{
			MatchRate:       66.7,
			ExperienceCount: 3,
			TotalBullets:    12,
			ProjectCount:    2,
		},
		TopHighlights: []types.Highlight{{}, {}},
	})

	output := buf.String()
	assert.Contains(t, output, "TAILORED RESUME")
	assert.Contains(t, output, "66.7%")
	assert.Contains(t, output, "Roles shown:     3")
	assert.Contains(t, output, "Top highlights:  2")
}

func TestPrintExperienceBreakdown_Markers(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintExperienceBreakdown(&types.TailoredResume{
		Experience: []types.PositionEntry{
			{Title: "VP, Group Director", HasMatches: true, MatchedBullets: 4, TotalBullets: 6},
			{Title: "Finance Manager", HasMatches: false, TotalBullets: 3},
		},
	})

	output := buf.String()
	assert.Contains(t, output, "• VP, Group Director — 4/6 matched")
	assert.Contains(t, output, "○ Finance Manager — 0/3 matched")
}

func TestPrintBox_BordersAndTruncation(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.printBox("TITLE", strings.Repeat("x", 100))

	output := buf.String()
	assert.Contains(t, output, "┌")
	assert.Contains(t, output, "└")
	assert.Contains(t, output, "...")
	assert.NotContains(t, output, strings.Repeat("x", 80))
}
