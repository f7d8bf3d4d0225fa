// Package rendering converts a tailored resume into HTML markup blocks.
package rendering

import (
	"fmt"
	"strings"

	"github.com/mschulz/resume-tailor/internal/types"
)

const (
	// blockSeparator joins the section blocks in the final document.
	blockSeparator = "\n"
	// maxFocusSkills caps the focus skills shown in the executive snapshot.
	maxFocusSkills = 3
	// maxSynthesizedHighlights caps competencies and projects pulled into a
	// synthesized highlights section.
	maxSynthesizedHighlights = 3
)

// Render converts a tailored resume into an ordered sequence of HTML section
// blocks joined by a stable separator. It is a pure function of its input:
// no hidden state, no I/O. All stored text is escaped on insertion.
func Render(resume *types.TailoredResume) string {
	blocks := []string{
		renderHeader(resume),
		renderSnapshot(resume),
		renderHighlights(resume),
		renderExperience(resume),
	}

	if len(resume.Projects) > 0 {
		blocks = append(blocks, renderProjects(resume))
	}

	blocks = append(blocks, renderSkills(resume), renderEducation(resume))

	return strings.Join(blocks, blockSeparator)
}

func renderHeader(resume *types.TailoredResume) string {
	p := resume.Personal

	contactParts := make([]string, 0, 4)
	if p.Contact.Location.City != "" {
		location := p.Contact.Location.City
		if p.Contact.Location.State != "" {
			location += ", " + p.Contact.Location.State
		}
		contactParts = append(contactParts, EscapeHTML(location))
	}
	if p.Contact.Email != "" {
		contactParts = append(contactParts, EscapeHTML(p.Contact.Email))
	}
	if p.Contact.Phone != "" {
		contactParts = append(contactParts, EscapeHTML(p.Contact.Phone))
	}
	if p.Contact.Website != "" {
		contactParts = append(contactParts, EscapeHTML(p.Contact.Website))
	}

	var b strings.Builder
	b.WriteString(`<div class="resume-header">` + "\n")
	fmt.Fprintf(&b, `  <h1 class="resume-name">%s</h1>`+"\n", EscapeHTML(p.Name.Full))
	fmt.Fprintf(&b, `  <div class="resume-headline">%s</div>`+"\n", EscapeHTML(resume.Profile.Headline))
	fmt.Fprintf(&b, `  <div class="resume-contact">%s</div>`+"\n", strings.Join(contactParts, " &bull; "))
	b.WriteString(`</div>`)
	return b.String()
}

// renderSnapshot is the executive snapshot: tagline, the long summary when
// present (short otherwise), and the top focus skills.
func renderSnapshot(resume *types.TailoredResume) string {
	summary := resume.Summary.Long
	if summary == "" {
		summary = resume.Summary.Short
	}

	var b strings.Builder
	b.WriteString(sectionOpen("Executive Snapshot"))
	fmt.Fprintf(&b, `    <p><strong>%s</strong></p>`+"\n", EscapeHTML(resume.Profile.Tagline))
	if summary != "" {
		fmt.Fprintf(&b, `    <p>%s</p>`+"\n", EscapeHTML(summary))
	}
	if len(resume.Profile.FocusSkills) > 0 {
		skills := resume.Profile.FocusSkills
		if len(skills) > maxFocusSkills {
			skills = skills[:maxFocusSkills]
		}
		escaped := make([]string, len(skills))
		for i, s := range skills {
			escaped[i] = EscapeHTML(s)
		}
		fmt.Fprintf(&b, `    <p class="focus-skills">%s</p>`+"\n", strings.Join(escaped, " &bull; "))
	}
	b.WriteString(sectionClose())
	return b.String()
}

// renderHighlights lists cross-position highlights verbatim for custom
// profiles that have them; otherwise it synthesizes a short list from the
// profile's stored competencies and the top projects.
func renderHighlights(resume *types.TailoredResume) string {
	var b strings.Builder
	b.WriteString(sectionOpen("Targeted Highlights"))
	b.WriteString("    <ul class=\"highlight-list\">\n")

	if resume.Profile.IsCustom && len(resume.TopHighlights) > 0 {
		for _, h := range resume.TopHighlights {
			fmt.Fprintf(&b, `      <li>%s <span class="highlight-source">(%s)</span></li>`+"\n",
				EscapeHTML(h.Text), EscapeHTML(h.Company))
		}
	} else {
		competencies := resume.Profile.Competencies
		if len(competencies) > maxSynthesizedHighlights {
			competencies = competencies[:maxSynthesizedHighlights]
		}
		for _, c := range competencies {
			fmt.Fprintf(&b, `      <li>%s</li>`+"\n", EscapeHTML(c))
		}
		projects := resume.Projects
		if len(projects) > maxSynthesizedHighlights {
			projects = projects[:maxSynthesizedHighlights]
		}
		for _, proj := range projects {
			line := proj.Name
			if len(proj.Outcomes) > 0 {
				line += " — " + proj.Outcomes[0]
			}
			fmt.Fprintf(&b, `      <li>%s</li>`+"\n", EscapeHTML(line))
		}
	}

	b.WriteString("    </ul>\n")
	b.WriteString(sectionClose())
	return b.String()
}

// renderExperience renders one block per position entry, bullets in their
// pre-sorted order with no further filtering.
func renderExperience(resume *types.TailoredResume) string {
	var b strings.Builder
	b.WriteString(sectionOpen("Professional Experience"))

	for _, entry := range resume.Experience {
		itemClass := "experience-item"
		if !entry.HasMatches {
			itemClass += " off-target"
		}
		fmt.Fprintf(&b, `    <div class="%s">`+"\n", itemClass)
		fmt.Fprintf(&b, `      <div class="experience-title">%s</div>`+"\n", EscapeHTML(entry.Title))

		company := entry.Company
		if entry.CompanyParent != "" {
			company += " (" + entry.CompanyParent + ")"
		}
		if entry.Location != "" {
			company += " | " + entry.Location
		}
		fmt.Fprintf(&b, `      <div class="experience-company">%s</div>`+"\n", EscapeHTML(company))
		fmt.Fprintf(&b, `      <div class="experience-dates">%s – %s</div>`+"\n",
			EscapeHTML(entry.StartDate), EscapeHTML(entry.EndDate))

		if len(entry.Bullets) > 0 {
			b.WriteString("      <ul class=\"experience-bullets\">\n")
			for _, bullet := range entry.Bullets {
				fmt.Fprintf(&b, `        <li>%s</li>`+"\n", EscapeHTML(bullet.Text))
			}
			b.WriteString("      </ul>\n")
		}
		b.WriteString("    </div>\n")
	}

	b.WriteString(sectionClose())
	return b.String()
}

func renderProjects(resume *types.TailoredResume) string {
	var b strings.Builder
	b.WriteString(sectionOpen("Key Initiatives"))

	for _, proj := range resume.Projects {
		b.WriteString(`    <div class="project-item">` + "\n")
		heading := proj.Name
		if proj.Period != "" {
			heading += " (" + proj.Period + ")"
		}
		if proj.Role != "" {
			heading += " – " + proj.Role
		}
		fmt.Fprintf(&b, `      <strong>%s</strong>`+"\n", EscapeHTML(heading))
		if len(proj.Outcomes) > 0 {
			fmt.Fprintf(&b, `      <p>%s</p>`+"\n", EscapeHTML(proj.Outcomes[0]))
		}
		b.WriteString("    </div>\n")
	}

	b.WriteString(sectionClose())
	return b.String()
}

func renderEducation(resume *types.TailoredResume) string {
	var b strings.Builder
	b.WriteString(sectionOpen("Education"))

	for _, edu := range resume.Education {
		b.WriteString(`    <div class="education-item">` + "\n")
		degree := edu.Degree
		if edu.Field != "" {
			degree += " in " + edu.Field
		}
		fmt.Fprintf(&b, `      <strong>%s</strong><br>`+"\n", EscapeHTML(degree))
		year := "Present"
		if edu.EndDate != "" {
			year = strings.SplitN(edu.EndDate, "-", 2)[0]
		}
		fmt.Fprintf(&b, `      %s | %s`+"\n", EscapeHTML(edu.Institution), EscapeHTML(year))
		b.WriteString("    </div>\n")
	}

	b.WriteString(sectionClose())
	return b.String()
}

func sectionOpen(title string) string {
	return `<div class="resume-section">` + "\n" +
		fmt.Sprintf(`  <h2 class="section-title">%s</h2>`, EscapeHTML(title)) + "\n" +
		`  <div class="section-content">` + "\n"
}

func sectionClose() string {
	return "  </div>\n</div>"
}
