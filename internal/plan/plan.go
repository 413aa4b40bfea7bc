// Package plan models the five-section Account Plan document and its
// assembly from research data.
package plan

import (
	"strings"
	"time"
)

// Section identifies one of the five required plan sections.
type Section string

const (
	SectionOverview      Section = "company_overview"
	SectionProducts      Section = "key_products_services"
	SectionCompetitors   Section = "competitors"
	SectionOpportunities Section = "opportunities"
	SectionRisks         Section = "risks"
)

// Sections returns the five required sections in document order.
func Sections() []Section {
	return []Section{
		SectionOverview,
		SectionProducts,
		SectionCompetitors,
		SectionOpportunities,
		SectionRisks,
	}
}

// Title returns the display title for a section.
func (s Section) Title() string {
	switch s {
	case SectionOverview:
		return "Company Overview"
	case SectionProducts:
		return "Key Products/Services"
	case SectionCompetitors:
		return "Competitors"
	case SectionOpportunities:
		return "Opportunities"
	case SectionRisks:
		return "Risks"
	default:
		return string(s)
	}
}

// sectionAliases maps free-text section mentions to sections. Entries are
// ordered; the first alias contained in the mention wins.
var sectionAliases = []struct {
	alias   string
	section Section
}{
	{"overview", SectionOverview},
	{"company overview", SectionOverview},
	{"products", SectionProducts},
	{"services", SectionProducts},
	{"products/services", SectionProducts},
	{"key products", SectionProducts},
	{"competitors", SectionCompetitors},
	{"competition", SectionCompetitors},
	{"opportunities", SectionOpportunities},
	{"risks", SectionRisks},
	{"risk", SectionRisks},
}

// NormalizeSection resolves a free-text section mention to a Section. All
// section-name fuzziness lives here.
func NormalizeSection(mention string) (Section, bool) {
	lowered := strings.ToLower(strings.TrimSpace(mention))
	if lowered == "" {
		return "", false
	}
	for _, entry := range sectionAliases {
		if strings.Contains(lowered, entry.alias) {
			return entry.section, true
		}
	}
	return "", false
}

// UpdateEntry records one section replacement.
type UpdateEntry struct {
	Section    Section
	OldContent string
	NewContent string
	UpdatedAt  time.Time
}

// Document is the Account Plan. A document is complete when all five
// sections are non-empty.
type Document struct {
	sections    map[Section]string
	GeneratedAt time.Time
	LastUpdated *time.Time
	UpdateLog   []UpdateEntry
}

// NewDocument creates an empty document stamped with the generation time.
func NewDocument(generatedAt time.Time) *Document {
	return &Document{
		sections:    make(map[Section]string, 5),
		GeneratedAt: generatedAt,
	}
}

// Get returns a section's content and whether it has been set.
func (d *Document) Get(section Section) (string, bool) {
	if d == nil {
		return "", false
	}
	content, ok := d.sections[section]
	return content, ok && content != ""
}

// Set replaces a section's content. Replacing prior non-empty content appends
// exactly one update-log entry and stamps LastUpdated.
func (d *Document) Set(section Section, content string) {
	old, hadContent := d.Get(section)
	if hadContent {
		now := time.Now()
		d.UpdateLog = append(d.UpdateLog, UpdateEntry{
			Section:    section,
			OldContent: old,
			NewContent: content,
			UpdatedAt:  now,
		})
		d.LastUpdated = &now
	}
	d.sections[section] = content
}

// Complete reports whether all five sections are filled.
func (d *Document) Complete() bool {
	if d == nil {
		return false
	}
	for _, section := range Sections() {
		if _, ok := d.Get(section); !ok {
			return false
		}
	}
	return true
}
