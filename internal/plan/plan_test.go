package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSection(t *testing.T) {
	cases := []struct {
		mention string
		want    Section
		ok      bool
	}{
		{"overview", SectionOverview, true},
		{"the company overview", SectionOverview, true},
		{"products", SectionProducts, true},
		{"key products", SectionProducts, true},
		{"services", SectionProducts, true},
		{"competitors", SectionCompetitors, true},
		{"the competition", SectionCompetitors, true},
		{"opportunities", SectionOpportunities, true},
		{"risks", SectionRisks, true},
		{"risk", SectionRisks, true},
		{"budget", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		section, ok := NormalizeSection(tc.mention)
		assert.Equal(t, tc.ok, ok, "mention %q", tc.mention)
		if tc.ok {
			assert.Equal(t, tc.want, section, "mention %q", tc.mention)
		}
	}
}

func TestDocumentSetGet(t *testing.T) {
	doc := NewDocument(time.Now())

	_, ok := doc.Get(SectionRisks)
	assert.False(t, ok)

	doc.Set(SectionRisks, "market volatility")
	content, ok := doc.Get(SectionRisks)
	require.True(t, ok)
	assert.Equal(t, "market volatility", content)

	// First write of a section leaves the update log alone.
	assert.Empty(t, doc.UpdateLog)
	assert.Nil(t, doc.LastUpdated)
}

func TestDocumentUpdateLog(t *testing.T) {
	doc := NewDocument(time.Now())
	doc.Set(SectionRisks, "old risks")
	doc.Set(SectionRisks, "new risks")

	require.Len(t, doc.UpdateLog, 1)
	entry := doc.UpdateLog[0]
	assert.Equal(t, SectionRisks, entry.Section)
	assert.Equal(t, "old risks", entry.OldContent)
	assert.Equal(t, "new risks", entry.NewContent)
	require.NotNil(t, doc.LastUpdated)

	content, ok := doc.Get(SectionRisks)
	require.True(t, ok)
	assert.Equal(t, "new risks", content)
}

func TestDocumentComplete(t *testing.T) {
	var nilDoc *Document
	assert.False(t, nilDoc.Complete())

	doc := NewDocument(time.Now())
	assert.False(t, doc.Complete())

	for _, section := range Sections() {
		doc.Set(section, "content")
	}
	assert.True(t, doc.Complete())

	doc.Set(SectionRisks, "")
	assert.False(t, doc.Complete())
}

func TestNilDocumentGet(t *testing.T) {
	var doc *Document
	_, ok := doc.Get(SectionOverview)
	assert.False(t, ok)
}

func TestSectionTitles(t *testing.T) {
	assert.Equal(t, "Company Overview", SectionOverview.Title())
	assert.Equal(t, "Key Products/Services", SectionProducts.Title())
	assert.Equal(t, []Section{
		SectionOverview, SectionProducts, SectionCompetitors,
		SectionOpportunities, SectionRisks,
	}, Sections())
}

func TestRenderMarksMissingSections(t *testing.T) {
	doc := NewDocument(time.Now())
	doc.Set(SectionOverview, "A widget company.")

	out := doc.Render()
	assert.Contains(t, out, "ACCOUNT PLAN")
	assert.Contains(t, out, "A widget company.")
	assert.Contains(t, out, "[Not provided]")

	var nilDoc *Document
	assert.Equal(t, "No account plan available.", nilDoc.Render())
}
