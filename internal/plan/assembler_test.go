package plan

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krish2213/company-research-assistant/internal/model"
	"github.com/krish2213/company-research-assistant/internal/research"
)

type stubCompleter struct {
	reply string
	err   error
}

func (s stubCompleter) Complete(ctx context.Context, messages []model.Message, temperature float64) (string, error) {
	return s.reply, s.err
}

func (s stubCompleter) Name() string { return "stub" }

func testSnapshot() *research.Snapshot {
	return &research.Snapshot{
		Success:     true,
		CompanyName: "Acme Corp",
		Confidence:  0.85,
		Sources:     []string{"Wikipedia"},
		Record: &research.CompanyRecord{
			Name:        "Acme Corp",
			Description: "Acme Corp makes widgets.",
			Industry:    "Manufacturing",
			Products:    []string{"Widget A", "Widget B"},
			Competitors: []string{"Globex", "Initech"},
		},
	}
}

func TestGenerateSuccess(t *testing.T) {
	reply := `{
		"company_overview": "Acme makes widgets worldwide.",
		"key_products_services": "Widget A and Widget B.",
		"competitors": "Globex and Initech.",
		"opportunities": "Expansion into new markets.",
		"risks": "Widget commoditization."
	}`
	assembler := NewAssembler(stubCompleter{reply: reply}, nil)

	doc, status := assembler.Generate(context.Background(), testSnapshot())
	assert.Equal(t, StatusSuccess, status)
	require.True(t, doc.Complete())

	overview, _ := doc.Get(SectionOverview)
	assert.Equal(t, "Acme makes widgets worldwide.", overview)
}

func TestGenerateHandlesFencedJSON(t *testing.T) {
	reply := "```json\n{\"company_overview\": \"A\", \"key_products_services\": \"B\", \"competitors\": \"C\", \"opportunities\": \"D\", \"risks\": \"E\"}\n```"
	assembler := NewAssembler(stubCompleter{reply: reply}, nil)

	doc, status := assembler.Generate(context.Background(), testSnapshot())
	assert.Equal(t, StatusSuccess, status)
	assert.True(t, doc.Complete())
}

func TestGenerateFillsBlankSections(t *testing.T) {
	// Blank model sections fall back to deterministic content built from the
	// research record.
	reply := `{
		"company_overview": "Acme makes widgets worldwide.",
		"key_products_services": "",
		"competitors": "",
		"opportunities": "Expansion.",
		"risks": "Commoditization."
	}`
	assembler := NewAssembler(stubCompleter{reply: reply}, nil)

	doc, status := assembler.Generate(context.Background(), testSnapshot())
	assert.Equal(t, StatusSuccess, status)
	require.True(t, doc.Complete())

	products, _ := doc.Get(SectionProducts)
	assert.Equal(t, "Widget A, Widget B", products)
	competitors, _ := doc.Get(SectionCompetitors)
	assert.Equal(t, "Globex, Initech", competitors)
}

func TestGenerateModelFailureBuildsFallbackPlan(t *testing.T) {
	assembler := NewAssembler(stubCompleter{err: errors.New("boom")}, nil)

	doc, status := assembler.Generate(context.Background(), testSnapshot())
	assert.Equal(t, StatusPartial, status)
	require.True(t, doc.Complete())

	overview, _ := doc.Get(SectionOverview)
	assert.Equal(t, "Acme Corp makes widgets.", overview)
	risks, _ := doc.Get(SectionRisks)
	assert.Contains(t, risks, "Manufacturing")
}

func TestGenerateMalformedReplyBuildsFallbackPlan(t *testing.T) {
	assembler := NewAssembler(stubCompleter{reply: "not json at all"}, nil)

	doc, status := assembler.Generate(context.Background(), testSnapshot())
	assert.Equal(t, StatusPartial, status)
	assert.True(t, doc.Complete())
}

func TestFallbackSectionDefaults(t *testing.T) {
	record := &research.CompanyRecord{}

	assert.Equal(t, "This company is a company operating in their industry.",
		fallbackSection(SectionOverview, record))
	assert.Contains(t, fallbackSection(SectionOpportunities, record), "their industry")
	assert.Contains(t, fallbackSection(SectionRisks, record), "their industry")
}
