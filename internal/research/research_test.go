package research

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDatasetLookupExact(t *testing.T) {
	c := NewClient(nil)

	record := c.datasetLookup("apple")
	require.NotNil(t, record)
	assert.Equal(t, "Apple Inc.", record.Name)

	record = c.datasetLookup("  TESLA  ")
	require.NotNil(t, record)
	assert.Equal(t, "Tesla, Inc.", record.Name)
}

func TestDatasetLookupSubstring(t *testing.T) {
	c := NewClient(nil)

	record := c.datasetLookup("apple inc")
	require.NotNil(t, record)
	assert.Equal(t, "Apple Inc.", record.Name)

	record = c.datasetLookup("tata consultancy services")
	require.NotNil(t, record)
	assert.Equal(t, "Tata Consultancy Services", record.Name)
}

func TestDatasetLookupFuzzy(t *testing.T) {
	c := NewClient(nil)

	record := c.datasetLookup("microsft")
	require.NotNil(t, record)
	assert.Equal(t, "Microsoft Corporation", record.Name)
}

func TestDatasetLookupMiss(t *testing.T) {
	c := NewClient(nil)
	assert.Nil(t, c.datasetLookup("qqzzmm industries"))
}

func TestExtractCompanyInfo(t *testing.T) {
	text := "Acme Corporation is an American multinational technology company " +
		"headquartered in Springfield, Ohio. It was founded in 1952 and employs 12,000 employees. " +
		"Its products include anvils, rockets and dynamite. The company reported revenue of $4.2 billion in 2023."

	record := extractCompanyInfo(text)
	require.NotNil(t, record)
	assert.Equal(t, "1952", record.Founded)
	assert.Contains(t, record.Headquarters, "Springfield")
	assert.Equal(t, "12,000", record.Employees)
	assert.NotEmpty(t, record.Products)
	assert.Contains(t, record.Products, "anvils")
}

func TestExtractCompanyInfoRejectsNonCompanies(t *testing.T) {
	assert.Nil(t, extractCompanyInfo(""))
	assert.Nil(t, extractCompanyInfo("Acme is a fictional character appearing in a long-running animated film series."))
	assert.Nil(t, extractCompanyInfo("The acme is the highest point of a mountain ridge in the region."))
}

func TestExtractCompanyInfoRequiresTwoIndicators(t *testing.T) {
	// One indicator is not enough to call it a company.
	assert.Nil(t, extractCompanyInfo("Acme is a widely used placeholder name in industry examples."))
}

func TestDetectConflicts(t *testing.T) {
	assert.Nil(t, detectConflicts(nil))
	assert.Nil(t, detectConflicts([]searchResult{{Title: "Acme"}}))
	assert.Nil(t, detectConflicts([]searchResult{{Title: "Acme"}, {Title: "Acme"}}))

	conflicts := detectConflicts([]searchResult{
		{Title: "Acme Corporation"},
		{Title: "Acme Brick"},
		{Title: "Acme Markets"},
	})
	require.Len(t, conflicts, 1)
	assert.Equal(t, ConflictAmbiguousName, conflicts[0].Type)
	assert.Equal(t, []string{"Acme Corporation", "Acme Brick", "Acme Markets"}, conflicts[0].Options)
}

func TestPickBestMatch(t *testing.T) {
	results := []searchResult{
		{Title: "Apfel GmbH"},
		{Title: "Apple Inc."},
		{Title: "Applied Materials"},
	}
	best, score := pickBestMatch("Apple", results)
	assert.Equal(t, "Apple Inc.", best.Title)
	assert.Greater(t, score, 0)
}

func TestFormatForPrompt(t *testing.T) {
	snap := &Snapshot{
		Success:     true,
		CompanyName: "Acme Corp",
		Confidence:  0.85,
		Sources:     []string{"Wikipedia"},
		Record: &CompanyRecord{
			Name:        "Acme Corp",
			Description: "Makes widgets.",
			Industry:    "Manufacturing",
		},
		Gaps: []string{"Product/service information"},
	}

	out := FormatForPrompt(snap)
	assert.Contains(t, out, "Company: Acme Corp")
	assert.Contains(t, out, "Industry: Manufacturing")
	assert.Contains(t, out, "Data Confidence: 85%")
	assert.Contains(t, out, "Products: N/A")
	assert.Contains(t, out, "Information Gaps: Product/service information")
}

func TestFormatForPromptFailure(t *testing.T) {
	out := FormatForPrompt(&Snapshot{Success: false, CompanyName: "Nowhere Ltd"})
	assert.True(t, strings.Contains(out, "Limited information found for Nowhere Ltd"))

	assert.Contains(t, FormatForPrompt(nil), "Limited information found")
}
