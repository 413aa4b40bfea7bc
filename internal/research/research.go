// Package research fetches and structures company information.
//
// Lookup order:
// 1. Internal dataset (instant, reliable)
// 2. Wikipedia search + summary fetch (heuristic extraction)
package research

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

// CompanyRecord is the structured record extracted for a company. All fields
// are optional; Gaps on the snapshot names what is missing.
type CompanyRecord struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Industry     string   `json:"industry"`
	Founded      string   `json:"founded"`
	Headquarters string   `json:"headquarters"`
	Products     []string `json:"products"`
	Services     []string `json:"services"`
	Competitors  []string `json:"competitors"`
	KeyPeople    []string `json:"key_people"`
	Revenue      string   `json:"revenue"`
	Employees    string   `json:"employees"`
	Source       string   `json:"source,omitempty"`
	MatchScore   int      `json:"match_score,omitempty"`
}

// Conflict describes an ambiguity discovered during lookup.
type Conflict struct {
	Type        string
	Description string
	Options     []string
}

// ConflictAmbiguousName marks multiple candidate companies with similar names.
const ConflictAmbiguousName = "ambiguous_name"

// Snapshot is the result of looking up one company.
//
// Invariant: Success implies Record != nil; !Success implies Confidence == 0
// and no Sources.
type Snapshot struct {
	Success     bool
	CompanyName string
	Record      *CompanyRecord
	Confidence  float64
	Sources     []string
	Gaps        []string
	Conflicts   []Conflict
	Err         string
}

// Lookup is the narrow contract the dialogue core has on the company-data
// source.
type Lookup interface {
	Lookup(ctx context.Context, companyName string) *Snapshot
}

// Config configures the research client.
type Config struct {
	Timeout   time.Duration
	UserAgent string
	Logger    *zap.Logger
}

// Client fetches company data from the internal dataset and Wikipedia.
type Client struct {
	http      *http.Client
	userAgent string
	dataset   map[string]*CompanyRecord
	logger    *zap.Logger
}

// NewClient creates a new research client.
func NewClient(cfg *Config) *Client {
	if cfg == nil {
		cfg = &Config{}
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "CompanyResearchAssistant/1.0 (Educational Project; contact@example.com)"
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		http:      &http.Client{Timeout: timeout},
		userAgent: userAgent,
		dataset:   builtinDataset(),
		logger:    logger,
	}
}

// Lookup fetches company data. Failures never surface as errors: the snapshot
// carries Success=false and a descriptive Err instead.
func (c *Client) Lookup(ctx context.Context, companyName string) *Snapshot {
	// Dataset first.
	if record := c.datasetLookup(companyName); record != nil {
		c.logger.Debug("dataset hit", zap.String("company", record.Name))
		return &Snapshot{
			Success:     true,
			CompanyName: record.Name,
			Record:      record,
			Confidence:  0.95,
			Sources:     []string{"Internal Database"},
			Gaps:        identifyGaps(record),
		}
	}

	// Wikipedia fallback: search, then fetch the best-matching page summary.
	searchResults, err := c.searchWikipedia(ctx, companyName+" company", 5)
	if err != nil {
		c.logger.Debug("wikipedia search failed", zap.Error(err))
	}

	var (
		record    *CompanyRecord
		sources   []string
		conflicts []Conflict
	)

	if len(searchResults) > 0 {
		conflicts = detectConflicts(searchResults)

		best, score := pickBestMatch(companyName, searchResults)
		page, err := c.fetchPage(ctx, best.Title)
		if err != nil {
			c.logger.Debug("wikipedia fetch failed", zap.Error(err))
		}
		if page != nil {
			record = extractCompanyInfo(page.Extract)
			if record != nil {
				record.Name = page.Title
				record.Source = page.Source
				if score > 0 {
					record.MatchScore = score
				}
				sources = append(sources, page.Source, "Wikipedia")
			}
		}
	}

	if record == nil || record.Description == "" {
		return &Snapshot{
			Success:     false,
			CompanyName: companyName,
			Confidence:  0,
			Gaps:        []string{"No valid company data"},
			Err:         fmt.Sprintf("No company found matching '%s'.", companyName),
		}
	}

	gaps := identifyGaps(record)

	return &Snapshot{
		Success:     true,
		CompanyName: record.Name,
		Record:      record,
		Confidence:  0.85,
		Sources:     sources,
		Gaps:        dedupe(gaps),
		Conflicts:   conflicts,
	}
}

// FormatForPrompt renders a snapshot as plain text for LLM prompts.
func FormatForPrompt(snap *Snapshot) string {
	if snap == nil || !snap.Success || snap.Record == nil {
		name := "the company"
		if snap != nil && snap.CompanyName != "" {
			name = snap.CompanyName
		}
		return fmt.Sprintf("Limited information found for %s.", name)
	}

	rec := snap.Record
	sections := []string{
		"Company: " + orNA(rec.Name),
		"Description: " + orNA(rec.Description),
		"Industry: " + orNA(rec.Industry),
		"Founded: " + orNA(rec.Founded),
		"Headquarters: " + orNA(rec.Headquarters),
		"Products: " + orNA(strings.Join(rec.Products, ", ")),
		"Services: " + orNA(strings.Join(rec.Services, ", ")),
		"Competitors: " + orNA(strings.Join(rec.Competitors, ", ")),
		"Key People: " + orNA(strings.Join(rec.KeyPeople, ", ")),
		"Revenue: " + orNA(rec.Revenue),
		"Employees: " + orNA(rec.Employees),
		fmt.Sprintf("\nData Confidence: %.0f%%", snap.Confidence*100),
		"Sources: " + strings.Join(snap.Sources, ", "),
	}

	if len(snap.Gaps) > 0 {
		sections = append(sections, "Information Gaps: "+strings.Join(snap.Gaps, ", "))
	}

	return strings.Join(sections, "\n")
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}
