package plan

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/krish2213/company-research-assistant/internal/model"
	"github.com/krish2213/company-research-assistant/internal/research"
)

// Status reports how a document was produced.
type Status string

const (
	// StatusSuccess means the model produced the document.
	StatusSuccess Status = "success"

	// StatusPartial means the document was built from deterministic
	// fallbacks after a model or parse failure.
	StatusPartial Status = "partial"
)

const generationPrompt = `Based on the following company research data, generate a comprehensive Account Plan.

RESEARCH DATA:
%s

Generate each section with substantive, actionable content. Even if some data is limited, use your knowledge to provide helpful insights.

REQUIRED SECTIONS:

1. COMPANY OVERVIEW: A clear summary of what the company does, its market position, history, and key facts. (2-4 sentences)

2. KEY PRODUCTS/SERVICES: Their main offerings and what makes them significant in the market.

3. COMPETITORS: Main competitors in their industry and brief notes on competitive positioning.

4. OPPORTUNITIES: Potential business opportunities for engaging with this company.

5. RISKS: Potential risks, challenges, or concerns.

IMPORTANT: Every section MUST have meaningful content. Do not leave any section empty.

Format your response as valid JSON with exactly these keys:
{
    "company_overview": "...",
    "key_products_services": "...",
    "competitors": "...",
    "opportunities": "...",
    "risks": "..."
}

Respond ONLY with the JSON object, no additional text.`

// Assembler turns research snapshots into Account Plan documents.
type Assembler struct {
	model  model.Completer
	logger *zap.Logger
}

// NewAssembler creates a new plan assembler.
func NewAssembler(completer model.Completer, logger *zap.Logger) *Assembler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assembler{model: completer, logger: logger}
}

// Generate builds a five-section document from a research snapshot. Any model
// or parse failure degrades to deterministic fallback content; the caller
// always receives a shaped document.
func (a *Assembler) Generate(ctx context.Context, snap *research.Snapshot) (*Document, Status) {
	messages := []model.Message{
		model.System("You are an expert business analyst. Generate structured account plans in JSON format only."),
		model.User(fmt.Sprintf(generationPrompt, research.FormatForPrompt(snap))),
	}

	record := snap.Record
	if record == nil {
		record = &research.CompanyRecord{}
	}

	reply, err := a.model.Complete(ctx, messages, 0.5)
	if err != nil {
		a.logger.Debug("plan generation call failed", zap.Error(err))
		return a.fallbackDocument(record, snap.CompanyName), StatusPartial
	}

	var sections struct {
		CompanyOverview     string `json:"company_overview"`
		KeyProductsServices string `json:"key_products_services"`
		Competitors         string `json:"competitors"`
		Opportunities       string `json:"opportunities"`
		Risks               string `json:"risks"`
	}
	if err := model.DecodeJSON(reply, &sections); err != nil {
		a.logger.Debug("plan generation parse failed", zap.Error(err))
		return a.fallbackDocument(record, snap.CompanyName), StatusPartial
	}

	doc := NewDocument(time.Now())
	generated := map[Section]string{
		SectionOverview:      sections.CompanyOverview,
		SectionProducts:      sections.KeyProductsServices,
		SectionCompetitors:   sections.Competitors,
		SectionOpportunities: sections.Opportunities,
		SectionRisks:         sections.Risks,
	}
	for _, section := range Sections() {
		content := strings.TrimSpace(generated[section])
		if content == "" {
			content = fallbackSection(section, record)
		}
		doc.Set(section, content)
	}

	return doc, StatusSuccess
}

// fallbackDocument builds the whole plan from the raw research record.
func (a *Assembler) fallbackDocument(record *research.CompanyRecord, companyName string) *Document {
	if record.Name == "" {
		record.Name = companyName
	}

	doc := NewDocument(time.Now())
	for _, section := range Sections() {
		doc.Set(section, fallbackSection(section, record))
	}
	return doc
}

// fallbackSection builds deterministic content for one section from the raw
// research fields.
func fallbackSection(section Section, record *research.CompanyRecord) string {
	companyName := record.Name
	if companyName == "" {
		companyName = "This company"
	}
	industry := record.Industry
	if industry == "" {
		industry = "their industry"
	}

	switch section {
	case SectionOverview:
		if record.Description != "" {
			return record.Description
		}
		return companyName + " is a company operating in " + industry + "."
	case SectionProducts:
		offerings := append(append([]string{}, record.Products...), record.Services...)
		if joined := strings.Join(offerings, ", "); joined != "" {
			return joined
		}
		return companyName + " offers various products and services in " + industry + "."
	case SectionCompetitors:
		if joined := strings.Join(record.Competitors, ", "); joined != "" {
			return joined
		}
		return "Key competitors include other major players in " + industry + "."
	case SectionOpportunities:
		return "Opportunities include digital transformation initiatives, market expansion, strategic partnerships, and leveraging emerging technologies in " + industry + "."
	case SectionRisks:
		return "Key risks include competitive pressure, market volatility, regulatory changes, technology disruption, and talent acquisition challenges in " + industry + "."
	default:
		return "Information to be added."
	}
}
