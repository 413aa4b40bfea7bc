package research

import (
	"regexp"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// companyIndicators must appear (at least two) early in a page for it to be
// accepted as describing a company.
var companyIndicators = []string{
	"company", "corporation", "inc.", "inc ", "llc",
	"ltd", "plc", "subsidiary", "multinational",
	"headquartered", "founded", "enterprise", "manufacturer",
	"producer", "vendor", "industry",
}

// nonCompanyTypes reject a page outright when they appear in its opening text.
var nonCompanyTypes = []string{
	"politician", "singer", "musician", "actor", "actress",
	"film", "movie", "song", "album", "book", "novel", "fictional",
	"character", "tv series", "season", "episode", "manga", "anime",
	"species", "animal", "bird", "reptile", "insect",
	"bacterium", "virus", "fungus", "plant",
	"river", "lake", "mountain", "village", "town", "city",
	"chemical", "compound", "protein",
	"explicit", "erotic",
}

var (
	foundedPatterns = []*regexp.Regexp{
		regexp.MustCompile(`founded\s+(?:in\s+)?(\d{4})`),
		regexp.MustCompile(`established\s+(?:in\s+)?(\d{4})`),
		regexp.MustCompile(`incorporated\s+(?:in\s+)?(\d{4})`),
	}
	headquartersPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)headquartered\s+in\s+([A-Z][a-zA-Z\s,]+?)(?:\.|,|and)`),
		regexp.MustCompile(`(?i)headquarters\s+(?:is\s+)?(?:in\s+)?([A-Z][a-zA-Z\s,]+?)(?:\.|,|and)`),
		regexp.MustCompile(`(?i)based\s+in\s+([A-Z][a-zA-Z\s,]+?)(?:\.|,|and)`),
	}
	industryPatterns = []*regexp.Regexp{
		regexp.MustCompile(`is\s+an?\s+([a-z\s]+?)\s+company`),
		regexp.MustCompile(`is\s+an?\s+([a-z\s]+?)\s+corporation`),
		regexp.MustCompile(`in\s+the\s+([a-z\s]+?)\s+(?:industry|sector)`),
	}
	revenuePatterns = []*regexp.Regexp{
		regexp.MustCompile(`revenue\s+(?:of\s+)?(?:us)?\$?([\d.,]+\s*(?:billion|million|trillion))`),
		regexp.MustCompile(`(?:us)?\$?([\d.,]+\s*(?:billion|million|trillion))\s+(?:in\s+)?revenue`),
	}
	employeePatterns = []*regexp.Regexp{
		regexp.MustCompile(`([\d,]+)\s+employees`),
		regexp.MustCompile(`employs?\s+([\d,]+)\s+(?:people|workers|staff)`),
	}
	productPatterns = []*regexp.Regexp{
		regexp.MustCompile(`products?\s+(?:include|such as|like)\s+([^.]+)`),
		regexp.MustCompile(`(?:known for|famous for)\s+([^.]+)`),
		regexp.MustCompile(`services?\s+(?:include|such as|like)\s+([^.]+)`),
	}
	productSplit = regexp.MustCompile(`[,;]|\band\b`)
)

// extractCompanyInfo pulls a structured record out of encyclopedia prose.
// Returns nil when the text plausibly describes something other than a
// company.
func extractCompanyInfo(text string) *CompanyRecord {
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)

	head := lower
	if len(head) > 300 {
		head = head[:300]
	}
	for _, term := range nonCompanyTypes {
		if strings.Contains(head, term) {
			return nil
		}
	}

	indicatorWindow := lower
	if len(indicatorWindow) > 400 {
		indicatorWindow = indicatorWindow[:400]
	}
	hits := 0
	for _, term := range companyIndicators {
		if strings.Contains(indicatorWindow, term) {
			hits++
		}
	}
	if hits < 2 {
		return nil
	}

	record := &CompanyRecord{}

	record.Description = text
	if len(record.Description) > 1500 {
		record.Description = record.Description[:1500]
	}

	record.Founded = firstMatch(foundedPatterns, lower)
	record.Headquarters = firstMatch(headquartersPatterns, text)
	record.Industry = firstMatch(industryPatterns, lower)
	record.Revenue = firstMatch(revenuePatterns, lower)
	record.Employees = firstMatch(employeePatterns, lower)

	for _, pattern := range productPatterns {
		match := pattern.FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		for _, part := range productSplit.Split(match[1], -1) {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			record.Products = append(record.Products, part)
			if len(record.Products) == 10 {
				break
			}
		}
		break
	}

	return record
}

func firstMatch(patterns []*regexp.Regexp, text string) string {
	for _, pattern := range patterns {
		if match := pattern.FindStringSubmatch(text); match != nil {
			return strings.TrimSpace(match[1])
		}
	}
	return ""
}

// identifyGaps names the critical fields the record is missing.
func identifyGaps(record *CompanyRecord) []string {
	var gaps []string
	if record.Description == "" {
		gaps = append(gaps, "Company description")
	}
	if record.Industry == "" {
		gaps = append(gaps, "Industry/sector information")
	}
	if len(record.Products) == 0 {
		gaps = append(gaps, "Product/service information")
	}
	return gaps
}

// detectConflicts flags ambiguous names across search results.
func detectConflicts(results []searchResult) []Conflict {
	if len(results) < 2 {
		return nil
	}

	limit := len(results)
	if limit > 5 {
		limit = 5
	}
	titles := make([]string, 0, limit)
	distinct := make(map[string]struct{}, limit)
	for _, result := range results[:limit] {
		titles = append(titles, result.Title)
		distinct[result.Title] = struct{}{}
	}
	if len(distinct) < 2 {
		return nil
	}

	return []Conflict{{
		Type:        ConflictAmbiguousName,
		Description: "Multiple companies found with similar names",
		Options:     titles,
	}}
}

// pickBestMatch fuzzy-matches the query against result titles; falls back to
// the first result when scoring produces nothing.
func pickBestMatch(query string, results []searchResult) (searchResult, int) {
	best := results[0]
	bestScore := 0
	for _, result := range results {
		score := fuzzy.WRatio(query, result.Title)
		if score > bestScore {
			best = result
			bestScore = score
		}
	}
	return best, bestScore
}
