// Package analysis turns a job description into a readiness report: detected skills,
// company intel, interview round mapping, a preparation checklist, a seven-day plan,
// likely questions and a readiness score.
package analysis

import (
	"strings"

	"github.com/jonathan/placement-suite/internal/types"
)

// KnownEnterprises are matched as substrings of the lowercased company name.
var KnownEnterprises = []string{
	"amazon", "infosys", "tcs", "wipro", "accenture", "google", "microsoft",
	"meta", "apple", "capgemini", "cognizant", "hcl", "tech mahindra",
	"oracle", "ibm", "dell", "cisco", "salesforce", "adobe", "netflix",
	"goldman sachs", "jpmorgan", "morgan stanley", "deloitte", "ey", "kpmg", "pwc",
}

type industryGroup struct {
	keywords []string
	industry string
}

// industryGroups are checked in order; the first hit wins.
var industryGroups = []industryGroup{
	{[]string{"fintech", "banking", "finance", "payment"}, "Financial Services"},
	{[]string{"healthcare", "medical", "pharma", "clinical"}, "Healthcare"},
	{[]string{"ecommerce", "retail", "marketplace", "shopping"}, "E‑commerce / Retail"},
	{[]string{"saas", "cloud", "enterprise software"}, "Enterprise Software"},
	{[]string{"edtech", "education", "learning"}, "Education Technology"},
	{[]string{"automotive", "vehicle", "mobility"}, "Automotive / Mobility"},
}

// DefaultIndustry is used when no industry keyword matches.
const DefaultIndustry = "Technology Services"

var sizeLabels = map[types.CompanySize]string{
	types.SizeEnterprise: "Enterprise (2000+)",
	types.SizeMid:        "Mid-size (200–2000)",
	types.SizeStartup:    "Startup (<200)",
}

var hiringFocus = map[types.CompanySize]string{
	types.SizeEnterprise: "Structured DSA and core CS fundamentals; standardized online tests and technical rounds; emphasis on problem-solving patterns and system design basics.",
	types.SizeMid:        "Balance of fundamentals and hands-on skills; practical coding and system discussion; culture and ownership fit.",
	types.SizeStartup:    "Practical problem-solving and stack depth; ability to ship and iterate; strong fit with product and team.",
}

// BuildCompanyIntel classifies a company from its name and the JD text. It returns nil
// when the name is blank. The classifier only yields enterprise or startup.
func BuildCompanyIntel(companyName, jdText string) *types.CompanyIntel {
	name := strings.TrimSpace(companyName)
	if name == "" {
		return nil
	}
	size := ClassifySize(name)
	return &types.CompanyIntel{
		CompanyName:        name,
		Industry:           GuessIndustry(jdText, name),
		SizeCategory:       sizeLabels[size],
		Size:               size,
		TypicalHiringFocus: HiringFocus(size),
	}
}

// ClassifySize returns SizeEnterprise when the name contains a known large employer.
func ClassifySize(companyName string) types.CompanySize {
	normalized := strings.ToLower(strings.TrimSpace(companyName))
	if normalized == "" {
		return types.SizeStartup
	}
	for _, name := range KnownEnterprises {
		if strings.Contains(normalized, name) {
			return types.SizeEnterprise
		}
	}
	return types.SizeStartup
}

// GuessIndustry scans the JD text and company name for industry keywords.
func GuessIndustry(jdText, companyName string) string {
	combined := strings.ToLower(jdText) + " " + strings.ToLower(companyName)
	for _, g := range industryGroups {
		for _, k := range g.keywords {
			if strings.Contains(combined, k) {
				return g.industry
			}
		}
	}
	return DefaultIndustry
}

// HiringFocus returns the fixed hiring-focus text of a size bucket.
func HiringFocus(size types.CompanySize) string {
	if f, ok := hiringFocus[size]; ok {
		return f
	}
	return hiringFocus[types.SizeStartup]
}
