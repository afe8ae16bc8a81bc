package analysis

import (
	"testing"

	"github.com/jonathan/placement-suite/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCompanyIntel_BlankNameIsNil(t *testing.T) {
	assert.Nil(t, BuildCompanyIntel("", "fintech"))
	assert.Nil(t, BuildCompanyIntel("   ", "fintech"))
}

func TestBuildCompanyIntel_Enterprise(t *testing.T) {
	intel := BuildCompanyIntel("  Amazon India ", "Build payment systems")
	require.NotNil(t, intel)
	assert.Equal(t, types.CompanyIntel{
		CompanyName:        "Amazon India",
		Industry:           "Financial Services",
		SizeCategory:       "Enterprise (2000+)",
		Size:               types.SizeEnterprise,
		TypicalHiringFocus: "Structured DSA and core CS fundamentals; standardized online tests and technical rounds; emphasis on problem-solving patterns and system design basics.",
	}, *intel)
}

func TestBuildCompanyIntel_Startup(t *testing.T) {
	intel := BuildCompanyIntel("Acme Labs", "")
	require.NotNil(t, intel)
	assert.Equal(t, types.SizeStartup, intel.Size)
	assert.Equal(t, "Startup (<200)", intel.SizeCategory)
	assert.Equal(t, DefaultIndustry, intel.Industry)
	assert.Equal(t, HiringFocus(types.SizeStartup), intel.TypicalHiringFocus)
}

func TestClassifySize(t *testing.T) {
	tests := []struct {
		name string
		want types.CompanySize
	}{
		{"TCS", types.SizeEnterprise},
		{"Goldman Sachs Bengaluru", types.SizeEnterprise},
		{"tech mahindra", types.SizeEnterprise},
		{"Razorpay", types.SizeStartup},
		{"", types.SizeStartup},
		// Substring matching: "ey" hits inside unrelated names.
		{"Keyvalue Software", types.SizeEnterprise},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySize(tt.name))
		})
	}
}

func TestClassifySize_NeverMid(t *testing.T) {
	for _, name := range []string{"Freshworks", "Zoho", "Postman", "Mid-size Corp"} {
		assert.NotEqual(t, types.SizeMid, ClassifySize(name))
	}
}

func TestGuessIndustry(t *testing.T) {
	tests := []struct {
		jd, company, want string
	}{
		{"cloud banking platform", "", "Financial Services"},
		{"clinical trials data", "", "Healthcare"},
		{"online marketplace", "", "E‑commerce / Retail"},
		{"B2B SaaS", "", "Enterprise Software"},
		{"", "Byju's Learning", "Education Technology"},
		{"electric vehicle firmware", "", "Automotive / Mobility"},
		{"internal tools", "Acme", "Technology Services"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GuessIndustry(tt.jd, tt.company), tt.jd+"|"+tt.company)
	}
}

func TestHiringFocus_MidAndUnknown(t *testing.T) {
	assert.Equal(t, "Balance of fundamentals and hands-on skills; practical coding and system discussion; culture and ownership fit.", HiringFocus(types.SizeMid))
	assert.Equal(t, HiringFocus(types.SizeStartup), HiringFocus("unknown"))
}
