package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompany_ExplicitMarker(t *testing.T) {
	text := "Company: Acme Corp.\nWe build everything."
	assert.Equal(t, "Acme Corp", Company(text))
}

func TestCompany_JoinPhrase(t *testing.T) {
	text := "Come join Stripe as a payments specialist."
	assert.Equal(t, "Stripe", Company(text))
}

func TestCompany_LineStartHeader(t *testing.T) {
	text := "Tectonic is a leading supplier of gadgets."
	assert.Equal(t, "Tectonic", Company(text))
}

func TestCompany_DescriptionOpening(t *testing.T) {
	// Lowercase start dodges the header rule; the description tier is
	// case-insensitive and still catches it.
	text := "globex is a leading supplier of widgets."
	assert.Equal(t, "globex", Company(text))
}

func TestCompany_DenylistRejectsJobBoards(t *testing.T) {
	// "LinkedIn" sits where a company name would, but is a job board.
	assert.Equal(t, CompanyFallback, Company("Company: LinkedIn.\nGreat place."))
}

func TestCompany_Fallback(t *testing.T) {
	assert.Equal(t, CompanyFallback, Company(""))
	assert.Equal(t, CompanyFallback, Company("no names here at all"))
}
