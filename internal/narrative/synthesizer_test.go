package narrative

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobinsight/internal/types"
)

// zeroSource always returns 0, pinning every random choice to the first
// option.
type zeroSource struct{}

func (zeroSource) IntN(int) int { return 0 }

func TestSynthesize_ListLengths(t *testing.T) {
	s := NewWithSource(zeroSource{})
	problems, impacts, caseStudies, conclusion, actions := s.Synthesize([]string{"Go", "Rust"})

	assert.Len(t, problems, 6)
	assert.Len(t, impacts, 6)
	assert.Len(t, caseStudies, 8)
	assert.Len(t, actions, 5)
	assert.NotEmpty(t, conclusion)
}

func TestSynthesize_KeywordsLandInOrder(t *testing.T) {
	s := NewWithSource(zeroSource{})
	problems, _, _, _, actions := s.Synthesize([]string{"Go", "Rust"})

	// First keyword fills the first slotted problem template.
	require.Equal(t, "Technical Expertise Gap", problems[0].Title)
	assert.Contains(t, problems[0].Description, "Go")
	// Second keyword fills the next slotted template.
	require.Equal(t, "Innovation Acceleration", problems[1].Title)
	assert.Contains(t, problems[1].Description, "Rust")

	// Action titles carry slots too.
	assert.Equal(t, "Create a Go portfolio", actions[0].Title)
	assert.Equal(t, "Prepare Rust case study", actions[1].Title)
}

func TestSynthesize_TitlesAreDistinct(t *testing.T) {
	s := NewWithSource(zeroSource{})
	problems, impacts, caseStudies, _, actions := s.Synthesize([]string{"Go"})

	for _, list := range [][]types.Entry{problems, impacts, caseStudies, actions} {
		seen := map[string]bool{}
		for _, e := range list {
			assert.False(t, seen[e.Title], "duplicate title %q", e.Title)
			seen[e.Title] = true
		}
	}
}

func TestSynthesize_EmptyKeywords(t *testing.T) {
	s := NewWithSource(zeroSource{})
	problems, impacts, caseStudies, conclusion, actions := s.Synthesize(nil)

	assert.Len(t, problems, 6)
	assert.Len(t, impacts, 6)
	assert.Len(t, caseStudies, 8)
	assert.Len(t, actions, 5)

	// Slots are filled with the empty string; no raw placeholders leak out.
	for _, list := range [][]types.Entry{problems, impacts, caseStudies, actions} {
		for _, e := range list {
			assert.NotContains(t, e.Title, "{keyword")
			assert.NotContains(t, e.Description, "{keyword")
		}
	}
	assert.NotContains(t, conclusion, "{keyword")
}

func TestSynthesize_Deterministic(t *testing.T) {
	a := NewWithSource(zeroSource{})
	b := NewWithSource(zeroSource{})

	ap, ai, ac, acl, aa := a.Synthesize([]string{"Python", "AWS"})
	bp, bi, bc, bcl, ba := b.Synthesize([]string{"Python", "AWS"})

	assert.Equal(t, ap, bp)
	assert.Equal(t, ai, bi)
	assert.Equal(t, ac, bc)
	assert.Equal(t, acl, bcl)
	assert.Equal(t, aa, ba)
}

func TestConclude_FillsBothSlots(t *testing.T) {
	s := NewWithSource(zeroSource{})
	_, _, _, conclusion, _ := s.Synthesize([]string{"Go"})

	assert.Contains(t, conclusion, "Go")
	assert.NotContains(t, conclusion, "{keyword1}")
	assert.NotContains(t, conclusion, "{keyword2}")
}
