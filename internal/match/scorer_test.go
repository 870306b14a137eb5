package match

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobinsight/internal/types"
)

func sampleJob() *types.JobAnalysis {
	return &types.JobAnalysis{
		JobTitle: "Senior Python Developer",
		Problems: []types.Entry{
			{Title: "Expertise Gap", Description: "Python and AWS expertise."},
		},
	}
}

func TestScore_MatchedAndMissing(t *testing.T) {
	resume := "Senior engineer with 5 years of experience in Python, AWS and Docker. Bachelor of Science."
	result := Score(sampleJob(), resume)
	require.NotNil(t, result)

	assert.Equal(t, []string{"Senior", "Python", "AWS"}, result.KeywordMatches.Matched)
	assert.Equal(t, []string{"Developer", "Expertise"}, result.KeywordMatches.Missing)
	// 3 of 5 job keywords matched.
	assert.Equal(t, 60, result.MatchScore)
}

func TestScore_Strengths(t *testing.T) {
	resume := "Senior engineer with 5 years of experience in Python, AWS and Docker. Bachelor of Science."
	result := Score(sampleJob(), resume)

	require.Len(t, result.StrengthAreas, 3)
	assert.Equal(t, "Strong alignment with Senior, Python, AWS requirements.", result.StrengthAreas[0])
	assert.Equal(t, "Your experience level appears to match the job requirements.", result.StrengthAreas[1])
	assert.Equal(t, "Your educational background is highlighted appropriately.", result.StrengthAreas[2])
}

func TestScore_Improvements(t *testing.T) {
	resume := "Senior engineer with 5 years of experience in Python, AWS and Docker. Bachelor of Science."
	result := Score(sampleJob(), resume)

	require.NotEmpty(t, result.ImprovementAreas)
	assert.Equal(t, "Consider adding keywords like Developer, Expertise to better match the job requirements.", result.ImprovementAreas[0])
}

func TestScore_ATSBriefResume(t *testing.T) {
	result := Score(sampleJob(), "Short resume with Python.")

	require.NotEmpty(t, result.ATSRecommendations)
	assert.Contains(t, result.ATSRecommendations[0], "too brief")
}

func TestScore_ATSLongResumeAndBullets(t *testing.T) {
	long := strings.Repeat("word ", 1100) + "• Python"
	result := Score(sampleJob(), long)

	assert.Contains(t, result.ATSRecommendations[0], "quite lengthy")
	assert.Contains(t, result.ATSRecommendations[1], "special characters")
}

func TestScore_AllKeywordsMatched(t *testing.T) {
	job := &types.JobAnalysis{JobTitle: "Docker Kubernetes"}
	result := Score(job, "Shipped Docker and Kubernetes platforms.")

	assert.Equal(t, []string{"Docker", "Kubernetes"}, result.KeywordMatches.Matched)
	assert.Empty(t, result.KeywordMatches.Missing)
	assert.Equal(t, 100, result.MatchScore)
}

func TestScore_NilJob(t *testing.T) {
	result := Score(nil, "some resume text")
	require.NotNil(t, result)

	assert.Equal(t, 0, result.MatchScore)
	assert.Empty(t, result.KeywordMatches.Matched)
	assert.Empty(t, result.KeywordMatches.Missing)
}

func TestScore_BidirectionalContainment(t *testing.T) {
	job := &types.JobAnalysis{JobTitle: "Docker Wizard"}
	// "Docker" from the job matches "Docker" found in the resume even though
	// the resume phrases it inside a longer skill mention.
	result := Score(job, "Deep Docker Compose experience and orchestration work.")
	assert.Contains(t, result.KeywordMatches.Matched, "Docker")
}

func TestKeywordMatched(t *testing.T) {
	assert.True(t, keywordMatched("AWS", []string{"aws lambda"}))
	assert.True(t, keywordMatched("aws lambda", []string{"AWS"}))
	assert.False(t, keywordMatched("AWS", []string{"Amazon Web Services"}))
	assert.False(t, keywordMatched("AWS", nil))
}

func TestRelevantWord(t *testing.T) {
	// The predicate runs on the stripped form, but the word comes back raw.
	w, ok := relevantWord("Python,")
	assert.True(t, ok)
	assert.Equal(t, "Python,", w)

	w, ok = relevantWord("CI/CD")
	assert.True(t, ok)
	assert.Equal(t, "CI/CD", w)

	_, ok = relevantWord("the")
	assert.False(t, ok)

	_, ok = relevantWord("Gap")
	assert.False(t, ok, "three-letter words are dropped")

	_, ok = relevantWord("C++")
	assert.False(t, ok, "non-alphabetic words are dropped")
}

func TestScore_PunctuatedTitleWordsKeptVerbatim(t *testing.T) {
	job := &types.JobAnalysis{JobTitle: "CI/CD Wizard"}
	result := Score(job, "Built CI/CD pipelines for years.")

	// "CI/CD" must survive unmangled and match the resume's literal mention.
	assert.Contains(t, result.KeywordMatches.Matched, "CI/CD")
	assert.NotContains(t, result.KeywordMatches.Missing, "CICD")
	assert.Equal(t, 100, result.MatchScore)
}

func TestScore_PunctuatedKeywordsSurfaceInMissing(t *testing.T) {
	job := &types.JobAnalysis{JobTitle: "Time-to-Market Guru"}
	result := Score(job, "nothing relevant here")

	assert.Contains(t, result.KeywordMatches.Missing, "Time-to-Market")
	assert.NotContains(t, result.KeywordMatches.Missing, "TimetoMarket")
}

func TestTechnicalTerms_LeadInPhrases(t *testing.T) {
	// "Helm" is not in the controlled vocabulary; the lead-in phrase scan
	// still picks it up as a free-text skill.
	terms := technicalTerms("Strong knowledge of Terraform and Helm; other duties.")
	assert.Contains(t, terms, "Terraform")
	assert.Contains(t, terms, "Helm")
}
