// Package match scores a resume against an analyzed job posting: it
// re-derives a job-side keyword set from the analysis, extracts resume-side
// keywords, and reports the overlap plus advisory guidance. Scoring never
// fails; degenerate input degrades to empty lists and a zero score.
package match

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/jobinsight/internal/types"
	"github.com/jonathan/jobinsight/internal/vocabulary"
)

// Score compares a resume against a job analysis and produces the match
// report. The keyword match test is bidirectional case-insensitive substring
// containment: permissive by design, so "AWS" in a job matches "AWS Lambda"
// in a resume, but abbreviation pairs like "AWS" / "Amazon Web Services" do
// not match (there is no synonym table).
func Score(job *types.JobAnalysis, resumeText string) *types.ResumeAnalysis {
	jobKeywords := deriveJobKeywords(job)
	resumeKeywords := deriveResumeKeywords(resumeText)

	var matched, missing []string
	for _, kw := range jobKeywords {
		if keywordMatched(kw, resumeKeywords) {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	score := 0
	if len(jobKeywords) > 0 {
		score = int(math.Round(100 * float64(len(matched)) / float64(len(jobKeywords))))
	}

	return &types.ResumeAnalysis{
		MatchScore: score,
		KeywordMatches: types.KeywordMatches{
			Matched: matched,
			Missing: missing,
		},
		StrengthAreas:      strengthAreas(matched, resumeText),
		ImprovementAreas:   improvementAreas(missing),
		ATSRecommendations: atsRecommendations(resumeText),
	}
}

// keywordMatched reports whether some resume keyword contains the job
// keyword, or is contained by it, ignoring case.
func keywordMatched(jobKeyword string, resumeKeywords []string) bool {
	jk := strings.ToLower(jobKeyword)
	for _, rk := range resumeKeywords {
		lk := strings.ToLower(rk)
		if strings.Contains(lk, jk) || strings.Contains(jk, lk) {
			return true
		}
	}
	return false
}

// deriveJobKeywords rebuilds the job-side keyword set from the analysis:
// title words and problem/impact title words filtered through the
// relevant-word predicate, plus technical terms mined from descriptions.
func deriveJobKeywords(job *types.JobAnalysis) []string {
	if job == nil {
		return nil
	}

	set := newOrderedSet()

	for _, word := range strings.Fields(job.JobTitle) {
		if w, ok := relevantWord(word); ok {
			set.add(w)
		}
	}

	for _, entries := range [][]types.Entry{job.Problems, job.Impacts} {
		for _, e := range entries {
			for _, word := range strings.Fields(e.Title) {
				if w, ok := relevantWord(word); ok {
					set.add(w)
				}
			}
			for _, term := range technicalTerms(e.Description) {
				set.add(term)
			}
		}
	}

	return set.order
}

// deriveResumeKeywords extracts the resume-side keyword set: technical terms
// plus education and seniority markers found by plain substring search.
func deriveResumeKeywords(resumeText string) []string {
	set := newOrderedSet()
	for _, term := range technicalTerms(resumeText) {
		set.add(term)
	}

	lower := strings.ToLower(resumeText)
	for _, marker := range vocabulary.Education {
		if strings.Contains(lower, strings.ToLower(marker)) {
			set.add(marker)
		}
	}
	for _, marker := range vocabulary.Seniority {
		if strings.Contains(lower, strings.ToLower(marker)) {
			set.add(marker)
		}
	}
	return set.order
}

var (
	wordPunct    = regexp.MustCompile("[.,/#!$%^&*;:{}=\\-_`~()]")
	alphabetic   = regexp.MustCompile(`^[a-zA-Z]+$`)
	leadInCohort = buildLeadInRules()
)

// relevantWord keeps words whose punctuation-stripped form is longer than
// three characters, purely alphabetic and not a stopword. The word itself is
// returned unstripped, so punctuated terms like "CI/CD" survive intact.
func relevantWord(word string) (string, bool) {
	cleaned := wordPunct.ReplaceAllString(word, "")
	if len(cleaned) <= 3 || vocabulary.Stopwords[strings.ToLower(cleaned)] || !alphabetic.MatchString(cleaned) {
		return "", false
	}
	return word, true
}

func buildLeadInRules() []*regexp.Regexp {
	rules := make([]*regexp.Regexp, 0, len(vocabulary.LeadInPhrases))
	for _, phrase := range vocabulary.LeadInPhrases {
		rules = append(rules, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(phrase)+`\s+([\w\s,]+?)(?:\.|,|;|\n)`))
	}
	return rules
}

var skillListSplitter = regexp.MustCompile(`,|\sand\s`)

// technicalTerms scans text for vocabulary terms by case-insensitive
// containment, then collects free-text skills introduced by lead-in phrases.
func technicalTerms(text string) []string {
	set := newOrderedSet()
	lower := strings.ToLower(text)

	for _, term := range vocabulary.Technical {
		if strings.Contains(lower, strings.ToLower(term)) {
			set.add(term)
		}
	}

	for _, re := range leadInCohort {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			for _, skill := range skillListSplitter.Split(m[1], -1) {
				skill = strings.TrimSpace(skill)
				if len(skill) > 2 {
					set.add(skill)
				}
			}
		}
	}

	return set.order
}

// strengthAreas builds advisory strength notes from the matched keywords and
// surface cues in the resume text, padding with generic notes up to three.
func strengthAreas(matched []string, resumeText string) []string {
	var strengths []string
	lower := strings.ToLower(resumeText)

	if len(matched) >= 3 {
		strengths = append(strengths, fmt.Sprintf("Strong alignment with %s requirements.", strings.Join(matched[:3], ", ")))
	}
	if strings.Contains(lower, "experience") && strings.Contains(lower, "year") {
		strengths = append(strengths, "Your experience level appears to match the job requirements.")
	}
	if strings.Contains(lower, "degree") || strings.Contains(lower, "bachelor") ||
		strings.Contains(lower, "master") || strings.Contains(lower, "phd") {
		strengths = append(strengths, "Your educational background is highlighted appropriately.")
	}
	if strings.Contains(lower, "achieve") || strings.Contains(lower, "award") || strings.Contains(lower, "recognition") {
		strengths = append(strengths, "Your achievements and recognitions stand out positively.")
	}

	if len(strengths) < 3 {
		strengths = append(strengths, "Your resume contains relevant industry terminology.")
		if len(strengths) < 3 {
			strengths = append(strengths, "Your skills section aligns with several job requirements.")
		}
	}

	return strengths
}

// improvementAreas names up to three missing keywords, then standing advice.
func improvementAreas(missing []string) []string {
	var improvements []string

	if len(missing) > 0 {
		mention := missing
		if len(mention) > 3 {
			mention = mention[:3]
		}
		improvements = append(improvements, fmt.Sprintf("Consider adding keywords like %s to better match the job requirements.", strings.Join(mention, ", ")))
	}

	improvements = append(improvements,
		"Quantify your achievements with specific metrics and results to demonstrate impact.",
		"Ensure your resume clearly shows the connection between your experience and this specific role.",
		"Tailor your professional summary to directly address the core problems this role aims to solve.",
	)

	return improvements
}

const (
	resumeTooLongWords  = 1000
	resumeTooBriefWords = 300
)

// atsRecommendations flags length and formatting issues that trip up
// applicant tracking systems, then appends standing advice.
func atsRecommendations(resumeText string) []string {
	var recs []string

	wordCount := len(strings.Fields(resumeText))
	if wordCount > resumeTooLongWords {
		recs = append(recs, "Your resume is quite lengthy. Consider condensing it to 1-2 pages for better ATS processing.")
	} else if wordCount < resumeTooBriefWords {
		recs = append(recs, "Your resume may be too brief. Consider adding more relevant details about your experience.")
	}

	if strings.ContainsAny(resumeText, "•►■") {
		recs = append(recs, "Some special characters may not parse well in ATS systems. Consider using simple bullet points.")
	}

	recs = append(recs,
		"Use standard section headings like 'Experience,' 'Education,' and 'Skills' for better ATS recognition.",
		"Incorporate exact phrases from the job description where they honestly reflect your experience.",
		"Avoid using tables, headers/footers, or complex formatting that may confuse ATS systems.",
	)

	return recs
}

// orderedSet deduplicates keywords case-insensitively while keeping
// discovery order.
type orderedSet struct {
	seen  map[string]bool
	order []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]bool)}
}

func (s *orderedSet) add(kw string) {
	key := strings.ToLower(kw)
	if s.seen[key] {
		return
	}
	s.seen[key] = true
	s.order = append(s.order, kw)
}
