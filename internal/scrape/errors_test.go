package scrape

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnsupportedSourceError_Message(t *testing.T) {
	err := &UnsupportedSourceError{
		URL:       "https://monster.com/job/1",
		Supported: []string{"linkedin.com", "indeed.com"},
	}
	assert.Equal(t, "unsupported job board. Currently supported: linkedin.com, indeed.com", err.Error())
}

func TestFetchError_Messages(t *testing.T) {
	assert.Equal(t, "failed to fetch job posting. Status: 403",
		(&FetchError{URL: "u", StatusCode: 403}).Error())
	assert.Equal(t, "no response received from job board. The site may be blocking scrapers.",
		(&FetchError{URL: "u", NoResponse: true}).Error())
}

func TestFetchError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &FetchError{URL: "u", NoResponse: true, Cause: cause}
	assert.ErrorIs(t, err, cause)
}

func TestParseError_Message(t *testing.T) {
	cause := errors.New("nil selection")
	err := &ParseError{Site: "LinkedIn", Cause: cause}
	assert.Equal(t, "failed to parse LinkedIn job posting", err.Error())
	assert.ErrorIs(t, err, cause)
}
