package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/jobinsight/internal/scrape"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "unsupported source",
			err:  &scrape.UnsupportedSourceError{URL: "u", Supported: []string{"linkedin.com"}},
			want: http.StatusUnprocessableEntity,
		},
		{
			name: "fetch failure",
			err:  &scrape.FetchError{URL: "u", StatusCode: 403},
			want: http.StatusBadGateway,
		},
		{
			name: "parse failure",
			err:  &scrape.ParseError{Site: "LinkedIn"},
			want: http.StatusBadGateway,
		},
		{
			name: "wrapped fetch failure",
			err:  fmt.Errorf("scraping: %w", &scrape.FetchError{URL: "u", NoResponse: true}),
			want: http.StatusBadGateway,
		},
		{
			name: "unknown error",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
