package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/jobinsight/internal/scrape"
)

// HTTPStatus returns the appropriate HTTP status code for a scrape error.
// Unsupported boards are the client's mistake; fetch and parse failures are
// upstream problems.
func HTTPStatus(err error) int {
	var unsupported *scrape.UnsupportedSourceError
	var fetch *scrape.FetchError
	var parse *scrape.ParseError

	switch {
	case errors.As(err, &unsupported):
		return http.StatusUnprocessableEntity
	case errors.As(err, &fetch), errors.As(err, &parse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
