package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/jobinsight/internal/types"
)

// SourcesResponse represents the response for /v1/sources
type SourcesResponse struct {
	Sources []string `json:"sources"`
}

// handleAnalyzeJob analyzes raw job posting text
func (s *Server) handleAnalyzeJob(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, s.engine.AnalyzeJobText(req.Text))
}

// handleAnalyzeResume scores a resume against a job analysis
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, s.engine.AnalyzeResume(req.ResumeText, req.JobAnalysis))
}

// handleScrape fetches and parses a job posting URL
func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	var req types.ScrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	posting, err := s.engine.ScrapeAndParse(r.Context(), req.URL)
	if err != nil {
		log.Printf("Scrape failed for %s: %v", req.URL, err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, posting)
}

// handleSources lists the supported job boards
func (s *Server) handleSources(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, SourcesResponse{Sources: s.engine.SupportedSites()})
}
