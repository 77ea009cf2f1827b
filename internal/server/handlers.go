package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/jordan/resume-coach/internal/db"
	"github.com/jordan/resume-coach/internal/fetch"
	"github.com/jordan/resume-coach/internal/gaps"
	"github.com/jordan/resume-coach/internal/schemas"
	"github.com/jordan/resume-coach/internal/scoring"
	"github.com/jordan/resume-coach/internal/types"
)

// checklistRequest is the POST /v1/gap-checklist body. ResumeText is accepted
// for forward compatibility but not used by the generator.
type checklistRequest struct {
	ScoreBreakdown *types.MatchScoreBreakdown `json:"scoreBreakdown"`
	Benchmark      *types.BenchmarkCandidate  `json:"benchmark"`
	ResumeText     string                     `json:"resumeText"`
}

// checklistEnvelope is the response shape shared by success and error cases.
// Checklist is null on error, never an empty array.
type checklistEnvelope struct {
	Success           bool              `json:"success"`
	Checklist         []types.GapAction `json:"checklist"`
	TotalGaps         int               `json:"totalGaps"`
	HighPriorityCount int               `json:"highPriorityCount"`
	Metrics           *checklistMetrics `json:"metrics,omitempty"`
	Error             string            `json:"error,omitempty"`
}

type checklistMetrics struct {
	ExecutionTimeMs int64 `json:"executionTimeMs"`
}

// envelopeError writes the standard failure envelope.
func (s *Server) envelopeError(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, checklistEnvelope{
		Success: false,
		Error:   message,
	})
}

// handleGapChecklist generates the gap checklist from a precomputed score
// breakdown and benchmark profile. No AI calls happen here.
func (s *Server) handleGapChecklist(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.envelopeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if err := schemas.ValidateChecklistRequest(body); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			s.envelopeError(w, http.StatusBadRequest, validationErr.Error())
			return
		}
		s.envelopeError(w, http.StatusBadRequest, "request body is not valid JSON")
		return
	}

	var req checklistRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.envelopeError(w, http.StatusBadRequest, "failed to decode request body")
		return
	}

	checklist, err := gaps.BuildChecklist(req.ScoreBreakdown, req.Benchmark)
	if err != nil {
		if errors.Is(err, gaps.ErrMissingCategories) || errors.Is(err, gaps.ErrMissingBenchmark) {
			s.envelopeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("checklist generation failed: %v", err)
		s.envelopeError(w, http.StatusInternalServerError, "unexpected error occurred")
		return
	}

	s.jsonResponse(w, http.StatusOK, checklistEnvelope{
		Success:           true,
		Checklist:         checklist.Items,
		TotalGaps:         checklist.TotalGaps,
		HighPriorityCount: checklist.HighPriorityCount,
		Metrics:           &checklistMetrics{ExecutionTimeMs: time.Since(start).Milliseconds()},
	})
}

// scoreRequest is the POST /v1/score body.
type scoreRequest struct {
	JDMatch           int `json:"jdMatch" validate:"min=0,max=100"`
	IndustryBenchmark int `json:"industryBenchmark" validate:"min=0,max=100"`
	ATSCompliance     int `json:"atsCompliance" validate:"min=0,max=100"`
	HumanVoice        int `json:"humanVoice" validate:"min=0,max=100"`
}

type scoreResponse struct {
	Success bool            `json:"success"`
	Summary scoring.Summary `json:"summary"`
}

// handleScore computes the weighted overall score, tier, and next-tier
// progress from four sub-scores.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to decode request body")
		return
	}

	if err := s.validate.Struct(req); err != nil {
		valErr := &ErrValidation{Message: "sub-scores must be between 0 and 100"}
		s.errorResponse(w, HTTPStatus(valErr), valErr.Error())
		return
	}

	summary := scoring.Summarize(scoring.SubScores{
		JDMatch:           req.JDMatch,
		IndustryBenchmark: req.IndustryBenchmark,
		ATSCompliance:     req.ATSCompliance,
		HumanVoice:        req.HumanVoice,
	})
	s.jsonResponse(w, http.StatusOK, scoreResponse{Success: true, Summary: summary})
}

// analyzeRequest is the POST /v1/analyze body. Exactly one of JobText or
// JobURL must be provided.
type analyzeRequest struct {
	ResumeText string `json:"resumeText" validate:"required"`
	JobText    string `json:"jobText"`
	JobURL     string `json:"jobUrl"`
	Save       bool   `json:"save"`
}

type analyzeResponse struct {
	Success   bool                       `json:"success"`
	ID        *uuid.UUID                 `json:"id,omitempty"`
	Summary   scoring.Summary            `json:"summary"`
	Breakdown *types.MatchScoreBreakdown `json:"breakdown"`
	Benchmark *types.BenchmarkCandidate  `json:"benchmark"`
	Checklist *gaps.Checklist            `json:"checklist"`
}

// handleAnalyze runs the full pipeline: AI extraction of the score breakdown
// and benchmark, weighted scoring, and checklist generation. With save=true
// and a database configured, the result is persisted.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if s.analyzer == nil {
		err := &ErrAnalyzerUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to decode request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		valErr := &ErrValidation{Message: "resumeText is required"}
		s.errorResponse(w, HTTPStatus(valErr), valErr.Error())
		return
	}
	if (req.JobText == "") == (req.JobURL == "") {
		valErr := &ErrValidation{Message: "exactly one of jobText or jobUrl is required"}
		s.errorResponse(w, HTTPStatus(valErr), valErr.Error())
		return
	}

	jobText := req.JobText
	if req.JobURL != "" {
		fetched, err := s.fetchJobPosting(r.Context(), req.JobURL)
		if err != nil {
			valErr := &ErrValidation{Message: err.Error()}
			s.errorResponse(w, HTTPStatus(valErr), valErr.Error())
			return
		}
		jobText = fetched
	}

	breakdown, benchmark, err := s.analyzer.Analyze(r.Context(), req.ResumeText, jobText)
	if err != nil {
		log.Printf("analysis failed: %v", err)
		s.errorResponse(w, http.StatusBadGateway, "analysis failed")
		return
	}

	checklist, err := gaps.BuildChecklist(breakdown, benchmark)
	if err != nil {
		log.Printf("checklist generation failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "unexpected error occurred")
		return
	}

	summary := scoring.Summarize(subScoresFromBreakdown(breakdown.Categories))

	resp := analyzeResponse{
		Success:   true,
		Summary:   summary,
		Breakdown: breakdown,
		Benchmark: benchmark,
		Checklist: checklist,
	}

	if req.Save {
		if s.db == nil {
			err := &ErrStorageUnavailable{}
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		id, err := s.db.SaveAnalysis(r.Context(), benchmark.RoleTitle, summary, breakdown, benchmark, checklist)
		if err != nil {
			log.Printf("failed to save analysis: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, "failed to save analysis")
			return
		}
		resp.ID = &id
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// fetchJobPosting retrieves a posting URL and reduces it to clean text.
func (s *Server) fetchJobPosting(ctx context.Context, url string) (string, error) {
	return fetch.JobPosting(ctx, url)
}

// subScoresFromBreakdown maps the four breakdown categories onto the weighted
// model's inputs: keywords drive the JD match, experience drives the industry
// benchmark, and accomplishment quality stands in for human voice.
func subScoresFromBreakdown(categories *types.ScoreCategories) scoring.SubScores {
	return scoring.SubScores{
		JDMatch:           categories.Keywords.Score,
		IndustryBenchmark: categories.Experience.Score,
		ATSCompliance:     categories.ATSCompliance.Score,
		HumanVoice:        categories.Accomplishments.Score,
	}
}

// handleListAnalyses lists recent stored analyses.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrStorageUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			valErr := &ErrValidation{Message: "limit must be a positive integer"}
			s.errorResponse(w, HTTPStatus(valErr), valErr.Error())
			return
		}
		limit = parsed
	}

	summaries, err := s.db.ListAnalyses(r.Context(), limit)
	if err != nil {
		log.Printf("failed to list analyses: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to list analyses")
		return
	}
	if summaries == nil {
		summaries = []db.AnalysisSummary{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"analyses": summaries})
}

// handleGetAnalysis fetches a stored analysis by ID.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrStorageUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		valErr := &ErrValidation{Message: "invalid analysis ID"}
		s.errorResponse(w, HTTPStatus(valErr), valErr.Error())
		return
	}

	analysis, err := s.db.GetAnalysis(r.Context(), id)
	if err != nil {
		log.Printf("failed to get analysis: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to get analysis")
		return
	}
	if analysis == nil {
		notFound := &ErrAnalysisNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleDeleteAnalysis removes a stored analysis.
func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrStorageUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		valErr := &ErrValidation{Message: "invalid analysis ID"}
		s.errorResponse(w, HTTPStatus(valErr), valErr.Error())
		return
	}

	deleted, err := s.db.DeleteAnalysis(r.Context(), id)
	if err != nil {
		log.Printf("failed to delete analysis: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to delete analysis")
		return
	}
	if !deleted {
		notFound := &ErrAnalysisNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]bool{"deleted": true})
}
