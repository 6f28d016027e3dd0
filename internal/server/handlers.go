//-------------------------------------------------------------------------
//
// METEOR Scorer
//
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mtqe/meteor/internal/solve"
)

// HealthResponse is the response for the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// ScoreRequest is one hypothesis/reference pair to score.
type ScoreRequest struct {
	Hypothesis string `json:"hypothesis"`
	Reference  string `json:"reference"`
}

// BatchRequest scores many pairs in one call.
type BatchRequest struct {
	Pairs []ScoreRequest `json:"pairs"`
}

// BatchEntry is the outcome for one pair of a batch.
type BatchEntry struct {
	Score float64 `json:"score"`
	Error string  `json:"error,omitempty"`
}

// BatchResponse is the response for the batch endpoint.
type BatchResponse struct {
	Results      []BatchEntry `json:"results"`
	MacroAverage float64      `json:"macro_average"`
	Scored       int          `json:"scored"`
	Failed       int          `json:"failed"`
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// handleHealth handles the GET /v1/health endpoint.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

// handleScore handles the POST /v1/score endpoint. The response is the
// full score breakdown including the chosen alignment.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "INVALID_REQUEST",
			"invalid request body: "+err.Error())
		return
	}

	result, err := s.scorer.ScoreDetailed(r.Context(), req.Hypothesis, req.Reference)
	if err != nil {
		s.respondScoringError(w, r, err)
		return
	}

	s.respondJSON(w, http.StatusOK, result)
}

// handleScoreBatch handles the POST /v1/score/batch endpoint. Pairs
// that fail are reported individually; the rest still score.
func (s *Server) handleScoreBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "INVALID_REQUEST",
			"invalid request body: "+err.Error())
		return
	}

	if len(req.Pairs) == 0 {
		s.respondError(w, http.StatusBadRequest, "INVALID_REQUEST",
			"at least one pair is required")
		return
	}

	hypotheses := make([]string, len(req.Pairs))
	references := make([]string, len(req.Pairs))
	for i, pair := range req.Pairs {
		hypotheses[i] = pair.Hypothesis
		references[i] = pair.Reference
	}

	corpus, err := s.scorer.ScoreCorpus(r.Context(), hypotheses, references)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "SCORING_ERROR", err.Error())
		return
	}

	resp := BatchResponse{
		Results:      make([]BatchEntry, len(corpus.Pairs)),
		MacroAverage: corpus.MacroAverage,
		Scored:       corpus.Scored,
		Failed:       corpus.Failed,
	}
	for i, pair := range corpus.Pairs {
		resp.Results[i] = BatchEntry{Score: pair.Score}
		if pair.Err != nil {
			resp.Results[i].Error = pair.Err.Error()
		}
	}

	s.respondJSON(w, http.StatusOK, resp)
}

// respondScoringError maps scoring errors to HTTP statuses.
func (s *Server) respondScoringError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("scoring failed", "error", err)

	switch {
	case errors.Is(err, solve.ErrTimeout):
		s.respondError(w, http.StatusGatewayTimeout, "SOLVER_TIMEOUT", err.Error())
	case errors.Is(err, solve.ErrInfeasible):
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	default:
		s.respondError(w, http.StatusInternalServerError, "SCORING_ERROR", err.Error())
	}
}

// respondJSON sends a JSON response.
func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

// respondError sends an error response.
func (s *Server) respondError(w http.ResponseWriter, status int, code, message string) {
	s.respondJSON(w, status, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}
