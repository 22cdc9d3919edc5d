package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/sievelabs/assessrec/recommend"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{Status: "healthy"})
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.validate.Struct(req); err != nil {
		s.writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	if req.TopK == 0 {
		req.TopK = recommend.DefaultTopK
	}

	results, err := s.recommender.Recommend(r.Context(), req.Query, req.TopK)
	if err != nil {
		if errors.Is(err, recommend.ErrEmptyQuery) {
			s.writeError(w, http.StatusBadRequest, "query must not be empty")
			return
		}
		s.logger.Error("recommendation failed", "query", req.Query, "err", err)
		s.writeError(w, http.StatusInternalServerError, "recommendation failed")
		return
	}

	resp := RecommendResponse{RecommendedAssessments: make([]AssessmentResult, 0, len(results))}
	for _, c := range results {
		resp.RecommendedAssessments = append(resp.RecommendedAssessments, toAssessmentResult(c))
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("error encoding response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

// validationMessage flattens the first validation failure into a short
// client-facing message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return "field " + fe.Field() + " is required"
		case "gte", "lte":
			return "field " + fe.Field() + " is out of range"
		}
		return "field " + fe.Field() + " is invalid"
	}
	return "invalid request"
}
