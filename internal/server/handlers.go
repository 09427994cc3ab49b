package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/session"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// maxUploadBytes caps the accepted resume size at 10 MiB.
const maxUploadBytes = 10 << 20

// AnalyzeResponse represents the response for /analyze
type AnalyzeResponse struct {
	SessionID string                `json:"session_id"`
	Filename  string                `json:"filename,omitempty"`
	Result    *types.AnalysisResult `json:"result"`
}

// RecommendRequest represents the request body for /recommendations
type RecommendRequest struct {
	MissingSkills []string `json:"missing_skills" validate:"required,min=1,dive,required"`
	Limit         int      `json:"limit,omitempty" validate:"omitempty,min=1,max=50"`
}

// RecommendResponse represents the response for /recommendations
type RecommendResponse struct {
	Courses []types.CourseRecord `json:"courses"`
	Dropped int                  `json:"dropped,omitempty"`
}

// handleAnalyze accepts a resume PDF as multipart form data, runs the
// full analysis, and stores the result as a retrievable session.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Form file 'resume' is required")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read upload: "+err.Error())
		return
	}

	result, err := s.analyzer.AnalyzeBytes(r.Context(), data)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	sess := session.New(header.Filename, result, s.sessionTTL)
	if err := s.sessions.Save(r.Context(), sess); err != nil {
		// The analysis itself succeeded; log the persistence failure and
		// return the result without a retrievable session.
		log.Printf("Failed to persist session %s: %v", sess.ID, err)
		s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
			Filename: header.Filename,
			Result:   result,
		})
		return
	}

	s.jsonResponse(w, http.StatusCreated, AnalyzeResponse{
		SessionID: sess.ID.String(),
		Filename:  header.Filename,
		Result:    result,
	})
}

// handleGetSession returns a stored analysis session
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid session ID format")
		return
	}

	sess, err := s.sessions.Get(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get session: "+err.Error())
		return
	}
	if sess == nil {
		notFound := &ErrSessionNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, sess)
}

// handleDeleteSession removes a stored analysis session
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid session ID format")
		return
	}

	if err := s.sessions.Delete(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete session: "+err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleRecommendations ranks courses for an arbitrary missing-skill set
// without running a full analysis.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validate.Struct(req); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) && len(invalid) > 0 {
			first := invalid[0]
			verr := &ErrValidation{Field: first.Field(), Message: "failed '" + first.Tag() + "' validation"}
			s.errorResponse(w, HTTPStatus(verr), verr.Error())
			return
		}
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	courses, dropped := s.analyzer.Recommend(req.MissingSkills, req.Limit)
	s.jsonResponse(w, http.StatusOK, RecommendResponse{
		Courses: courses,
		Dropped: dropped,
	})
}

// handleListRoles returns every role in the taxonomy
func (s *Server) handleListRoles(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string][]string{
		"roles": s.analyzer.Taxonomy().Roles(),
	})
}

// handleRoleSkills returns the required skills for one role
func (s *Server) handleRoleSkills(w http.ResponseWriter, r *http.Request) {
	role := r.PathValue("role")
	required, ok := s.analyzer.Taxonomy().Required(role)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "role not found: "+role)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"role":   role,
		"skills": required,
	})
}

// handleGetCourse returns one cleaned course record by corpus index
func (s *Server) handleGetCourse(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid course index")
		return
	}

	record, ok := s.analyzer.Courses().Get(idx)
	if !ok {
		notFound := &ErrCourseNotFound{Index: idx}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}
