package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/session"
	"github.com/jonathan/resume-analyzer/internal/types"
)

func setupTestServer(t *testing.T) *Server {
	t.Helper()

	csv := "Title,Instructor,Rating,URL,Description\n" +
		"Django Deployment,Ana Ruiz,4.6,https://example.com/django,Complete django web development with git workflow\n" +
		"Data Crunching,Ben Liu,4.4,https://example.com/numpy,Introduction to numpy arrays for data analysis\n" +
		"Office Basics,Erin Walsh,4.1,https://example.com/excel,Spreadsheet formulas for the office\n"
	corpus := filepath.Join(t.TempDir(), "courses.csv")
	require.NoError(t, os.WriteFile(corpus, []byte(csv), 0o644))

	analyzer, err := pipeline.NewAnalyzer(context.Background(), pipeline.Config{
		CoursesPath: corpus,
	})
	require.NoError(t, err)

	s, err := New(Config{Port: 0, Analyzer: analyzer, SessionTTL: time.Hour})
	require.NoError(t, err)
	return s
}

func doRequest(s *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHandleHealth(t *testing.T) {
	s := setupTestServer(t)

	w := doRequest(s, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, float64(3), resp["courses"])
}

func TestHandleListRoles(t *testing.T) {
	s := setupTestServer(t)

	w := doRequest(s, httptest.NewRequest(http.MethodGet, "/roles", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["roles"], "Python Developer")
}

func TestHandleRoleSkills(t *testing.T) {
	s := setupTestServer(t)

	w := doRequest(s, httptest.NewRequest(http.MethodGet, "/roles/Python%20Developer/skills", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Role   string   `json:"role"`
		Skills []string `json:"skills"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Python Developer", resp.Role)
	assert.Contains(t, resp.Skills, "django")
}

func TestHandleRoleSkills_UnknownRole(t *testing.T) {
	s := setupTestServer(t)

	w := doRequest(s, httptest.NewRequest(http.MethodGet, "/roles/Astronaut/skills", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleGetCourse(t *testing.T) {
	s := setupTestServer(t)

	w := doRequest(s, httptest.NewRequest(http.MethodGet, "/courses/0", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var record types.CourseRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Equal(t, "Django Deployment", record.Title)
	assert.Equal(t, "4.6", record.Rating)
}

func TestHandleGetCourse_OutOfRange(t *testing.T) {
	s := setupTestServer(t)

	w := doRequest(s, httptest.NewRequest(http.MethodGet, "/courses/99", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleGetCourse_NotANumber(t *testing.T) {
	s := setupTestServer(t)

	w := doRequest(s, httptest.NewRequest(http.MethodGet, "/courses/abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleRecommendations(t *testing.T) {
	s := setupTestServer(t)

	body, _ := json.Marshal(RecommendRequest{MissingSkills: []string{"django", "git"}, Limit: 2})
	req := httptest.NewRequest(http.MethodPost, "/recommendations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := doRequest(s, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp RecommendResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Courses)
	assert.Equal(t, "Django Deployment", resp.Courses[0].Title)
	assert.Zero(t, resp.Dropped)
}

func TestHandleRecommendations_EmptySkills(t *testing.T) {
	s := setupTestServer(t)

	body, _ := json.Marshal(RecommendRequest{MissingSkills: []string{}})
	req := httptest.NewRequest(http.MethodPost, "/recommendations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := doRequest(s, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "validation error")
}

func TestHandleRecommendations_InvalidJSON(t *testing.T) {
	s := setupTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/recommendations", bytes.NewReader([]byte("{ nope")))
	req.Header.Set("Content-Type", "application/json")

	w := doRequest(s, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGetSession_InvalidID(t *testing.T) {
	s := setupTestServer(t)

	w := doRequest(s, httptest.NewRequest(http.MethodGet, "/sessions/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGetSession_Missing(t *testing.T) {
	s := setupTestServer(t)

	w := doRequest(s, httptest.NewRequest(http.MethodGet, "/sessions/"+uuid.New().String(), nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionRoundTrip(t *testing.T) {
	s := setupTestServer(t)

	sess := session.New("resume.pdf", &types.AnalysisResult{
		Predictions: []types.RolePrediction{{Role: "Python Developer", Confidence: 0.8}},
		Skills:      types.NewSkillSet([]string{"python"}),
	}, time.Hour)
	require.NoError(t, s.sessions.Save(context.Background(), sess))

	w := doRequest(s, httptest.NewRequest(http.MethodGet, "/sessions/"+sess.ID.String(), nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var got session.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, "resume.pdf", got.Filename)

	w = doRequest(s, httptest.NewRequest(http.MethodDelete, "/sessions/"+sess.ID.String(), nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(s, httptest.NewRequest(http.MethodGet, "/sessions/"+sess.ID.String(), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleAnalyze_MissingFile(t *testing.T) {
	s := setupTestServer(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("note", "no file here"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := doRequest(s, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "resume")
}

func TestHandleAnalyze_NotAPDF(t *testing.T) {
	s := setupTestServer(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("resume", "resume.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("plain text, not a pdf"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := doRequest(s, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
