package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sievelabs/assessrec/core"
	"github.com/sievelabs/assessrec/recommend"
)

type stubRecommender struct {
	results   []core.Candidate
	err       error
	lastQuery string
	lastTopK  int
}

func (s *stubRecommender) Recommend(_ context.Context, query string, topK int) ([]core.Candidate, error) {
	s.lastQuery = query
	s.lastTopK = topK
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

func newTestServer(t *testing.T, rec Recommender) *Server {
	t.Helper()
	s, err := NewServer(rec)
	require.NoError(t, err)
	return s
}

func postRecommend(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/recommend", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	return rr
}

func TestNewServerRequiresRecommender(t *testing.T) {
	_, err := NewServer(nil)
	assert.ErrorIs(t, err, ErrRecommenderRequired)
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, &stubRecommender{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp healthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
}

func TestRecommendHappyPath(t *testing.T) {
	rec := &stubRecommender{
		results: []core.Candidate{
			{
				Assessment: core.Assessment{
					URL:             "https://example.com/catalog/java-test",
					Name:            "Java Programming Test",
					Description:     "Multi-choice test measuring Java knowledge.",
					Duration:        40,
					RemoteSupport:   true,
					AdaptiveSupport: false,
					TestTypes:       []string{"K", "S"},
				},
			},
		},
	}
	s := newTestServer(t, rec)

	rr := postRecommend(t, s, `{"query":"java developer","top_k":3}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp RecommendResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.RecommendedAssessments, 1)

	got := resp.RecommendedAssessments[0]
	assert.Equal(t, "https://example.com/catalog/java-test", got.URL)
	assert.Equal(t, "Java Programming Test", got.Name)
	assert.Equal(t, "Yes", got.RemoteSupport)
	assert.Equal(t, "No", got.AdaptiveSupport)
	assert.Equal(t, 40, got.Duration)
	assert.Equal(t, []string{"Knowledge & Skills", "Simulations"}, got.TestType)

	assert.Equal(t, "java developer", rec.lastQuery)
	assert.Equal(t, 3, rec.lastTopK)
}

func TestRecommendDefaultsTopK(t *testing.T) {
	rec := &stubRecommender{}
	s := newTestServer(t, rec)

	rr := postRecommend(t, s, `{"query":"sales roles"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, recommend.DefaultTopK, rec.lastTopK)

	var resp RecommendResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotNil(t, resp.RecommendedAssessments)
	assert.Empty(t, resp.RecommendedAssessments)
}

func TestRecommendRejectsInvalidBody(t *testing.T) {
	s := newTestServer(t, &stubRecommender{})

	rr := postRecommend(t, s, `{"query": "unterminated`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRecommendRejectsMissingQuery(t *testing.T) {
	s := newTestServer(t, &stubRecommender{})

	rr := postRecommend(t, s, `{"top_k":5}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "Query")
}

func TestRecommendRejectsTopKOutOfRange(t *testing.T) {
	s := newTestServer(t, &stubRecommender{})

	rr := postRecommend(t, s, `{"query":"java","top_k":500}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRecommendEmptyQueryFromPipeline(t *testing.T) {
	s := newTestServer(t, &stubRecommender{err: recommend.ErrEmptyQuery})

	rr := postRecommend(t, s, `{"query":"   "}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRecommendPipelineFailure(t *testing.T) {
	s := newTestServer(t, &stubRecommender{err: assert.AnError})

	rr := postRecommend(t, s, `{"query":"java developer"}`)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "recommendation failed", resp.Error)
}
