package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahayak-project/sahayak-backend/internal/ai"
	"github.com/sahayak-project/sahayak-backend/internal/config"
	"github.com/sahayak-project/sahayak-backend/internal/store"
)

// newTestServer assembles a server over a private in-memory store and the
// zero-delay template generator.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(staticDir, "index.html"),
		[]byte("<!DOCTYPE html><title>Sahayak</title>"),
		0o644,
	))

	st, err := store.Open("file:" + uuid.New().String() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	cfg := &config.Config{
		Env:        "test",
		Port:       "0",
		StaticDir:  staticDir,
		AIProvider: config.ProviderTemplate,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return New(cfg, logger, st, ai.NewTemplateService(0))
}

func performJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := performJSON(t, s, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "Sahayak API is running", body["message"])
	assert.Equal(t, Version, body["version"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestUnknownAPIRouteReturnsJSON404(t *testing.T) {
	s := newTestServer(t)

	w := performJSON(t, s, http.MethodGet, "/api/no-such-endpoint", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "API endpoint not found", body["error"])
}

func TestSPAFallbackServesIndex(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/", "/dashboard", "/some/client/route"} {
		w := performJSON(t, s, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), "Sahayak", path)
	}
}

func TestStaticAssetServedDirectly(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(s.cfg.StaticDir, "app.js"),
		[]byte("console.log('sahayak')"),
		0o644,
	))

	w := performJSON(t, s, http.MethodGet, "/app.js", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "console.log")
}

func TestGenerateWorksheetEndToEnd(t *testing.T) {
	s := newTestServer(t)

	w := performJSON(t, s, http.MethodPost, "/api/generate-worksheet", map[string]any{
		"userId":       "teacher-1",
		"subject":      "Mathematics",
		"grade":        "Grade 3",
		"language":     "English",
		"topic":        "Fractions",
		"difficulty":   "medium",
		"studentLevel": "beginner",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Contains(t, body["worksheet"], "WORKSHEET: Fractions")
	assert.NotEmpty(t, body["worksheetId"])

	metadata, ok := body["metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "medium", metadata["difficulty"])
	assert.NotEmpty(t, metadata["generated_at"])

	// The worksheet must now appear in the user's library, newest first
	list := performJSON(t, s, http.MethodGet, "/api/user/teacher-1/worksheets", nil)
	require.Equal(t, http.StatusOK, list.Code)

	listBody := decodeBody(t, list)
	worksheets, ok := listBody["worksheets"].([]any)
	require.True(t, ok)
	require.Len(t, worksheets, 1)

	item := worksheets[0].(map[string]any)
	assert.Equal(t, body["worksheetId"], item["id"])
	assert.Equal(t, "teacher-1", item["userId"])
}

func TestGenerateContentMissingFieldRejected(t *testing.T) {
	s := newTestServer(t)

	w := performJSON(t, s, http.MethodPost, "/api/generate-content", map[string]any{
		"subject":  "Science",
		"grade":    "Grade 4",
		"language": "English",
		// topic and contentType missing
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.NotEmpty(t, body["error"])

	// Nothing may be stored for a rejected request
	stats := performJSON(t, s, http.MethodGet, "/api/user/"+DefaultUserID+"/stats", nil)
	statsBody := decodeBody(t, stats)
	counters := statsBody["stats"].(map[string]any)
	assert.EqualValues(t, 0, counters["totalContent"])
}

func TestGenerateContentDefaultsUser(t *testing.T) {
	s := newTestServer(t)

	w := performJSON(t, s, http.MethodPost, "/api/generate-content", map[string]any{
		"subject":     "Science",
		"grade":       "Grade 4",
		"language":    "English",
		"topic":       "Plants",
		"contentType": "story",
	})
	require.Equal(t, http.StatusOK, w.Code)

	list := performJSON(t, s, http.MethodGet, "/api/user/"+DefaultUserID+"/content", nil)
	listBody := decodeBody(t, list)
	content, ok := listBody["content"].([]any)
	require.True(t, ok)
	require.Len(t, content, 1)
	assert.Equal(t, DefaultUserID, content[0].(map[string]any)["userId"])
}

func TestUserContentTypeFilter(t *testing.T) {
	s := newTestServer(t)

	for _, contentType := range []string{"story", "lesson_plan", "story"} {
		w := performJSON(t, s, http.MethodPost, "/api/generate-content", map[string]any{
			"userId":      "filter-user",
			"subject":     "Science",
			"grade":       "Grade 4",
			"language":    "English",
			"topic":       "Plants",
			"contentType": contentType,
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := performJSON(t, s, http.MethodGet, "/api/user/filter-user/content?type=story", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	content := body["content"].([]any)
	require.Len(t, content, 2)
	for _, raw := range content {
		metadata := raw.(map[string]any)["metadata"].(map[string]any)
		assert.Equal(t, "story", metadata["content_type"])
	}

	all := performJSON(t, s, http.MethodGet, "/api/user/filter-user/content", nil)
	allBody := decodeBody(t, all)
	assert.Len(t, allBody["content"].([]any), 3)
}

func TestVoiceAssessmentPersisted(t *testing.T) {
	s := newTestServer(t)

	w := performJSON(t, s, http.MethodPost, "/api/process-voice-assessment", map[string]any{
		"userId":   "voice-user",
		"subject":  "Science",
		"grade":    "Grade 4",
		"language": "English",
		"question": "What is evaporation?",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["assessmentId"])

	analysis, ok := body["analysis"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, analysis["transcription"])
	assert.NotEmpty(t, analysis["grade"])

	stats := performJSON(t, s, http.MethodGet, "/api/user/voice-user/stats", nil)
	counters := decodeBody(t, stats)["stats"].(map[string]any)
	assert.EqualValues(t, 1, counters["totalAssessments"])
}

func TestAnalyzeImageNotPersisted(t *testing.T) {
	s := newTestServer(t)

	w := performJSON(t, s, http.MethodPost, "/api/analyze-image", map[string]any{
		"userId":   "image-user",
		"subject":  "Mathematics",
		"grade":    "Grade 3",
		"language": "English",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	analysis, ok := body["analysis"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, analysis["description"])

	// Image analyses are returned but never stored
	stats := performJSON(t, s, http.MethodGet, "/api/user/image-user/stats", nil)
	counters := decodeBody(t, stats)["stats"].(map[string]any)
	for _, key := range []string{"totalContent", "totalWorksheets", "totalVisualAids", "totalAssessments", "totalVideos"} {
		assert.EqualValues(t, 0, counters[key], key)
	}
}

func TestProcessVideoAllFieldsOptional(t *testing.T) {
	s := newTestServer(t)

	w := performJSON(t, s, http.MethodPost, "/api/process-video", map[string]any{})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["videoId"])
	assert.Equal(t, "Video processed successfully", body["message"])
	assert.Contains(t, body["processedContent"], "Language: English")

	stats := performJSON(t, s, http.MethodGet, "/api/user/"+DefaultUserID+"/stats", nil)
	counters := decodeBody(t, stats)["stats"].(map[string]any)
	assert.EqualValues(t, 1, counters["totalVideos"])
}

func TestUserStatsCountsPerKind(t *testing.T) {
	s := newTestServer(t)

	base := map[string]any{
		"userId":   "stats-user",
		"subject":  "Science",
		"grade":    "Grade 4",
		"language": "English",
		"topic":    "Plants",
	}

	content := map[string]any{"contentType": "story"}
	for k, v := range base {
		content[k] = v
	}
	require.Equal(t, http.StatusOK, performJSON(t, s, http.MethodPost, "/api/generate-content", content).Code)

	aid := map[string]any{"aidType": "chart"}
	for k, v := range base {
		aid[k] = v
	}
	require.Equal(t, http.StatusOK, performJSON(t, s, http.MethodPost, "/api/generate-visual-aid", aid).Code)

	w := performJSON(t, s, http.MethodGet, "/api/user/stats-user/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	counters := decodeBody(t, w)["stats"].(map[string]any)
	assert.EqualValues(t, 1, counters["totalContent"])
	assert.EqualValues(t, 1, counters["totalVisualAids"])
	assert.EqualValues(t, 0, counters["totalWorksheets"])
	assert.EqualValues(t, 0, counters["totalAssessments"])
	assert.EqualValues(t, 0, counters["totalVideos"])

	// Stats reads must not change the counts
	again := performJSON(t, s, http.MethodGet, "/api/user/stats-user/stats", nil)
	assert.JSONEq(t, w.Body.String(), again.Body.String())
}
