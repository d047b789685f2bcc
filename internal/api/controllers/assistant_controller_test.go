package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roamio/internal/api/controllers"
	"roamio/pkg/utils"
)

type stubAssistant struct {
	reply string
	err   error
}

func (s *stubAssistant) Chat(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", utils.ErrInvalidInput
	}
	return s.reply, s.err
}

func newChatRouter(svc *stubAssistant) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/ai/chat", controllers.NewAssistantController(svc).ChatHandler)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChatHandlerSuccess(t *testing.T) {
	r := newChatRouter(&stubAssistant{reply: "Visit Bhaktapur in autumn."})

	w := postJSON(t, r, "/api/ai/chat", `{"message": "where should I go?"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Visit Bhaktapur in autumn.", resp["response"])
}

func TestChatHandlerEmptyMessage(t *testing.T) {
	r := newChatRouter(&stubAssistant{reply: "unused"})

	w := postJSON(t, r, "/api/ai/chat", `{"message": "   "}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
}

func TestChatHandlerUnavailable(t *testing.T) {
	r := newChatRouter(&stubAssistant{err: utils.ErrAssistantUnavailable})

	w := postJSON(t, r, "/api/ai/chat", `{"message": "hello"}`)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestChatHandlerUpstreamFailureHidesDetails(t *testing.T) {
	r := newChatRouter(&stubAssistant{err: utils.ErrUpstreamFailure})

	w := postJSON(t, r, "/api/ai/chat", `{"message": "hello"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
	assert.NotEmpty(t, resp["details"])
	assert.NotContains(t, resp["details"], "connection refused")
}
