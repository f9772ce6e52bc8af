package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"records-api/internal/config"
)

func testAPIConfig() config.APIConfig {
	return config.APIConfig{
		Prefix:             "/api",
		NotFoundStatus:     http.StatusUnauthorized,
		CORSAllowedOrigins: []string{"*"},
	}
}

func newTestRouter(t *testing.T, deps Deps) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()
	return newTestRouterWithAPI(t, deps, testAPIConfig())
}

func newTestRouterWithAPI(t *testing.T, deps Deps, api config.APIConfig) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)
	router, err := buildRouter(zap.New(core).Sugar(), deps, api)
	require.NoError(t, err)
	return router, logs
}

func doJSON(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body messageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body.Message
}
