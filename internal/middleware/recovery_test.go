package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func setupRecoveryRouter(logger *zap.SugaredLogger, reached *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Recovery(logger))
	r.Use(func(c *gin.Context) {
		c.Next()
		*reached = true
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("test panic")
	})
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r
}

func TestRecovery_Middleware(t *testing.T) {
	logger := zaptest.NewLogger(t).Sugar()

	t.Run("recovers from panic", func(t *testing.T) {
		reached := false
		router := setupRecoveryRouter(logger, &reached)
		w := httptest.NewRecorder()

		assert.NotPanics(t, func() {
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.False(t, reached, "middleware after the panic point must not resume")

		body := decodeRecoveryBody(t, w)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
		assert.Equal(t, "internal server error", body.Error.Message)
		assert.NotEmpty(t, body.Error.RequestID)
		assert.Equal(t, w.Header().Get(RequestIDHeader), body.Error.RequestID)
	})

	t.Run("echoes caller request id", func(t *testing.T) {
		reached := false
		router := setupRecoveryRouter(logger, &reached)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/panic", nil)
		req.Header.Set(RequestIDHeader, "req-42")

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "req-42", decodeRecoveryBody(t, w).Error.RequestID)
	})

	t.Run("normal request works", func(t *testing.T) {
		reached := false
		router := setupRecoveryRouter(logger, &reached)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, reached)
	})
}

type recoveryBody struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
	} `json:"error"`
}

func decodeRecoveryBody(t *testing.T, w *httptest.ResponseRecorder) recoveryBody {
	t.Helper()
	var body recoveryBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
