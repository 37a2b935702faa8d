package middleware

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"starblog/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger("error", "json", io.Discard)
	os.Exit(m.Run())
}

func serve(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestCurrentUserMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CurrentUserMiddleware(7))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetInt("user_id")})
	})

	w := serve(r, http.MethodGet, "/whoami")
	assert.JSONEq(t, `{"user_id":7}`, w.Body.String())
}

func TestAPIErrorsRendersMessage(t *testing.T) {
	r := gin.New()
	r.Use(APIErrors())
	r.GET("/teapot", func(c *gin.Context) {
		_ = c.Error(utils.NewAPIError("short and stout", http.StatusTeapot, map[string]interface{}{"hint": "tip me over"}))
	})
	r.GET("/default", func(c *gin.Context) {
		_ = c.Error(utils.NewAPIError("bad input", 0, nil))
	})

	w := serve(r, http.MethodGet, "/teapot")
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.JSONEq(t, `{"message":"short and stout","hint":"tip me over"}`, w.Body.String())

	w = serve(r, http.MethodGet, "/default")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"bad input"}`, w.Body.String())
}

func TestAPIErrorsLeavesWrittenResponses(t *testing.T) {
	r := gin.New()
	r.Use(APIErrors())
	r.GET("/done", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		_ = c.Error(utils.NewAPIError("late", http.StatusTeapot, nil))
	})
	r.GET("/plain", func(c *gin.Context) {
		_ = c.Error(errors.New("not an api error"))
		c.Status(http.StatusNoContent)
	})

	w := serve(r, http.MethodGet, "/done")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())

	w = serve(r, http.MethodGet, "/plain")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestRecoveryMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RecoveryMiddleware())
	r.GET("/panic", func(c *gin.Context) {
		panic("it's a trap")
	})

	w := serve(r, http.MethodGet, "/panic")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestRecoveryLogsRequestID(t *testing.T) {
	var buf bytes.Buffer
	utils.InitLogger("error", "json", &buf)
	t.Cleanup(func() { utils.InitLogger("error", "json", io.Discard) })

	r := gin.New()
	r.Use(RequestLogger(), RecoveryMiddleware())
	r.GET("/panic", func(c *gin.Context) {
		panic("it's a trap")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var panicLine map[string]interface{}
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var line map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		if _, ok := line["panic"]; ok {
			panicLine = line
		}
	}
	require.NotNil(t, panicLine, buf.String())
	assert.Equal(t, "it's a trap", panicLine["panic"])
	assert.Equal(t, "req-42", panicLine["request_id"])
	assert.Equal(t, "GET /panic", panicLine["message"])
}
