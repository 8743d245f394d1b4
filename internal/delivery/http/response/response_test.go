package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-jobboard-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success echoes the request id", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set(response.ContextKeyRequestID, "req-123")

		response.Success(c, http.StatusOK, "done", gin.H{"k": "v"})

		var body response.Response
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, "done", body.Message)
		assert.Equal(t, "req-123", body.RequestID)
	})

	t.Run("error omits empty fields", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Error(c, http.StatusNotFound, "missing", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.NotContains(t, w.Body.String(), "request_id")
		assert.NotContains(t, w.Body.String(), "data")
		assert.Contains(t, w.Body.String(), `"success":false`)
	})
}
