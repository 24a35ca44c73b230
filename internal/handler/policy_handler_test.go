package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"CollabHub/internal/limits"
	"CollabHub/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPolicyHandler(limits.FromEnv())
	r.GET("/api/policy", h.Get)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/policy", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Status)

	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	rates, ok := data["rate_limits"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(100), rates["messages_per_day_per_conversation"])
	assert.Equal(t, float64(24), rates["window_hours"])

	participants, ok := data["participants"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), participants["conversation_min"])
	assert.Equal(t, float64(50), participants["conversation_max"])
}

func TestFailMapsKindToStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err  error
		want int
		code string
	}{
		{pkg.Validation("bad input"), http.StatusBadRequest, "VALIDATION_FAILED"},
		{pkg.RateLimited("x", 20, 24), http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED"},
		{pkg.NotFound("user"), http.StatusNotFound, "NOT_FOUND"},
		{pkg.Forbidden("no"), http.StatusForbidden, "FORBIDDEN"},
		{pkg.PolicyBlocked("too big"), http.StatusForbidden, "POLICY_BLOCKED"},
		{pkg.Unauthenticated("no"), http.StatusUnauthorized, "UNAUTHENTICATED"},
		{pkg.Conflict("dup"), http.StatusConflict, "CONFLICT"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		fail(c, tc.err)

		assert.Equal(t, tc.want, w.Code, tc.code)
		var env Envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.Status)
		assert.Equal(t, tc.code, env.Code)
	}
}
