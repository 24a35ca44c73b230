package pkg

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{Validation("bad"), http.StatusBadRequest},
		{RateLimited("x", 20, 24), http.StatusTooManyRequests},
		{NotFound("user"), http.StatusNotFound},
		{Forbidden("no"), http.StatusForbidden},
		{PolicyBlocked("no"), http.StatusForbidden},
		{Unauthenticated("no"), http.StatusUnauthorized},
		{Conflict("dup"), http.StatusConflict},
		{Internal(errors.New("boom")), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.err.HTTPStatus(), tc.err.Code)
	}
}

func TestRateLimitedCarriesWindow(t *testing.T) {
	e := RateLimited("conversation creation", 20, 24)
	assert.Equal(t, "RATE_LIMIT_EXCEEDED", e.Code)
	assert.Equal(t, int64(20), e.Limit)
	assert.Equal(t, 24, e.WindowHours)
}

func TestInternalHidesCause(t *testing.T) {
	e := Internal(errors.New("dsn password leaked"))
	assert.Equal(t, "internal error", e.Message)
}

func TestAsError(t *testing.T) {
	assert.Nil(t, AsError(nil))

	orig := NotFound("skill")
	assert.Same(t, orig, AsError(orig))

	wrapped := AsError(errors.New("plain"))
	assert.Equal(t, KindInternal, wrapped.Kind)
}
