package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dosada05/playoff-bracket/models"
	"github.com/stretchr/testify/assert"
)

func TestRateLimit_PerClient(t *testing.T) {
	h := RateLimit(PerMinute(2))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(remote string) int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = remote
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, do("10.0.0.1:5678"))
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1:9999"))
	assert.Equal(t, http.StatusOK, do("10.0.0.2:1234"), "other clients keep their own bucket")
}

func TestRateLimit_KeyedByIdentity(t *testing.T) {
	h := RateLimit(PerMinute(1))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(subject string) int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = "10.0.0.9:1"
		req = req.WithContext(WithIdentity(req.Context(), models.Identity{Subject: subject}))
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, do("alice"))
	assert.Equal(t, http.StatusTooManyRequests, do("alice"))
	assert.Equal(t, http.StatusOK, do("bob"))
}

func TestPerMinute_Disabled(t *testing.T) {
	l := PerMinute(0)
	for i := 0; i < 100; i++ {
		assert.True(t, l.GetLimiter("x").Allow())
	}
}
