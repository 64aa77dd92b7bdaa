package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dosada05/playoff-bracket/brackets"
	"github.com/Dosada05/playoff-bracket/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

// Сервисы не нужны: проверяем только маршрутизацию и middleware до обработчиков.
func newTestRouter() http.Handler {
	router := chi.NewRouter()
	SetupRoutes(router, Handlers{
		Health:      handlers.NewHealthHandler(okPinger{}),
		Bracket:     handlers.NewBracketHandler(nil, nil),
		Leaderboard: handlers.NewLeaderboardHandler(nil),
		Outcome:     handlers.NewOutcomeHandler(nil),
		Participant: handlers.NewParticipantHandler(nil),
		User:        handlers.NewUserHandler(nil, nil),
		WebSocket:   handlers.NewWebSocketHandler(brackets.NewHub(nil), nil, nil),
	}, Options{
		JWTSecret: []byte("test-secret"),
		AdminRole: "admin",
	})
	return router
}

func TestSetupRoutes(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"health", http.MethodGet, "/healthz", http.StatusOK},
		{"swagger doc", http.MethodGet, "/swagger/doc.json", http.StatusOK},
		{"submit requires token", http.MethodPost, "/api/brackets", http.StatusUnauthorized},
		{"delete requires token", http.MethodDelete, "/api/brackets/3", http.StatusUnauthorized},
		{"record outcomes requires token", http.MethodPut, "/api/outcomes/2025", http.StatusUnauthorized},
		{"clear outcomes requires token", http.MethodDelete, "/api/outcomes/2025", http.StatusUnauthorized},
		{"replace participants requires token", http.MethodPut, "/api/participants/2025", http.StatusUnauthorized},
		{"my brackets require token", http.MethodGet, "/api/user/brackets", http.StatusUnauthorized},
		{"display name requires token", http.MethodPut, "/api/user/display-name", http.StatusUnauthorized},
		{"bad bracket id", http.MethodGet, "/api/brackets/abc", http.StatusBadRequest},
		{"bad season", http.MethodGet, "/api/leaderboard/soon", http.StatusBadRequest},
		{"unknown route", http.MethodGet, "/api/teams", http.StatusNotFound},
		{"wrong method", http.MethodPatch, "/api/leaderboard/2025", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestSetupRoutes_CORSPreflight(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/brackets", nil)
	req.Header.Set("Origin", "https://brackets.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
