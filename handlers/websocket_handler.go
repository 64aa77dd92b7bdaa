package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Dosada05/playoff-bracket/brackets"
	"github.com/Dosada05/playoff-bracket/services"
	"github.com/gorilla/websocket"
)

type WebSocketHandler struct {
	hub                *brackets.Hub
	leaderboardService services.LeaderboardService
	upgrader           websocket.Upgrader
}

// NewWebSocketHandler принимает список разрешённых Origin; пустой список разрешает все.
func NewWebSocketHandler(hub *brackets.Hub, ls services.LeaderboardService, allowedOrigins []string) *WebSocketHandler {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = true
	}
	return &WebSocketHandler{
		hub:                hub,
		leaderboardService: ls,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return len(origins) == 0 || origin == "" || origins[origin]
			},
		},
	}
}

// ServeLeaderboard подписывает клиента на обновления таблицы сезона и сразу
// отправляет текущее состояние. Подписка оформляется до расчёта снимка, так что
// обновление, опубликованное в промежутке, придёт клиенту после снимка.
// Клиент подключается к /ws/leaderboard/{season}
func (h *WebSocketHandler) ServeLeaderboard(w http.ResponseWriter, r *http.Request) {
	season, err := getSeasonFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade сам отвечает клиенту
		slog.WarnContext(r.Context(), "websocket upgrade failed", slog.Int("season", season), slog.Any("error", err))
		return
	}

	room := brackets.LeaderboardRoom(season)
	client := brackets.NewClient(h.hub, conn, room)
	client.Hold()
	if !h.hub.Subscribe(client) {
		closeWithReason(conn, websocket.CloseGoingAway, "server is shutting down")
		return
	}

	board, err := h.leaderboardService.GetLeaderboard(r.Context(), season)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to compute leaderboard snapshot", slog.Int("season", season), slog.Any("error", err))
		h.hub.Unsubscribe(client)
		closeWithReason(conn, websocket.CloseInternalServerErr, "leaderboard unavailable")
		return
	}

	snapshot := brackets.WebSocketMessage{
		Type:    brackets.MessageLeaderboardUpdated,
		Payload: board,
		RoomID:  room,
	}
	if err := client.Release(snapshot); err != nil {
		slog.WarnContext(r.Context(), "failed to queue leaderboard snapshot", slog.String("room", room), slog.Any("error", err))
	}

	go client.WritePump()
	go client.ReadPump()
}

func closeWithReason(conn *websocket.Conn, code int, reason string) {
	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), time.Now().Add(time.Second))
	conn.Close()
}
