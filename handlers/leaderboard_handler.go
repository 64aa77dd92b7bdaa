package handlers

import (
	"net/http"

	"github.com/Dosada05/playoff-bracket/brackets"
	"github.com/Dosada05/playoff-bracket/services"
)

type LeaderboardHandler struct {
	leaderboardService services.LeaderboardService
}

func NewLeaderboardHandler(ls services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: ls}
}

// GetLeaderboard godoc
// @Summary      Ranked leaderboard of a season
// @Tags         leaderboard
// @Produce      json
// @Param        season path int true "Season year"
// @Success      200 {object} map[string]interface{}
// @Router       /leaderboard/{season} [get]
func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	season, err := getSeasonFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	board, err := h.leaderboardService.GetLeaderboard(r.Context(), season)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"season":      season,
		"max_score":   brackets.MaxScore(),
		"leaderboard": board,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
