package handlers

import (
	"net/http"
	"strconv"

	"github.com/Dosada05/playoff-bracket/middleware"
	"github.com/Dosada05/playoff-bracket/models"
	"github.com/Dosada05/playoff-bracket/services"
)

type BracketHandler struct {
	bracketService     services.BracketService
	leaderboardService services.LeaderboardService
}

func NewBracketHandler(bs services.BracketService, ls services.LeaderboardService) *BracketHandler {
	return &BracketHandler{
		bracketService:     bs,
		leaderboardService: ls,
	}
}

// SubmitBracket godoc
// @Summary      Submit a bracket
// @Tags         brackets
// @Accept       json
// @Produce      json
// @Param        bracket body models.BracketSubmission true "Bracket name, season and nested predictions"
// @Success      201 {object} map[string]interface{}
// @Failure      409 {object} map[string]interface{}
// @Failure      422 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /brackets [post]
func (h *BracketHandler) SubmitBracket(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetIdentityFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "failed to identify current user")
		return
	}

	var input models.BracketSubmission
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	bracket, err := h.bracketService.SubmitBracket(r.Context(), identity, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"message":    "bracket submitted",
		"bracket_id": bracket.ID,
		"bracket":    bracket,
	}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetBracket godoc
// @Summary      Get a bracket with its predictions
// @Tags         brackets
// @Produce      json
// @Param        bracketID path int true "Bracket ID"
// @Success      200 {object} services.BracketView
// @Failure      404 {object} map[string]interface{}
// @Router       /brackets/{bracketID} [get]
func (h *BracketHandler) GetBracket(w http.ResponseWriter, r *http.Request) {
	bracketID, err := getIDFromURL(r, "bracketID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	view, err := h.bracketService.GetBracket(r.Context(), bracketID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"bracket":     view.Bracket,
		"predictions": view.Predictions,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListBrackets godoc
// @Summary      List brackets of a season
// @Tags         brackets
// @Produce      json
// @Param        season query int false "Season year, defaults to the current season"
// @Success      200 {object} map[string]interface{}
// @Router       /brackets [get]
func (h *BracketHandler) ListBrackets(w http.ResponseWriter, r *http.Request) {
	season := 0
	if raw := r.URL.Query().Get("season"); raw != "" {
		s, err := strconv.Atoi(raw)
		if err != nil {
			badRequestResponse(w, r, err)
			return
		}
		season = s
	}

	list, err := h.bracketService.ListBrackets(r.Context(), season)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"brackets": list}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteBracket godoc
// @Summary      Delete a bracket and all its predictions
// @Tags         brackets
// @Param        bracketID path int true "Bracket ID"
// @Success      204
// @Failure      403 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /brackets/{bracketID} [delete]
func (h *BracketHandler) DeleteBracket(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetIdentityFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "failed to identify current user")
		return
	}
	bracketID, err := getIDFromURL(r, "bracketID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.bracketService.DeleteBracket(r.Context(), identity, bracketID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetBracketScore godoc
// @Summary      Score and rank of one bracket
// @Tags         leaderboard
// @Produce      json
// @Param        bracketID path int true "Bracket ID"
// @Success      200 {object} models.LeaderboardEntry
// @Failure      404 {object} map[string]interface{}
// @Router       /brackets/{bracketID}/score [get]
func (h *BracketHandler) GetBracketScore(w http.ResponseWriter, r *http.Request) {
	bracketID, err := getIDFromURL(r, "bracketID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	entry, err := h.leaderboardService.ScoreBracket(r.Context(), bracketID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"score": entry}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
