package handlers

import (
	"net/http"

	"github.com/Dosada05/playoff-bracket/brackets"
	"github.com/Dosada05/playoff-bracket/middleware"
	"github.com/Dosada05/playoff-bracket/services"
)

type OutcomeHandler struct {
	outcomeService services.OutcomeService
}

func NewOutcomeHandler(svc services.OutcomeService) *OutcomeHandler {
	return &OutcomeHandler{outcomeService: svc}
}

type recordOutcomesRequest struct {
	Outcomes []services.OutcomeInput `json:"outcomes"`
}

// ListOutcomes godoc
// @Summary      Recorded game outcomes of a season, in bracket order
// @Tags         outcomes
// @Produce      json
// @Param        season path int true "Season year"
// @Success      200 {object} map[string]interface{}
// @Router       /outcomes/{season} [get]
func (h *OutcomeHandler) ListOutcomes(w http.ResponseWriter, r *http.Request) {
	season, err := getSeasonFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	outcomes, err := h.outcomeService.ListOutcomes(r.Context(), season)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"season":   season,
		"slots":    brackets.AllSlots(),
		"outcomes": outcomes,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RecordOutcomes godoc
// @Summary      Record or update game outcomes (elevated only)
// @Tags         outcomes
// @Accept       json
// @Produce      json
// @Param        season path int true "Season year"
// @Success      200 {object} map[string]interface{}
// @Failure      403 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /outcomes/{season} [put]
func (h *OutcomeHandler) RecordOutcomes(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetIdentityFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "failed to identify current user")
		return
	}
	season, err := getSeasonFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input recordOutcomesRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	outcomes, err := h.outcomeService.RecordOutcomes(r.Context(), identity, season, input.Outcomes)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"season": season, "outcomes": outcomes}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ClearOutcomes godoc
// @Summary      Remove every outcome of a season (elevated only)
// @Tags         outcomes
// @Param        season path int true "Season year"
// @Success      200 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /outcomes/{season} [delete]
func (h *OutcomeHandler) ClearOutcomes(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetIdentityFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "failed to identify current user")
		return
	}
	season, err := getSeasonFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	deleted, err := h.outcomeService.ClearOutcomes(r.Context(), identity, season)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"season": season, "deleted": deleted}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
