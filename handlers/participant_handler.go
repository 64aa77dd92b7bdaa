package handlers

import (
	"net/http"

	"github.com/Dosada05/playoff-bracket/middleware"
	"github.com/Dosada05/playoff-bracket/models"
	"github.com/Dosada05/playoff-bracket/services"
)

type ParticipantHandler struct {
	participantService services.ParticipantService
}

func NewParticipantHandler(ps services.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{participantService: ps}
}

type replaceParticipantsRequest struct {
	Participants []models.Participant `json:"participants"`
}

// groupByConference раскладывает команды по конференциям, как ждёт фронтенд.
func groupByConference(list []models.Participant) jsonResponse {
	afc := make([]models.Participant, 0, 7)
	nfc := make([]models.Participant, 0, 7)
	for _, p := range list {
		switch p.Conference {
		case models.ConferenceAFC:
			afc = append(afc, p)
		case models.ConferenceNFC:
			nfc = append(nfc, p)
		}
	}
	return jsonResponse{"afc": afc, "nfc": nfc}
}

// ListParticipants godoc
// @Summary      Qualified playoff teams of a season
// @Tags         participants
// @Produce      json
// @Param        season path int true "Season year"
// @Success      200 {object} map[string]interface{}
// @Router       /participants/{season} [get]
func (h *ParticipantHandler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	season, err := getSeasonFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	list, err := h.participantService.ListQualified(r.Context(), season)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := groupByConference(list)
	response["season"] = season
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SearchParticipants godoc
// @Summary      Fuzzy search of qualified teams by name, city or abbreviation
// @Tags         participants
// @Produce      json
// @Param        season path int true "Season year"
// @Param        q query string true "Search text"
// @Success      200 {object} map[string]interface{}
// @Router       /participants/{season}/search [get]
func (h *ParticipantHandler) SearchParticipants(w http.ResponseWriter, r *http.Request) {
	season, err := getSeasonFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	found, err := h.participantService.SearchParticipants(r.Context(), season, r.URL.Query().Get("q"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"participants": found}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ReplaceParticipants godoc
// @Summary      Replace the qualified teams of a season (elevated only)
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        season path int true "Season year"
// @Success      200 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /participants/{season} [put]
func (h *ParticipantHandler) ReplaceParticipants(w http.ResponseWriter, r *http.Request) {
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

	var input replaceParticipantsRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	list, err := h.participantService.ReplaceQualified(r.Context(), identity, season, input.Participants)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := groupByConference(list)
	response["season"] = season
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
