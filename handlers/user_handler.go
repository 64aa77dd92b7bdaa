package handlers

import (
	"net/http"

	"github.com/Dosada05/playoff-bracket/middleware"
	"github.com/Dosada05/playoff-bracket/services"
)

type UserHandler struct {
	userService    services.UserService
	bracketService services.BracketService
}

func NewUserHandler(us services.UserService, bs services.BracketService) *UserHandler {
	return &UserHandler{
		userService:    us,
		bracketService: bs,
	}
}

type updateDisplayNameRequest struct {
	DisplayName string `json:"display_name"`
}

// ListMyBrackets godoc
// @Summary      Brackets of the current user across all seasons
// @Tags         user
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Failure      401 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /user/brackets [get]
func (h *UserHandler) ListMyBrackets(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetIdentityFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "failed to identify current user")
		return
	}

	views, err := h.bracketService.ListMyBrackets(r.Context(), identity)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"brackets": views,
		"count":    len(views),
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateDisplayName godoc
// @Summary      Change the display name shown on the leaderboard
// @Tags         user
// @Accept       json
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /user/display-name [put]
func (h *UserHandler) UpdateDisplayName(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetIdentityFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "failed to identify current user")
		return
	}

	var input updateDisplayNameRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	user, err := h.userService.UpdateDisplayName(r.Context(), identity, input.DisplayName)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"display_name": user.DisplayName}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
