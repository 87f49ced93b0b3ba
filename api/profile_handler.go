package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/campuscollab/backend/actions"
	"github.com/campuscollab/backend/errs"
)

type profileHandler struct {
	responder Responder
	logger    zerolog.Logger
	profiles  actions.ProfileActions
}

func newProfileHandler(profiles actions.ProfileActions) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder: NewResponder(logger),
		logger:    logger,
		profiles:  profiles,
	}
}

// completeOnboarding creates the caller's profile from the onboarding form.
func (h profileHandler) completeOnboarding() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input actions.OnboardingInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode onboarding request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		profile, err := h.profiles.CompleteOnboarding(r.Context(), input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, profile)
	}
}

// editProfile partially updates the caller's profile.
func (h profileHandler) editProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch actions.ProfilePatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode profile patch body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		profile, err := h.profiles.EditProfile(r.Context(), patch)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}

// getProfile serves the public profile for a handle. A missing profile is an
// empty state, rendered as 404 with no error payload semantics attached.
func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")
		if username == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing username"))
			return
		}

		view, err := h.profiles.GetUserByHandle(r.Context(), username)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if view == nil {
			w.WriteHeader(http.StatusNotFound)
			h.responder.WriteJSON(w, map[string]any{"profile": nil})
			return
		}

		h.responder.WriteJSON(w, view)
	}
}

// searchUsers serves the typeahead search box.
func (h profileHandler) searchUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")

		matches, err := h.profiles.SearchUsers(r.Context(), query)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, matches)
	}
}
