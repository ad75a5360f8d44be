package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"scamslayer-service/internal/app"
	"scamslayer-service/internal/auth"
	"scamslayer-service/internal/domain"
)

// APIHandler serves the JSON endpoints: scenario listing, profile lookup,
// and mission attempts.
type APIHandler struct {
	games    *app.GameService
	missions *app.MissionService
	ledger   *app.Ledger
	secret   []byte
}

func NewAPIHandler(games *app.GameService, missions *app.MissionService, ledger *app.Ledger, secret []byte) *APIHandler {
	return &APIHandler{games: games, missions: missions, ledger: ledger, secret: secret}
}

// Register mounts the API routes on a mux.
func (h *APIHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/scenarios", h.ListScenarios)
	mux.HandleFunc("/missions", h.ListMissions)
	mux.HandleFunc("/missions/attempt", h.AttemptMission)
	mux.HandleFunc("/profile", h.GetProfile)
}

// scenarioSummary never exposes per-choice correctness.
type scenarioSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Footer      string `json:"footer,omitempty"`
	Rounds      int    `json:"rounds"`
	Badge       string `json:"badge,omitempty"`
}

func (h *APIHandler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	scenarios, err := h.games.Scenarios(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not load scenarios")
		return
	}
	out := make([]scenarioSummary, 0, len(scenarios))
	for _, sc := range scenarios {
		out = append(out, scenarioSummary{
			ID:          sc.ID,
			Title:       sc.Title,
			Description: sc.Description,
			Footer:      sc.Footer,
			Rounds:      len(sc.Rounds),
			Badge:       sc.Policy.Badge,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *APIHandler) ListMissions(w http.ResponseWriter, r *http.Request) {
	missions, err := h.missions.Missions(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not load missions")
		return
	}
	writeJSON(w, http.StatusOK, missions)
}

type attemptRequest struct {
	MissionID string `json:"missionId"`
	Choice    int    `json:"choice"`
}

func (h *APIHandler) AttemptMission(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var req attemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.MissionID == "" {
		writeError(w, http.StatusBadRequest, "invalid attempt payload")
		return
	}

	ident := auth.FromRequest(h.secret, r)
	outcome, err := h.missions.Attempt(r.Context(), ident, req.MissionID, req.Choice)
	switch {
	case errors.Is(err, domain.ErrMissionNotFound):
		writeError(w, http.StatusNotFound, "mission not found")
		return
	case errors.Is(err, domain.ErrChoiceOutOfRange):
		writeError(w, http.StatusBadRequest, "choice out of range")
		return
	case err != nil:
		log.Error().Err(err).Str("mission", req.MissionID).Msg("mission attempt failed")
		writeError(w, http.StatusInternalServerError, "could not record attempt")
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

func (h *APIHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ident := auth.FromRequest(h.secret, r)
	if ident.Anonymous() {
		writeError(w, http.StatusUnauthorized, "sign in to view your profile")
		return
	}
	profile, err := h.ledger.Profile(r.Context(), ident.UID)
	if errors.Is(err, domain.ErrProfileNotFound) {
		writeError(w, http.StatusNotFound, "no profile yet; play a game first")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("uid", ident.UID).Msg("profile lookup failed")
		writeError(w, http.StatusInternalServerError, "could not load profile")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorPayload{Message: message})
}
