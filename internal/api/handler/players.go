package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/mysquad-go/internal/api/middleware"
	"github.com/mcoot/mysquad-go/internal/api/request"
	"github.com/mcoot/mysquad-go/internal/api/response"
	"github.com/mcoot/mysquad-go/internal/model"
	"github.com/mcoot/mysquad-go/internal/services/roster"
	"github.com/mcoot/mysquad-go/internal/validate"
)

// PlayerHandler handles roster endpoints
type PlayerHandler struct {
	rosterService *roster.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(rosterService *roster.Service) *PlayerHandler {
	return &PlayerHandler{
		rosterService: rosterService,
	}
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.rosterService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersFromModel(players))
}

// Get handles GET /api/v1/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	player, err := h.rosterService.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Create handles POST /api/v1/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.PlayerPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if errs := validate.NewPlayer(req); len(errs) > 0 {
		WriteError(w, NewValidationError(errs))
		return
	}

	identity := middleware.MustGetIdentity(r.Context())

	player, err := h.rosterService.Create(r.Context(), identity.UserID, playerFromPayload(req))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.Created{ID: string(player.ID)})
}

// Update handles PUT /api/v1/players/{id}
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	var req request.PlayerPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if errs := validate.PlayerUpdate(req); len(errs) > 0 {
		WriteError(w, NewValidationError(errs))
		return
	}

	identity := middleware.MustGetIdentity(r.Context())

	player, err := h.rosterService.Update(r.Context(), identity.UserID, id, updateFromPayload(req))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Delete handles DELETE /api/v1/players/{id}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])
	identity := middleware.MustGetIdentity(r.Context())

	if err := h.rosterService.Delete(r.Context(), identity.UserID, id); err != nil {
		if errors.Is(err, model.ErrNotPlayerOwner) {
			WriteError(w, NewForbiddenError("You can only delete players you created"))
			return
		}
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Message{Message: "Player deleted successfully"})
}

// playerFromPayload builds a player from a validated creation payload
func playerFromPayload(req request.PlayerPayload) *model.Player {
	return &model.Player{
		Name:     *req.Name,
		Age:      req.Age.Int(),
		Position: model.Position(*req.Position),
		Team:     *req.Team,
		Physical: physicalFromPayload(req.Physical),
		Stats:    statsFromPayload(req.Stats),
	}
}

// updateFromPayload builds a partial update from a validated payload
func updateFromPayload(req request.PlayerPayload) roster.PlayerUpdate {
	update := roster.PlayerUpdate{
		Name: req.Name,
		Team: req.Team,
	}
	if req.Age != nil {
		age := req.Age.Int()
		update.Age = &age
	}
	if req.Position != nil {
		position := model.Position(*req.Position)
		update.Position = &position
	}
	if req.Physical != nil {
		physical := physicalFromPayload(req.Physical)
		update.Physical = &physical
	}
	if req.Stats != nil {
		stats := statsFromPayload(req.Stats)
		update.Stats = &stats
	}
	return update
}

func physicalFromPayload(p *request.PhysicalPayload) model.Physical {
	return model.Physical{
		Height:        p.Height.Int(),
		Weight:        p.Weight.Int(),
		PreferredFoot: model.Foot(*p.PreferredFoot),
	}
}

func statsFromPayload(s *request.StatsPayload) model.Stats {
	ratings := make(map[string]float64, len(s.SkillRatings))
	for k, v := range s.SkillRatings {
		ratings[k] = v.Float()
	}
	return model.Stats{
		MatchesPlayed: s.MatchesPlayed.Int(),
		GoalsScored:   s.GoalsScored.Int(),
		Assists:       s.Assists.Int(),
		SkillRatings:  ratings,
	}
}
