package httpserver

import "github.com/gin-gonic/gin"

func (h *handler) listTeams(c *gin.Context) {
	teams, err := h.deps.Teams.List(c.Request.Context())
	if err != nil {
		h.fail(c, msgInvalidTeam, err)
		return
	}
	h.ok(c, teams, "teams listed", "count", len(teams))
}

func (h *handler) createTeam(c *gin.Context) {
	var req teamRequest
	if err := bindJSON(c, &req); err != nil {
		h.fail(c, msgInvalidTeam, err)
		return
	}
	team, err := h.deps.Teams.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		h.fail(c, msgInvalidTeam, err)
		return
	}
	h.ok(c, team, "team created", "id", team.ID)
}

func (h *handler) listPlayers(c *gin.Context) {
	id := c.Param("id")
	players, err := h.deps.Teams.Players(c.Request.Context(), id)
	if err != nil {
		h.fail(c, msgInvalidTeam, err)
		return
	}
	h.ok(c, players, "players listed", "team_id", id, "count", len(players))
}

func (h *handler) addPlayer(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var req playerRequest
	if err := bindWithParent(c, &req, func() error {
		_, err := h.deps.Teams.Get(ctx, id)
		return err
	}); err != nil {
		h.fail(c, msgInvalidTeam, err)
		return
	}
	team, err := h.deps.Teams.AddPlayer(ctx, id, req.toDomain())
	if err != nil {
		h.fail(c, msgInvalidTeam, err)
		return
	}
	h.ok(c, team, "player added", "team_id", id, "players", len(team.Players))
}

func (h *handler) deleteTeam(c *gin.Context) {
	team, err := h.deps.Teams.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, msgInvalidTeam, err)
		return
	}
	h.ok(c, team, "team deleted", "id", team.ID)
}
