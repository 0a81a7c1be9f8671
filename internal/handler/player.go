package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BharAnu2109/Cricket/internal/model"
	"github.com/BharAnu2109/Cricket/internal/repository"
	"github.com/BharAnu2109/Cricket/internal/service"
	"github.com/BharAnu2109/Cricket/pkg/response"
)

type PlayerHandler struct {
	svc service.PlayerService
}

func NewPlayerHandler(svc service.PlayerService) *PlayerHandler { return &PlayerHandler{svc: svc} }

func (h *PlayerHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/players")
	{
		g.POST("", h.create)
		g.GET("", h.list)
		g.GET("/search", h.searchByName)
		g.GET("/country/:country", h.listByCountry)
		g.GET("/role/:role", h.listByRole)
		g.GET("/stats/country/:country/count", h.countByCountry)
		g.GET("/stats/role/:role/count", h.countByRole)
		g.GET("/:id", h.getByID)
		g.PUT("/:id", h.update)
		g.DELETE("/:id", h.delete)
		g.PUT("/:id/activate", h.activate)
		g.PUT("/:id/deactivate", h.deactivate)
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "id", Message: "must be a valid integer"}}))
		return 0, false
	}
	return id, true
}

func (h *PlayerHandler) create(c *gin.Context) {
	var dto model.PlayerDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	created, err := h.svc.CreatePlayer(c.Request.Context(), dto)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, created)
}

func (h *PlayerHandler) getByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	player, err := h.svc.GetPlayer(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, player)
}

// list serves both the plain paginated listing and the filtered one.
// Absent query parameters leave their predicate unset; "is_active=false"
// is a real predicate, distinct from the parameter missing entirely.
func (h *PlayerHandler) list(c *gin.Context) {
	// Atoi errors are ignored intentionally: 0 falls back to service defaults.
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	page := repository.Page{Limit: limit, Offset: offset}

	var filter repository.PlayerFilter
	if country, ok := c.GetQuery("country"); ok {
		filter.Country = &country
	}
	if roleStr, ok := c.GetQuery("role"); ok {
		role, valid := model.ParsePlayingRole(roleStr)
		if !valid {
			response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "role", Message: "must be a valid playing role"}}))
			return
		}
		filter.Role = &role
	}
	if activeStr, ok := c.GetQuery("is_active"); ok {
		active, err := strconv.ParseBool(strings.TrimSpace(activeStr))
		if err != nil {
			response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "is_active", Message: "must be true or false"}}))
			return
		}
		filter.IsActive = &active
	}

	res, err := h.svc.ListPlayersFiltered(c.Request.Context(), filter, page)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func (h *PlayerHandler) listByCountry(c *gin.Context) {
	players, err := h.svc.ListPlayersByCountry(c.Request.Context(), c.Param("country"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, players)
}

func (h *PlayerHandler) listByRole(c *gin.Context) {
	role, valid := model.ParsePlayingRole(c.Param("role"))
	if !valid {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "role", Message: "must be a valid playing role"}}))
		return
	}
	players, err := h.svc.ListPlayersByRole(c.Request.Context(), role)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, players)
}

func (h *PlayerHandler) searchByName(c *gin.Context) {
	players, err := h.svc.SearchPlayersByName(c.Request.Context(), c.Query("name"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, players)
}

func (h *PlayerHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var dto model.PlayerDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	updated, err := h.svc.UpdatePlayer(c.Request.Context(), id, dto)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, updated)
}

func (h *PlayerHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.DeletePlayer(c.Request.Context(), id); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PlayerHandler) activate(c *gin.Context)   { h.setActive(c, true) }
func (h *PlayerHandler) deactivate(c *gin.Context) { h.setActive(c, false) }

func (h *PlayerHandler) setActive(c *gin.Context, active bool) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	player, err := h.svc.SetPlayerActive(c.Request.Context(), id, active)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, player)
}

func (h *PlayerHandler) countByCountry(c *gin.Context) {
	count, err := h.svc.CountPlayersByCountry(c.Request.Context(), c.Param("country"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"count": count})
}

func (h *PlayerHandler) countByRole(c *gin.Context) {
	role, valid := model.ParsePlayingRole(c.Param("role"))
	if !valid {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "role", Message: "must be a valid playing role"}}))
		return
	}
	count, err := h.svc.CountPlayersByRole(c.Request.Context(), role)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"count": count})
}
