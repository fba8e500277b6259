package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rEtSaMfF/ffrk-bottle/internal/adapter"
	"github.com/rEtSaMfF/ffrk-bottle/internal/api/shared/dto"
	"github.com/rEtSaMfF/ffrk-bottle/internal/api/shared/executor"
	"github.com/rEtSaMfF/ffrk-bottle/internal/store"
)

// maxPayloadSize bounds the body of POST /post
const maxPayloadSize = 16 << 20

// Handler defines the interface for REST API handlers
type Handler interface {
	// Post imports a game payload tagged with an action key
	// POST /post
	Post(c *gin.Context)

	// GetByID resolves an id against every entity kind
	// GET /json/:id?all=<bool>&enemy=<bool>
	GetByID(c *gin.Context)

	// ListCategory lists every entity of a category
	// GET /json?category=<category>&rarity=<rarity>&filter=<filter>
	ListCategory(c *gin.Context)

	// GetByName resolves a page name
	// GET /name/:name
	GetByName(c *gin.Context)

	// ActiveEvents lists the event worlds open now
	// GET /events/active
	ActiveEvents(c *gin.Context)

	// DungeonsWithoutBattles lists dungeons whose battles were never imported
	// GET /reports/dungeons-without-battles
	DungeonsWithoutBattles(c *gin.Context)

	// BattlesWithoutConditions lists battles with no win conditions imported
	// GET /reports/battles-without-conditions
	BattlesWithoutConditions(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
	io       adapter.IO
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor, ioAdapter adapter.IO) Handler {
	return &handler{
		executor: exec,
		io:       ioAdapter,
	}
}

// Post imports a game payload tagged with an action key
func (h *handler) Post(c *gin.Context) {
	payload, err := h.io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxPayloadSize))
	if err != nil {
		respondBadRequest(c, "Failed to read request body", err.Error())
		return
	}

	response, err := h.executor.Post(c.Request.Context(), payload)
	if err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetByID resolves an id against every entity kind
func (h *handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid id")
		return
	}

	var query dto.LookupQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.executor.GetByID(c.Request.Context(), id, store.LookupOptions{
		All:   query.All,
		Enemy: query.Enemy,
	})
	if err != nil {
		respondError(c, err, "Failed to look up id")
		return
	}

	if result == nil {
		respondNotFound(c, "Nothing found for id", c.Param("id"))
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListCategory lists every entity of a category
func (h *handler) ListCategory(c *gin.Context) {
	var query dto.CategoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := query.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListCategory(c.Request.Context(), store.CategoryQuery{
		Category: query.Category,
		Rarity:   query.Rarity,
		Filter:   query.Filter,
	})
	if err != nil {
		respondError(c, err, "Failed to list category")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetByName resolves a page name
func (h *handler) GetByName(c *gin.Context) {
	result, err := h.executor.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err, "Failed to look up name")
		return
	}

	if result == nil {
		respondNotFound(c, "Nothing found for name", c.Param("name"))
		return
	}

	c.JSON(http.StatusOK, result)
}

// ActiveEvents lists the event worlds open now
func (h *handler) ActiveEvents(c *gin.Context) {
	response, err := h.executor.ActiveEvents(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list active events")
		return
	}

	c.JSON(http.StatusOK, response)
}

// DungeonsWithoutBattles lists dungeons whose battles were never imported
func (h *handler) DungeonsWithoutBattles(c *gin.Context) {
	response, err := h.executor.DungeonsWithoutBattles(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list dungeons")
		return
	}

	c.JSON(http.StatusOK, response)
}

// BattlesWithoutConditions lists battles with no win conditions imported
func (h *handler) BattlesWithoutConditions(c *gin.Context) {
	response, err := h.executor.BattlesWithoutConditions(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list battles")
		return
	}

	c.JSON(http.StatusOK, response)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "ffrk-api",
	})
}
