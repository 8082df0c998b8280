package handlers

import (
	"net/http"
	"strconv"

	"realestate-listings/internal/database"
	"realestate-listings/internal/logger"
	"realestate-listings/internal/models"
	"realestate-listings/internal/search"

	"github.com/gin-gonic/gin"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

// IDSearcher finds listing ids for a free-text query, most relevant first.
type IDSearcher interface {
	SearchIDs(query string, limit int64) ([]string, error)
}

// PropertyHandler serves the public listing endpoints.
type PropertyHandler struct {
	store    database.PropertyStore
	searcher IDSearcher
}

// NewPropertyHandler creates a property handler. searcher may be nil, in which
// case /api/search falls back to the query engine.
func NewPropertyHandler(store database.PropertyStore, searcher IDSearcher) *PropertyHandler {
	return &PropertyHandler{store: store, searcher: searcher}
}

// List returns the listings matching the query-string filter.
func (h *PropertyHandler) List(c *gin.Context) {
	filter, err := search.ParseFilter(c.Request.URL.Query())
	if err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidFilter, err)
		return
	}

	properties, err := h.store.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgFetchProperties, err)
		return
	}

	result, err := search.Query(properties, &filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgFetchProperties, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Featured returns the newest available listings.
func (h *PropertyHandler) Featured(c *gin.Context) {
	properties, err := h.store.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgFetchFeatured, err)
		return
	}
	c.JSON(http.StatusOK, search.Featured(properties))
}

// Get returns one listing and counts the view.
func (h *PropertyHandler) Get(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	property, err := h.store.Get(ctx, id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgFetchProperty, err)
		return
	}
	if property == nil {
		respondError(c, http.StatusNotFound, msgPropertyNotFound, nil)
		return
	}

	updated, err := h.store.IncrementViews(ctx, id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgFetchProperty, err)
		return
	}
	if updated == nil {
		respondError(c, http.StatusNotFound, msgPropertyNotFound, nil)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Search runs a free-text search. Meilisearch answers when configured; on
// failure or when disabled the query engine's substring search is used.
func (h *PropertyHandler) Search(c *gin.Context) {
	query := c.Query("q")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultSearchLimit)))
	if err != nil || limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}
	ctx := c.Request.Context()

	if h.searcher != nil && query != "" {
		ids, err := h.searcher.SearchIDs(query, int64(limit))
		if err == nil {
			result := make([]models.Property, 0, len(ids))
			for _, id := range ids {
				p, err := h.store.Get(ctx, id)
				if err != nil {
					respondError(c, http.StatusInternalServerError, msgSearchFailed, err)
					return
				}
				// The index can lag behind the store.
				if p != nil {
					result = append(result, *p)
				}
			}
			c.JSON(http.StatusOK, result)
			return
		}
		logger.Log.WithError(err).Warn("Meilisearch query failed, falling back to query engine")
	}

	properties, err := h.store.List(ctx)
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgSearchFailed, err)
		return
	}
	result, err := search.Query(properties, &search.PropertyFilter{Search: query})
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgSearchFailed, err)
		return
	}
	if len(result) > limit {
		result = result[:limit]
	}
	c.JSON(http.StatusOK, result)
}
