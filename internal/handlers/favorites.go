package handlers

import (
	"net/http"
	"time"

	"realestate-listings/internal/database"
	"realestate-listings/internal/favorites"
	"realestate-listings/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

// FavoritesHandler manages per-client favorite sets and streams their changes.
type FavoritesHandler struct {
	hub      *favorites.Hub
	store    database.PropertyStore
	upgrader websocket.Upgrader
}

// NewFavoritesHandler creates a favorites handler. Websocket origins are
// checked against allowedOrigins; an empty list allows any origin.
func NewFavoritesHandler(hub *favorites.Hub, store database.PropertyStore, allowedOrigins []string) *FavoritesHandler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return &FavoritesHandler{
		hub:   hub,
		store: store,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return len(allowed) == 0 || origin == "" || allowed[origin]
			},
		},
	}
}

func clientID(c *gin.Context) (string, bool) {
	id := c.Query("client_id")
	if id == "" {
		respondError(c, http.StatusBadRequest, msgClientIDRequired, nil)
		return "", false
	}
	return id, true
}

// propertyExists answers 404 or 500 itself when it returns false.
func (h *FavoritesHandler) propertyExists(c *gin.Context, id string) bool {
	p, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgFetchProperty, err)
		return false
	}
	if p == nil {
		respondError(c, http.StatusNotFound, msgPropertyNotFound, nil)
		return false
	}
	return true
}

// List returns the client's favorite ids.
func (h *FavoritesHandler) List(c *gin.Context) {
	client, ok := clientID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"ids": h.hub.IDs(client)})
}

// Add marks a listing as favorite.
func (h *FavoritesHandler) Add(c *gin.Context) {
	client, ok := clientID(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if !h.propertyExists(c, id) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"ids": h.hub.Add(client, id)})
}

// Remove unmarks a listing. Removing an id that is not a favorite is not an error.
func (h *FavoritesHandler) Remove(c *gin.Context) {
	client, ok := clientID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"ids": h.hub.Remove(client, c.Param("id"))})
}

// Toggle flips a listing's favorite state.
func (h *FavoritesHandler) Toggle(c *gin.Context) {
	client, ok := clientID(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if !h.hub.Contains(client, id) && !h.propertyExists(c, id) {
		return
	}
	favorite, ids := h.hub.Toggle(client, id)
	c.JSON(http.StatusOK, gin.H{"favorite": favorite, "ids": ids})
}

type favoritesEvent struct {
	IDs []string `json:"ids"`
}

// Stream upgrades to a websocket and pushes {"ids": [...]} on every change,
// starting with the current state.
func (h *FavoritesHandler) Stream(c *gin.Context) {
	client, ok := clientID(c)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		logger.Log.WithError(err).Warn("favorites: websocket upgrade failed")
		return
	}
	defer conn.Close()

	current, updates, cancel := h.hub.Subscribe(client, 1)
	defer cancel()

	closed := make(chan struct{})
	go readUntilClosed(conn, closed)

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	if err := writeEvent(conn, current); err != nil {
		return
	}
	for {
		select {
		case <-closed:
			return
		case ids, ok := <-updates:
			if !ok {
				return
			}
			if err := writeEvent(conn, ids); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func writeEvent(conn *websocket.Conn, ids []string) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(favoritesEvent{IDs: ids})
}

// readUntilClosed discards client messages and keeps the pong deadline fresh.
func readUntilClosed(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)
	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
