package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readEvent(t *testing.T, conn *websocket.Conn) []string {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var ev favoritesEvent
	require.NoError(t, conn.ReadJSON(&ev))
	return ev.IDs
}

func TestFavoritesStream(t *testing.T) {
	env := newTestEnv(t, testOptions{})
	a := env.byTitle(t, "Luxury 3BHK Penthouse")

	server := httptest.NewServer(env.router)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/favorites/ws?client_id=viewer"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	assert.Empty(t, readEvent(t, conn))

	req, err := http.NewRequest(http.MethodPut, server.URL+"/api/favorites/"+a.ID+"?client_id=viewer", nil)
	require.NoError(t, err)
	put, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	put.Body.Close()
	require.Equal(t, http.StatusOK, put.StatusCode)

	assert.Equal(t, []string{a.ID}, readEvent(t, conn))

	// Another client's changes are not streamed here.
	req, err = http.NewRequest(http.MethodPost, server.URL+"/api/favorites/"+a.ID+"/toggle?client_id=other", nil)
	require.NoError(t, err)
	other, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	other.Body.Close()

	req, err = http.NewRequest(http.MethodDelete, server.URL+"/api/favorites/"+a.ID+"?client_id=viewer", nil)
	require.NoError(t, err)
	del, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	del.Body.Close()

	assert.Empty(t, readEvent(t, conn))
}

func TestFavoritesStream_RejectsForeignOrigin(t *testing.T) {
	env := newTestEnv(t, testOptions{})
	handler := NewFavoritesHandler(nil, env.store, []string{"http://localhost:5173"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	assert.False(t, handler.upgrader.CheckOrigin(req))

	req.Header.Set("Origin", "http://localhost:5173")
	assert.True(t, handler.upgrader.CheckOrigin(req))

	req.Header.Del("Origin")
	assert.True(t, handler.upgrader.CheckOrigin(req))
}

func TestFavoritesStream_RequiresClientID(t *testing.T) {
	env := newTestEnv(t, testOptions{})

	w := env.do(http.MethodGet, "/api/favorites/ws", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
