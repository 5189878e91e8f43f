package api

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"permit-portal/internal/database"
	"permit-portal/internal/models"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func TestAPI_EndToEnd_FileLifecycle(t *testing.T) {
	env := newTestEnv(t)

	tokenA, userA := env.register(t, "Alice", "alice@example.com", models.RoleHomeowner)
	tokenB, _ := env.register(t, "Bob", "bob@example.com", models.RoleContractor)

	rr := env.do(t, http.MethodPost, "/api/auth/login", "", LoginRequest{Email: "alice@example.com", Password: "password123"})
	require.Equal(t, http.StatusOK, rr.Code)

	project := env.createProject(t, tokenA, "Kitchen remodel", "Springfield")
	require.Equal(t, userA.ID, project.OwnerID)

	file := env.uploadOK(t, tokenA, project.ID, "kitchen.pdf", []byte("%PDF-1.4 kitchen"))

	rr = env.do(t, http.MethodGet, "/api/files/"+file.ID, tokenA, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var detail FileDetailResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &detail))
	require.True(t, strings.HasSuffix(detail.DownloadURL, "/"+file.ID+"/download"))

	rr = env.do(t, http.MethodDelete, "/api/files/"+file.ID, tokenB, nil)
	require.Equal(t, http.StatusForbidden, rr.Code)

	rr = env.do(t, http.MethodDelete, "/api/files/"+file.ID, tokenA, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = env.do(t, http.MethodGet, "/api/files/"+file.ID, tokenA, nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAPI_Events(t *testing.T) {
	env := newTestEnv(t)
	tokenA, _ := env.register(t, "A", "a@example.com", "")
	tokenB, _ := env.register(t, "B", "b@example.com", "")

	project := env.createProject(t, tokenA, "Garage", "Springfield")
	env.uploadOK(t, tokenA, project.ID, "plan.pdf", []byte("plan"))
	rr := env.do(t, http.MethodPut, "/api/projects/"+project.ID, tokenA, map[string]string{"status": "submitted"})
	require.Equal(t, http.StatusOK, rr.Code)

	getEvents := func(t *testing.T, token, query string) []database.Event {
		t.Helper()
		rr := env.do(t, http.MethodGet, "/api/events"+query, token, nil)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		var events []database.Event
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &events))
		return events
	}

	events := getEvents(t, tokenA, "")
	require.Len(t, events, 3)
	require.Equal(t, database.EventProjectCreated, events[0].EventType)
	require.Equal(t, database.EventFileUploaded, events[1].EventType)
	require.Equal(t, database.EventProjectUpdated, events[2].EventType)

	later := getEvents(t, tokenA, "?since="+jsonNumber(events[0].ID))
	require.Len(t, later, 2)

	rr = env.do(t, http.MethodGet, "/api/events", tokenB, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `[]`, rr.Body.String())

	rr = env.do(t, http.MethodGet, "/api/events?since=abc", tokenA, nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAPI_WebSocketReceivesEvents(t *testing.T) {
	env := newTestEnv(t)
	token, user := env.register(t, "A", "a@example.com", "")

	srv := httptest.NewServer(env.handler)
	defer srv.Close()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=" + token

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return env.hub.ClientCount(user.ID) == 1 }, time.Second, 10*time.Millisecond)

	project := env.createProject(t, token, "Garage", "Springfield")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var event database.Event
	require.NoError(t, json.Unmarshal(msg, &event))
	require.Equal(t, database.EventProjectCreated, event.EventType)
	require.Contains(t, string(event.Payload), project.ID)
}

func TestAPI_WebSocketRejectsInvalidToken(t *testing.T) {
	env := newTestEnv(t)

	srv := httptest.NewServer(env.handler)
	defer srv.Close()
	base := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"

	for _, url := range []string{base, base + "?token=garbage"} {
		_, resp, err := websocket.DefaultDialer.Dial(url, nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
}

func TestAPI_WebSocketAfterHubStopped(t *testing.T) {
	env := newTestEnv(t)
	token, user := env.register(t, "A", "a@example.com", "")
	env.stopHub()

	srv := httptest.NewServer(env.handler)
	defer srv.Close()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=" + token

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err = conn.ReadMessage()
	require.Error(t, err)
	var netErr net.Error
	require.False(t, errors.As(err, &netErr) && netErr.Timeout(), "connection was left hanging")
	require.Zero(t, env.hub.ClientCount(user.ID))
}
