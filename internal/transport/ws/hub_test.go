package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobquest/internal/config"
	"jobquest/internal/service"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub
}

func TestHubBroadcast(t *testing.T) {
	hub := startHub(t)
	conn := &Connection{AdminID: "admin_1", Send: make(chan []byte, 4)}
	require.True(t, hub.Register(conn))

	hub.BroadcastToAdmins(service.EventAssessmentSubmitted, map[string]string{"id": "abc"})

	select {
	case data := <-conn.Send:
		var msg Message
		require.NoError(t, json.Unmarshal(data, &msg))
		assert.Equal(t, MessageType("assessment_submitted"), msg.Type)
		assert.JSONEq(t, `{"id":"abc"}`, string(msg.Payload))
	case <-time.After(time.Second):
		t.Fatal("no message delivered")
	}

	hub.Unregister(conn)
	_, open := <-conn.Send
	assert.False(t, open, "unregister closes the send channel")
}

func TestHubStopsCleanly(t *testing.T) {
	hub := NewHub(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	conn := &Connection{Send: make(chan []byte, 1)}
	require.True(t, hub.Register(conn))
	cancel()
	<-stopped

	assert.False(t, hub.Register(&Connection{Send: make(chan []byte)}))
	assert.NotPanics(t, func() { hub.BroadcastToAdmins("x", nil) })
}

func TestAdminWS(t *testing.T) {
	hub := startHub(t)
	auth := service.NewAuthService(config.AuthConfig{Username: "admin", Password: "pw", JWTSecret: "s"})
	h := NewHandler(hub, auth, zap.NewNop())
	srv := httptest.NewServer(http.HandlerFunc(h.AdminWS))
	t.Cleanup(srv.Close)
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")

	t.Run("rejects missing token", func(t *testing.T) {
		resp, err := http.Get(srv.URL)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("streams events", func(t *testing.T) {
		login, err := auth.Login("admin", "pw")
		require.NoError(t, err)

		c, _, err := websocket.DefaultDialer.Dial(wsURL+"?token="+login.Token, nil)
		require.NoError(t, err)
		defer c.Close()

		got := make(chan Message, 1)
		go func() {
			var msg Message
			if err := c.ReadJSON(&msg); err == nil {
				got <- msg
			}
		}()

		// Registration races the handshake, so keep publishing until one lands
		deadline := time.After(2 * time.Second)
		tick := time.NewTicker(20 * time.Millisecond)
		defer tick.Stop()
		for {
			select {
			case msg := <-got:
				assert.Equal(t, MessageType(service.EventAssessmentSubmitted), msg.Type)
				return
			case <-tick.C:
				hub.BroadcastToAdmins(service.EventAssessmentSubmitted, map[string]string{"id": "abc"})
			case <-deadline:
				t.Fatal("no event received")
			}
		}
	})
}
