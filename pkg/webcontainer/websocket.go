package webcontainer

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/panekit/panekit/internal/errors"
)

// clientFrame is a request from the client over the sync socket.
type clientFrame struct {
	Type string `json:"type"`
}

// errorFrame reports a failed pass to the client.
type errorFrame struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// serveSync upgrades to a WebSocket, sends one server message, then answers
// every {"type":"sync"} frame with a fresh message until the client leaves.
func (c *Container) serveSync(w http.ResponseWriter, r *http.Request) {
	logger := c.config.Logger.With("remote", r.RemoteAddr)

	conn, err := c.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		c.metrics.wsErrors.WithLabelValues("upgrade").Inc()
		logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	if err := c.sendSync(conn, r); err != nil {
		c.metrics.wsErrors.WithLabelValues("write").Inc()
		logger.Error("sync write failed", "error", err)
		return
	}

	for {
		conn.SetReadDeadline(time.Now().Add(c.config.ReadTimeout))
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure) {
				c.metrics.wsErrors.WithLabelValues("read").Inc()
				logger.Error("read error", "error", err)
			}
			return
		}

		var frame clientFrame
		if err := json.Unmarshal(msg, &frame); err != nil {
			c.metrics.wsErrors.WithLabelValues("decode").Inc()
			logger.Warn("frame decode error", "error", err)
			continue
		}
		if frame.Type != "sync" {
			logger.Warn("unknown frame type", "type", frame.Type)
			continue
		}
		if err := c.sendSync(conn, r); err != nil {
			c.metrics.wsErrors.WithLabelValues("write").Inc()
			logger.Error("sync write failed", "error", err)
			return
		}
	}
}

// sendSync runs a pass over the root components and writes the result.
// A failed pass is reported to the client as an error frame.
func (c *Container) sendSync(conn *websocket.Conn, r *http.Request) error {
	var payload []byte
	oc, err := c.Synchronize(r.Context(), c.config.Root()...)
	if err == nil {
		payload, err = oc.Encode()
	}
	if err != nil {
		c.config.Logger.Error("synchronization failed", "error", err)
		payload, _ = json.Marshal(errorFrame{Error: err.Error(), Code: errors.Code(err)})
	}

	conn.SetWriteDeadline(time.Now().Add(c.config.WriteTimeout))
	return conn.WriteMessage(websocket.TextMessage, payload)
}
