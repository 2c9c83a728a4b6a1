package ws

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"archsdinos/internal/ports"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8 * 1024
	sendBuffer     = 64
)

var (
	errClientClosed = errors.New("client connection closed")
	errSlowClient   = errors.New("client send buffer full")
)

// Client is one authenticated websocket connection. It doubles as the
// player's event callback while the connection is alive.
type Client struct {
	conn   *websocket.Conn
	server *Server
	id     Identity

	send      chan outbound
	done      chan struct{}
	closeOnce sync.Once
}

var _ ports.PlayerCallback = (*Client)(nil)

func newClient(s *Server, conn *websocket.Conn, id Identity) *Client {
	return &Client{
		conn:   conn,
		server: s,
		id:     id,
		send:   make(chan outbound, sendBuffer),
		done:   make(chan struct{}),
	}
}

// Deliver queues a game event for the write loop. It never blocks: a client
// whose buffer is full is closed and picks the match up again on reconnect.
func (c *Client) Deliver(_ context.Context, kind string, payload any) error {
	return c.push(outbound{Type: kind, Payload: payload})
}

func (c *Client) push(msg outbound) error {
	select {
	case <-c.done:
		return errClientClosed
	default:
	}
	select {
	case c.send <- msg:
		return nil
	default:
		c.close()
		return errSlowClient
	}
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

func (c *Client) readLoop() {
	defer func() {
		c.close()
		c.server.disconnect(c)
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var env Envelope
		if err := c.conn.ReadJSON(&env); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.server.logger.WithField("user_id", c.id.UserID).Warn("websocket read error: %v", err)
			}
			return
		}
		c.server.handle(c, env)
	}
}

func (c *Client) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				c.server.logger.WithField("user_id", c.id.UserID).Warn("websocket write error: %v", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			return
		}
	}
}
