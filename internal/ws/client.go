package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"servi-search/internal/debounce"
	"servi-search/internal/delivery/http/dto"
	"servi-search/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
	sendBuffer     = 16
	searchTimeout  = 5 * time.Second
)

// Searcher runs a category search for a live-search client.
type Searcher interface {
	Search(ctx context.Context, query string) (usecase.CategorySearchResult, error)
}

// Client is one live-search socket. Incoming queries go through a per-client
// debouncer so only the last query of a typing burst is evaluated.
type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	searcher  Searcher
	debouncer *debounce.Debouncer
	logger    zerolog.Logger

	mu     sync.Mutex
	send   chan []byte
	closed bool
}

func NewClient(hub *Hub, conn *websocket.Conn, searcher Searcher, window time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		hub:       hub,
		conn:      conn,
		searcher:  searcher,
		debouncer: debounce.New(window),
		logger:    logger,
		send:      make(chan []byte, sendBuffer),
	}
}

// enqueue reports false when the client is closed or too slow to keep up.
func (c *Client) enqueue(msg []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

func (c *Client) ReadPump() {
	defer func() {
		c.debouncer.Stop()
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug().Err(err).Msg("ws read failed")
			}
			return
		}

		var msg InboundMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.reply(ErrorMessage{Type: TypeError, Message: "invalid message"})
			continue
		}

		switch msg.Type {
		case TypeSearch:
			c.debouncer.Trigger(func() { c.runSearch(msg) })
		default:
			c.reply(ErrorMessage{Type: TypeError, Seq: msg.Seq, Message: "unknown message type"})
		}
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) runSearch(msg InboundMessage) {
	ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
	defer cancel()

	res, err := c.searcher.Search(ctx, msg.Q)
	if err != nil {
		c.logger.Warn().Err(err).Int64("seq", msg.Seq).Msg("ws search failed")
		c.reply(ErrorMessage{Type: TypeError, Seq: msg.Seq, Message: "search unavailable"})
		return
	}

	c.reply(ResultsMessage{Type: TypeResults, Seq: msg.Seq, Data: dto.NewCategorySearchResponse(res)})
}

func (c *Client) reply(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		c.logger.Error().Err(err).Msg("ws encode failed")
		return
	}
	if !c.enqueue(b) {
		c.logger.Debug().Msg("ws reply dropped")
	}
}
