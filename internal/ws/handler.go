package ws

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

type Handler struct {
	hub      *Hub
	searcher Searcher
	window   time.Duration
	logger   zerolog.Logger
}

func NewHandler(hub *Hub, searcher Searcher, window time.Duration, logger zerolog.Logger) *Handler {
	return &Handler{hub: hub, searcher: searcher, window: window, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/ws/categories/search", h.HandleCategorySearchWS)
}

func (h *Handler) HandleCategorySearchWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil || h.searcher == nil {
		return fiber.ErrServiceUnavailable
	}
	return adaptor.HTTPHandler(h)(c)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("ws upgrade failed")
		return
	}

	client := NewClient(h.hub, conn, h.searcher, h.window, h.logger)
	h.hub.Register(client)
	go client.WritePump()
	go client.ReadPump()
}
