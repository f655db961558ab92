package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sd-cms-api/internal/bus"
)

// UpdatesHandler bridges the in-process change bus to browser pages over
// Server-Sent Events. Signals carry no payload; clients re-fetch full
// state from the public endpoints when their topic fires. A client that
// connects after a signal relies on its own initial load, matching the
// bus contract.
type UpdatesHandler struct {
	bus *bus.Bus
}

// NewUpdatesHandler builds a new handler.
func NewUpdatesHandler(b *bus.Bus) *UpdatesHandler {
	return &UpdatesHandler{bus: b}
}

// Stream godoc
// @Summary Subscribe to content change notifications
// @Tags Updates
// @Produce text/event-stream
// @Success 200
// @Router /updates [get]
func (h *UpdatesHandler) Stream(c *gin.Context) {
	// Buffered so a synchronous publish never blocks on a slow client;
	// an overflowing signal is dropped, which is safe because clients
	// reload full state per signal rather than applying deltas.
	signals := make(chan bus.Topic, 16)
	forward := func(topic bus.Topic) func() {
		return func() {
			select {
			case signals <- topic:
			default:
			}
		}
	}

	subs := []interface{ Cancel() }{
		h.bus.Subscribe(bus.TopicAnnouncements, forward(bus.TopicAnnouncements)),
		h.bus.Subscribe(bus.TopicEvents, forward(bus.TopicEvents)),
		h.bus.Subscribe(bus.TopicStaff, forward(bus.TopicStaff)),
	}
	defer func() {
		for _, sub := range subs {
			sub.Cancel()
		}
	}()

	c.Header("Cache-Control", "no-store")
	c.Stream(func(w io.Writer) bool {
		select {
		case topic := <-signals:
			c.SSEvent(string(topic), "")
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
