package httpapi

import (
	"io"

	"github.com/gin-gonic/gin"
)

const (
	eventReady  = "ready"
	eventOrders = "orders"
)

// @Summary Order change feed
// @Description Server-sent events. "ready" carries the current list, then "orders" follows every mutation.
// @Tags orders
// @Produce text/event-stream
// @Success 200 {array} orderView
// @Router /events [get]
func (s *Server) events(c *gin.Context) {
	// one pending signal is enough: each event carries the full list
	changed := make(chan struct{}, 1)
	unsubscribe := s.orders.Subscribe(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	ctx := c.Request.Context()
	ready := false
	c.Stream(func(w io.Writer) bool {
		if !ready {
			ready = true
			c.SSEvent(eventReady, s.snapshot(c))
			return true
		}
		select {
		case <-ctx.Done():
			return false
		case <-s.streams.Done():
			return false
		case <-changed:
			c.SSEvent(eventOrders, s.snapshot(c))
			return true
		}
	})
}

func (s *Server) snapshot(c *gin.Context) []orderView {
	list := s.orders.ListOrders(c)
	out := make([]orderView, 0, len(list))
	for _, o := range list {
		out = append(out, newOrderView(o))
	}
	return out
}
