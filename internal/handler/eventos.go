package handler

import (
	"encoding/json"
	"io"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/bus"

	"github.com/gin-gonic/gin"
)

// EventosHandler streams vehicle-update events over SSE so list views can
// refresh a single row instead of refetching the whole catalog.
type EventosHandler struct {
	bus *bus.Bus
}

func NewEventosHandler(b *bus.Bus) *EventosHandler {
	return &EventosHandler{bus: b}
}

func (h *EventosHandler) Vehiculos(c *gin.Context) {
	ch, cancel := h.bus.Suscribir(32)
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			payload, err := json.Marshal(ev)
			if err != nil {
				return true
			}
			c.SSEvent("vehiculo-actualizado", string(payload))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
