// Package bus is the in-process replacement for the old global
// "vehiculo-actualizado" browser event: background enrichment publishes
// updated vehicles here and list views (SSE subscribers) receive them
// without a full refetch. Subscriptions are explicit, no global event-name
// strings.
package bus

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
)

// VehiculoActualizado is the event payload: the vehicle id plus its freshly
// enriched record.
type VehiculoActualizado struct {
	ID       int64           `json:"id"`
	Vehiculo *model.Vehiculo `json:"vehiculo"`
}

// Bus fans VehiculoActualizado events out to subscribers. Publish never
// blocks: a subscriber whose buffer is full misses the event and catches up
// on its next refetch. Enrichment must not stall on a slow consumer.
type Bus struct {
	mu   sync.Mutex
	subs map[int]chan VehiculoActualizado
	next int
}

func New() *Bus {
	return &Bus{subs: make(map[int]chan VehiculoActualizado)}
}

// Suscribir registers a subscriber with the given buffer and returns its
// channel plus a cancel func that must be called to release it.
func (b *Bus) Suscribir(buffer int) (<-chan VehiculoActualizado, func()) {
	if buffer < 1 {
		buffer = 16
	}
	ch := make(chan VehiculoActualizado, buffer)

	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = ch
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

// Publicar delivers the event to every current subscriber, dropping it for
// any subscriber whose buffer is full.
func (b *Bus) Publicar(ev VehiculoActualizado) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			log.Debug().Int("suscriptor", id).Int64("id_vehiculo", ev.ID).
				Msg("bus: suscriptor saturado, evento descartado")
		}
	}
}

// Suscriptores returns the current subscriber count (health endpoint).
func (b *Bus) Suscriptores() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
