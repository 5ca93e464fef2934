package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
)

func TestPublicarEntregaATodos(t *testing.T) {
	b := New()
	ch1, cancel1 := b.Suscribir(4)
	ch2, cancel2 := b.Suscribir(4)
	defer cancel1()
	defer cancel2()

	b.Publicar(VehiculoActualizado{ID: 7, Vehiculo: &model.Vehiculo{ID: 7, Marca: "Ford"}})

	for _, ch := range []<-chan VehiculoActualizado{ch1, ch2} {
		select {
		case ev := <-ch:
			assert.Equal(t, int64(7), ev.ID)
		default:
			t.Fatal("subscriber did not receive the event")
		}
	}
}

func TestPublicarNoBloqueaConBufferLleno(t *testing.T) {
	b := New()
	_, cancel := b.Suscribir(1)
	defer cancel()

	// Second publish overflows the buffer; it must return, not block.
	b.Publicar(VehiculoActualizado{ID: 1})
	b.Publicar(VehiculoActualizado{ID: 2})
}

func TestCancelarLiberaElSuscriptor(t *testing.T) {
	b := New()
	ch, cancel := b.Suscribir(1)
	require.Equal(t, 1, b.Suscriptores())

	cancel()
	assert.Equal(t, 0, b.Suscriptores())

	_, abierto := <-ch
	assert.False(t, abierto, "channel closed on cancel")

	// A second cancel is harmless.
	cancel()
}

func TestPublicarSinSuscriptores(t *testing.T) {
	b := New()
	b.Publicar(VehiculoActualizado{ID: 1})
	assert.Equal(t, 0, b.Suscriptores())
}
