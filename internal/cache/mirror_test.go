package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entidad struct {
	ID     int64
	Nombre string
}

func (e entidad) Clave() int64 { return e.ID }

func TestMirrorGetTrasUpsert(t *testing.T) {
	m := NewMirror[entidad]()

	_, ok := m.Get(1)
	assert.False(t, ok, "absence is a valid checked result")

	m.Upsert(entidad{ID: 1, Nombre: "motor"})
	got, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, "motor", got.Nombre)

	// Upsert by id replaces in place.
	m.Upsert(entidad{ID: 1, Nombre: "motor revisado"})
	got, _ = m.Get(1)
	assert.Equal(t, "motor revisado", got.Nombre)
	assert.Equal(t, 1, m.Len())
}

func TestMirrorPreservaOrdenDeInsercion(t *testing.T) {
	m := NewMirror[entidad]()
	m.UpsertTodos([]entidad{{ID: 3}, {ID: 1}, {ID: 2}})

	// Replacing an existing entry must not move it.
	m.Upsert(entidad{ID: 1, Nombre: "x"})

	lista := m.List()
	require.Len(t, lista, 3)
	assert.Equal(t, int64(3), lista[0].ID)
	assert.Equal(t, int64(1), lista[1].ID)
	assert.Equal(t, int64(2), lista[2].ID)
}

func TestMirrorRemove(t *testing.T) {
	m := NewMirror[entidad]()
	m.UpsertTodos([]entidad{{ID: 1}, {ID: 2}, {ID: 3}})

	m.Remove(2)
	_, ok := m.Get(2)
	assert.False(t, ok)
	assert.Equal(t, 2, m.Len())

	// Index stays consistent for the shifted tail.
	got, ok := m.Get(3)
	require.True(t, ok)
	assert.Equal(t, int64(3), got.ID)

	// Removing an absent id is a no-op.
	m.Remove(99)
	assert.Equal(t, 2, m.Len())
}

func TestMirrorCapacidadExpulsaElMasAntiguo(t *testing.T) {
	m := NewMirrorConCapacidad[entidad](2)
	m.Upsert(entidad{ID: 1})
	m.Upsert(entidad{ID: 2})
	m.Upsert(entidad{ID: 3})

	_, ok := m.Get(1)
	assert.False(t, ok, "oldest entry evicted")
	assert.Equal(t, 2, m.Len())

	lista := m.List()
	assert.Equal(t, int64(2), lista[0].ID)
	assert.Equal(t, int64(3), lista[1].ID)
}

func TestMirrorReset(t *testing.T) {
	m := NewMirror[entidad]()
	m.Upsert(entidad{ID: 1})
	m.Reset()
	assert.Equal(t, 0, m.Len())
	_, ok := m.Get(1)
	assert.False(t, ok)
}
