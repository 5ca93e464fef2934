package filtro

import (
	"sort"
	"strconv"
	"strings"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
)

// OpcionesCatalogo are the cascading dropdown candidates computed from the
// currently loaded page: selecting a marca narrows the modelo list to models
// co-occurring with that marca, and marca+modelo narrow categorias and anios.
type OpcionesCatalogo struct {
	Marcas     []string `json:"marcas"`
	Modelos    []string `json:"modelos"`
	Categorias []string `json:"categorias"`
	Anios      []string `json:"anios"`
}

// Opciones computes the candidate sets for the given piezas under the
// current selection, and resets any selected value that fell out of its
// narrowed candidate set back to the "all" sentinel (mutating f).
func Opciones(piezas []model.Pieza, f *FiltrosPieza) OpcionesCatalogo {
	var op OpcionesCatalogo

	marcas := newConjunto()
	for _, p := range piezas {
		marcas.agregar(p.Origen().Marca)
	}
	op.Marcas = marcas.ordenado()

	if Activo(f.Marca) && !marcas.contiene(f.Marca) {
		f.Marca = SentinelTodas
	}

	modelos := newConjunto()
	for _, p := range piezas {
		origen := p.Origen()
		if Activo(f.Marca) && !strings.EqualFold(origen.Marca, f.Marca) {
			continue
		}
		modelos.agregar(origen.Modelo)
	}
	op.Modelos = modelos.ordenado()

	if Activo(f.Modelo) && !modelos.contiene(f.Modelo) {
		f.Modelo = SentinelTodos
	}

	categorias := newConjunto()
	anios := newConjunto()
	for _, p := range piezas {
		origen := p.Origen()
		if Activo(f.Marca) && !strings.EqualFold(origen.Marca, f.Marca) {
			continue
		}
		if Activo(f.Modelo) && !strings.EqualFold(origen.Modelo, f.Modelo) {
			continue
		}
		categorias.agregar(p.TipoPieza)
		if origen.AnioFabricacion > 0 {
			anios.agregar(strconv.Itoa(origen.AnioFabricacion))
		}
	}
	op.Categorias = categorias.ordenado()
	op.Anios = anios.ordenado()

	if Activo(f.Categoria) && !categorias.contiene(f.Categoria) {
		f.Categoria = SentinelTodas
	}
	if Activo(f.Anio) && !anios.contiene(f.Anio) {
		f.Anio = SentinelTodos
	}

	return op
}

// conjunto is a case-insensitive string set that remembers the first-seen
// spelling for display.
type conjunto struct {
	vistos map[string]string
}

func newConjunto() *conjunto { return &conjunto{vistos: make(map[string]string)} }

func (c *conjunto) agregar(v string) {
	v = strings.TrimSpace(v)
	if v == "" {
		return
	}
	clave := strings.ToLower(v)
	if _, ok := c.vistos[clave]; !ok {
		c.vistos[clave] = v
	}
}

func (c *conjunto) contiene(v string) bool {
	_, ok := c.vistos[strings.ToLower(strings.TrimSpace(v))]
	return ok
}

func (c *conjunto) ordenado() []string {
	out := make([]string, 0, len(c.vistos))
	for _, v := range c.vistos {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
