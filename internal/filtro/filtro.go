// Package filtro narrows an already-fetched backend page by predicates the
// upstream does not support (free-text search, cross-filters, ranges) and
// recomputes the pagination block so the UI never shows a totalPages
// inconsistent with the filtered total.
//
// Known, preserved limitation: filters only ever see one backend page's
// worth of data — pagination becomes a property of the current filtered
// view, not of the underlying dataset.
package filtro

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
)

// The "all" sentinels. A filter holding one of these (or empty) is inactive:
// a no-op, never a match-nothing condition.
const (
	SentinelTodas = "todas"
	SentinelTodos = "todos"
)

// Activo reports whether a string filter value is actually filtering.
func Activo(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", SentinelTodas, SentinelTodos:
		return false
	}
	return true
}

func contiene(campo, termino string) bool {
	return strings.Contains(strings.ToLower(campo), strings.ToLower(termino))
}

// FiltrosVehiculo are the client-side filters of the vehicle origin page.
type FiltrosVehiculo struct {
	Busqueda    string
	Marca       string
	Modelo      string
	Combustible string
	Estado      string
	AnioDesde   int
	AnioHasta   int
}

// Cumple evaluates the AND of every active filter against one vehicle.
// Free text searches marca, modelo, version, matricula and vin.
func (f FiltrosVehiculo) Cumple(v model.Vehiculo) bool {
	if Activo(f.Busqueda) {
		t := f.Busqueda
		if !contiene(v.Marca, t) && !contiene(v.Modelo, t) && !contiene(v.Version, t) &&
			!contiene(v.Matricula, t) && !contiene(v.VIN, t) {
			return false
		}
	}
	if Activo(f.Marca) && !strings.EqualFold(v.Marca, f.Marca) {
		return false
	}
	if Activo(f.Modelo) && !strings.EqualFold(v.Modelo, f.Modelo) {
		return false
	}
	if Activo(f.Combustible) && !strings.EqualFold(v.TipoCombustible, f.Combustible) {
		return false
	}
	if Activo(f.Estado) && !strings.EqualFold(string(v.Estado), f.Estado) {
		return false
	}
	if f.AnioDesde > 0 && v.AnioFabricacion < f.AnioDesde {
		return false
	}
	if f.AnioHasta > 0 && v.AnioFabricacion > f.AnioHasta {
		return false
	}
	return true
}

// FiltrosPieza are the public catalog filters. Marca/Modelo/Anio match the
// vehicle-origin metadata embedded in datos_adicionales.
type FiltrosPieza struct {
	Busqueda  string
	Categoria string // tipo_pieza
	Marca     string
	Modelo    string
	Anio      string
	Estado    string
	PrecioMin *decimal.Decimal
	PrecioMax *decimal.Decimal
}

func (f FiltrosPieza) Cumple(p model.Pieza) bool {
	origen := p.Origen()

	if Activo(f.Busqueda) {
		t := f.Busqueda
		if !contiene(p.TipoPieza, t) && !contiene(p.Descripcion, t) && !contiene(p.RefOEM, t) &&
			!contiene(origen.Marca, t) && !contiene(origen.Modelo, t) {
			return false
		}
	}
	if Activo(f.Categoria) && !strings.EqualFold(p.TipoPieza, f.Categoria) {
		return false
	}
	if Activo(f.Marca) && !strings.EqualFold(origen.Marca, f.Marca) {
		return false
	}
	if Activo(f.Modelo) && !strings.EqualFold(origen.Modelo, f.Modelo) {
		return false
	}
	if Activo(f.Anio) && f.Anio != strconv.Itoa(origen.AnioFabricacion) {
		return false
	}
	if Activo(f.Estado) && !strings.EqualFold(string(p.Estado), f.Estado) {
		return false
	}
	if f.PrecioMin != nil && p.PrecioVenta.LessThan(*f.PrecioMin) {
		return false
	}
	if f.PrecioMax != nil && p.PrecioVenta.GreaterThan(*f.PrecioMax) {
		return false
	}
	return true
}

// FiltrarVehiculos keeps the vehicles matching every active filter,
// preserving input order.
func FiltrarVehiculos(items []model.Vehiculo, f FiltrosVehiculo) []model.Vehiculo {
	out := make([]model.Vehiculo, 0, len(items))
	for _, v := range items {
		if f.Cumple(v) {
			out = append(out, v)
		}
	}
	return out
}

// FiltrarPiezas keeps the piezas matching every active filter, preserving
// input order.
func FiltrarPiezas(items []model.Pieza, f FiltrosPieza) []model.Pieza {
	out := make([]model.Pieza, 0, len(items))
	for _, p := range items {
		if f.Cumple(p) {
			out = append(out, p)
		}
	}
	return out
}

// RecalcularPaginacion derives the pagination block from the filtered subset
// — never from the original backend total. Invariant for any filter state:
// total == len(filtered) and totalPages == ceil(total/limit).
func RecalcularPaginacion(totalFiltrado, limit, page int) model.Paginacion {
	if limit < 1 {
		limit = 1
	}
	if page < 1 {
		page = 1
	}
	return model.Paginacion{
		Page:       page,
		Limit:      limit,
		Total:      totalFiltrado,
		TotalPages: (totalFiltrado + limit - 1) / limit,
	}
}
