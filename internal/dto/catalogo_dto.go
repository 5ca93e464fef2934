package dto

import (
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/filtro"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
)

// ─── Filter / Pagination ─────────────────────────────────────────────────────

// CatalogoFilter is the public storefront query: one backend page is fetched
// and everything here is applied client-side on top of it.
type CatalogoFilter struct {
	Busqueda  string `form:"busqueda"`
	Categoria string `form:"categoria"`
	Marca     string `form:"marca"`
	Modelo    string `form:"modelo"`
	Anio      string `form:"anio"`
	PrecioMin string `form:"precio_min"`
	PrecioMax string `form:"precio_max"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=24" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// CatalogoResponse is the storefront page: filtered piezas with their
// principal photo attached, pagination recomputed from the filtered subset,
// and the cascading option sets for the filter dropdowns. FiltrosAplicados
// echoes the effective filters after cascade resets.
type CatalogoResponse struct {
	Data             []model.Pieza           `json:"data"`
	Paginacion       model.Paginacion        `json:"pagination"`
	Opciones         filtro.OpcionesCatalogo `json:"opciones"`
	FiltrosAplicados CatalogoFiltrosEco      `json:"filtros_aplicados"`
}

type CatalogoFiltrosEco struct {
	Busqueda  string `json:"busqueda"`
	Categoria string `json:"categoria"`
	Marca     string `json:"marca"`
	Modelo    string `json:"modelo"`
	Anio      string `json:"anio"`
}
