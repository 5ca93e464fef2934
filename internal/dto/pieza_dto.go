package dto

import (
	"github.com/shopspring/decimal"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearPiezaRequest struct {
	IDVehiculo       *int64          `json:"id_vehiculo"`
	TipoPieza        string          `json:"tipo_pieza"        validate:"required,min=2,max=80"`
	Descripcion      string          `json:"descripcion"`
	RefOEM           string          `json:"ref_oem"`
	Estado           string          `json:"estado"            validate:"required,oneof=nueva usada dañada en_revision"`
	PrecioVenta      decimal.Decimal `json:"precio_venta"      validate:"required"`
	PrecioCoste      decimal.Decimal `json:"precio_coste"`
	DatosAdicionales string          `json:"datos_adicionales"`
}

type ActualizarPiezaRequest struct {
	IDVehiculo       *int64           `json:"id_vehiculo"`
	TipoPieza        *string          `json:"tipo_pieza"        validate:"omitempty,min=2,max=80"`
	Descripcion      *string          `json:"descripcion"`
	RefOEM           *string          `json:"ref_oem"`
	Estado           *string          `json:"estado"            validate:"omitempty,oneof=nueva usada dañada en_revision"`
	PrecioVenta      *decimal.Decimal `json:"precio_venta"`
	PrecioCoste      *decimal.Decimal `json:"precio_coste"`
	DatosAdicionales *string          `json:"datos_adicionales"`
}

func (r ActualizarPiezaRequest) Cambios() map[string]any {
	cambios := map[string]any{}
	if r.IDVehiculo != nil {
		cambios["id_vehiculo"] = *r.IDVehiculo
	}
	if r.TipoPieza != nil {
		cambios["tipo_pieza"] = *r.TipoPieza
	}
	if r.Descripcion != nil {
		cambios["descripcion"] = *r.Descripcion
	}
	if r.RefOEM != nil {
		cambios["ref_oem"] = *r.RefOEM
	}
	if r.Estado != nil {
		cambios["estado"] = *r.Estado
	}
	if r.PrecioVenta != nil {
		cambios["precio_venta"] = *r.PrecioVenta
	}
	if r.PrecioCoste != nil {
		cambios["precio_coste"] = *r.PrecioCoste
	}
	if r.DatosAdicionales != nil {
		cambios["datos_adicionales"] = *r.DatosAdicionales
	}
	return cambios
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type PiezaFilter struct {
	IDVehiculo *int64 `form:"id_vehiculo"`
	TipoPieza  string `form:"tipo_pieza"`
	Estado     string `form:"estado"`
	Page       int    `form:"page,default=1"   validate:"min=1"`
	Limit      int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PiezaListResponse struct {
	Data       []model.Pieza    `json:"data"`
	Paginacion model.Paginacion `json:"pagination"`
}
