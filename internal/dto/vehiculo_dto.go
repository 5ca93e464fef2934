package dto

import (
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearVehiculoRequest struct {
	Marca           string `json:"marca"            validate:"required,min=1,max=60"`
	Modelo          string `json:"modelo"           validate:"required,min=1,max=60"`
	Version         string `json:"version"`
	AnioFabricacion int    `json:"anio_fabricacion" validate:"required,min=1900,max=2100"`
	TipoCombustible string `json:"tipo_combustible"`
	Kilometros      int    `json:"kilometros"       validate:"min=0"`
	Matricula       string `json:"matricula"        validate:"required"`
	VIN             string `json:"vin"              validate:"required,min=11,max=17"`
	IDCliente       *int64 `json:"id_cliente"`
	Estado          string `json:"estado"           validate:"omitempty,oneof=activo procesando desguazado baja"`
}

type ActualizarVehiculoRequest struct {
	Marca           *string `json:"marca"            validate:"omitempty,min=1,max=60"`
	Modelo          *string `json:"modelo"           validate:"omitempty,min=1,max=60"`
	Version         *string `json:"version"`
	AnioFabricacion *int    `json:"anio_fabricacion" validate:"omitempty,min=1900,max=2100"`
	TipoCombustible *string `json:"tipo_combustible"`
	Kilometros      *int    `json:"kilometros"       validate:"omitempty,min=0"`
	Matricula       *string `json:"matricula"`
	VIN             *string `json:"vin"              validate:"omitempty,min=11,max=17"`
	IDCliente       *int64  `json:"id_cliente"`
	Estado          *string `json:"estado"           validate:"omitempty,oneof=activo procesando desguazado baja"`
}

// Cambios flattens the set fields into the partial-update payload the
// upstream expects on PUT.
func (r ActualizarVehiculoRequest) Cambios() map[string]any {
	cambios := map[string]any{}
	if r.Marca != nil {
		cambios["marca"] = *r.Marca
	}
	if r.Modelo != nil {
		cambios["modelo"] = *r.Modelo
	}
	if r.Version != nil {
		cambios["version"] = *r.Version
	}
	if r.AnioFabricacion != nil {
		cambios["anio_fabricacion"] = *r.AnioFabricacion
	}
	if r.TipoCombustible != nil {
		cambios["tipo_combustible"] = *r.TipoCombustible
	}
	if r.Kilometros != nil {
		cambios["kilometros"] = *r.Kilometros
	}
	if r.Matricula != nil {
		cambios["matricula"] = *r.Matricula
	}
	if r.VIN != nil {
		cambios["vin"] = *r.VIN
	}
	if r.IDCliente != nil {
		cambios["id_cliente"] = *r.IDCliente
	}
	if r.Estado != nil {
		cambios["estado"] = *r.Estado
	}
	return cambios
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type VehiculoFilter struct {
	Busqueda    string `form:"busqueda"`
	Marca       string `form:"marca"`
	Modelo      string `form:"modelo"`
	Combustible string `form:"combustible"`
	Estado      string `form:"estado"`
	AnioDesde   int    `form:"anio_desde"`
	AnioHasta   int    `form:"anio_hasta"`
	Page        int    `form:"page,default=1"   validate:"min=1"`
	Limit       int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type VehiculoListResponse struct {
	Data       []model.Vehiculo `json:"data"`
	Paginacion model.Paginacion `json:"pagination"`
	// DesdeCache marks a response served from the persisted snapshot after
	// an upstream failure.
	DesdeCache bool `json:"desde_cache,omitempty"`
}
