package model

import (
	"time"
)

// EstadoVehiculo is the lifecycle state of a vehicle in the dismantling flow.
type EstadoVehiculo string

const (
	VehiculoActivo     EstadoVehiculo = "activo"
	VehiculoProcesando EstadoVehiculo = "procesando"
	VehiculoDesguazado EstadoVehiculo = "desguazado"
	VehiculoBaja       EstadoVehiculo = "baja"
)

// Valido reports whether the estado is one of the known lifecycle states.
func (e EstadoVehiculo) Valido() bool {
	switch e {
	case VehiculoActivo, VehiculoProcesando, VehiculoDesguazado, VehiculoBaja:
		return true
	}
	return false
}

// Vehiculo is a donor vehicle registered for dismantling.
// Fotos and NumPiezas are not upstream fields: they are attached by the
// enrichment fan-out (the photo set is aggregated from the vehicle's piezas).
type Vehiculo struct {
	ID              int64          `json:"id"`
	Marca           string         `json:"marca"`
	Modelo          string         `json:"modelo"`
	Version         string         `json:"version"`
	AnioFabricacion int            `json:"anio_fabricacion"`
	TipoCombustible string         `json:"tipo_combustible"`
	Kilometros      int            `json:"kilometros"`
	Matricula       string         `json:"matricula"`
	VIN             string         `json:"vin"`
	IDCliente       *int64         `json:"id_cliente"`
	Estado          EstadoVehiculo `json:"estado"`
	FechaCreacion   time.Time      `json:"fecha_creacion"`

	Fotos     []Foto `json:"fotos,omitempty"`
	NumPiezas int    `json:"num_piezas,omitempty"`
}

func (v Vehiculo) Clave() int64 { return v.ID }
