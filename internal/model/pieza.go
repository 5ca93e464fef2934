package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstadoPieza is the physical condition of a dismantled part.
type EstadoPieza string

const (
	PiezaNueva      EstadoPieza = "nueva"
	PiezaUsada      EstadoPieza = "usada"
	PiezaDanada     EstadoPieza = "dañada"
	PiezaEnRevision EstadoPieza = "en_revision"
)

func (e EstadoPieza) Valido() bool {
	switch e {
	case PiezaNueva, PiezaUsada, PiezaDanada, PiezaEnRevision:
		return true
	}
	return false
}

// Pieza is a part extracted (or pending extraction) from a donor vehicle.
// DatosAdicionales carries vehicle-origin metadata duplicated from the
// Vehiculo as a JSON-encoded string — see ParsearDatosAdicionales for the
// tolerant decoding rules.
type Pieza struct {
	ID               int64           `json:"id"`
	IDVehiculo       *int64          `json:"id_vehiculo"`
	TipoPieza        string          `json:"tipo_pieza"`
	Descripcion      string          `json:"descripcion"`
	RefOEM           string          `json:"ref_oem"`
	Estado           EstadoPieza     `json:"estado"`
	PrecioVenta      decimal.Decimal `json:"precio_venta"`
	PrecioCoste      decimal.Decimal `json:"precio_coste"`
	DatosAdicionales string          `json:"datos_adicionales"`
	FechaCreacion    time.Time       `json:"fecha_creacion"`

	// Attached by enrichment, not an upstream field.
	Fotos []Foto `json:"fotos,omitempty"`
}

func (p Pieza) Clave() int64 { return p.ID }

// Origen decodes the vehicle-origin metadata embedded in DatosAdicionales.
// A missing or unrecoverable payload yields the zero value, never an error:
// catalog rendering must proceed regardless.
func (p Pieza) Origen() OrigenVehiculo {
	origen, err := ParsearDatosAdicionales(p.DatosAdicionales)
	if err != nil {
		return OrigenVehiculo{}
	}
	return origen
}

// FotoPrincipal returns the photo flagged es_principal, or the first photo
// when none is flagged, or nil when the pieza has no photos.
func (p Pieza) FotoPrincipal() *Foto {
	for i := range p.Fotos {
		if p.Fotos[i].EsPrincipal {
			return &p.Fotos[i]
		}
	}
	if len(p.Fotos) > 0 {
		return &p.Fotos[0]
	}
	return nil
}
