package model

import "time"

// Foto is an image owned by either a pieza or a vehiculo (exactly one of the
// two owner ids is set). At most one foto per owner carries EsPrincipal=true;
// the invariant is enforced by the marcar-principal operation, which flips
// all siblings to false.
type Foto struct {
	ID          int64     `json:"id"`
	IDPieza     *int64    `json:"id_pieza"`
	IDVehiculo  *int64    `json:"id_vehiculo"`
	Nombre      string    `json:"nombre"`
	URL         string    `json:"url"`
	EsPrincipal bool      `json:"es_principal"`
	FechaSubida time.Time `json:"fecha_subida"`
}

func (f Foto) Clave() int64 { return f.ID }
