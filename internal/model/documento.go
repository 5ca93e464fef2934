package model

import "time"

// Documento is an uploaded file (ficha técnica, certificado de destrucción,
// factura de compra…) attached to a vehiculo or a pieza.
type Documento struct {
	ID            int64     `json:"id"`
	IDVehiculo    *int64    `json:"id_vehiculo"`
	IDPieza       *int64    `json:"id_pieza"`
	Nombre        string    `json:"nombre"`
	TipoDocumento string    `json:"tipo_documento"`
	URL           string    `json:"url"`
	FechaSubida   time.Time `json:"fecha_subida"`
}

func (d Documento) Clave() int64 { return d.ID }
