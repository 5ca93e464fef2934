package model

import "time"

// EstadoIncidencia is the resolution state of an incident report.
type EstadoIncidencia string

const (
	IncidenciaAbierta  EstadoIncidencia = "abierta"
	IncidenciaEnCurso  EstadoIncidencia = "en_curso"
	IncidenciaResuelta EstadoIncidencia = "resuelta"
	IncidenciaCerrada  EstadoIncidencia = "cerrada"
)

func (e EstadoIncidencia) Valido() bool {
	switch e {
	case IncidenciaAbierta, IncidenciaEnCurso, IncidenciaResuelta, IncidenciaCerrada:
		return true
	}
	return false
}

// Incidencia is an incident report linked to a vehiculo or a pedido
// (damaged part on arrival, wrong shipment, documentation mismatch…).
type Incidencia struct {
	ID            int64            `json:"id"`
	IDVehiculo    *int64           `json:"id_vehiculo"`
	IDPedido      *int64           `json:"id_pedido"`
	Tipo          string           `json:"tipo"`
	Descripcion   string           `json:"descripcion"`
	Estado        EstadoIncidencia `json:"estado"`
	FechaCreacion time.Time        `json:"fecha_creacion"`
}

func (i Incidencia) Clave() int64 { return i.ID }
