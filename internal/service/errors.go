package service

import "errors"

// Business-rule errors surfaced to the UI as error toasts, never retried.
var (
	// ErrPiezaBloqueada: the pieza appears in a non-terminal pedido; the
	// delete is rejected before any upstream request is issued.
	ErrPiezaBloqueada = errors.New("la pieza está reservada por un pedido activo y no puede eliminarse")

	// ErrVehiculoConPiezas: the upstream rejected the delete because piezas
	// still reference the vehicle.
	ErrVehiculoConPiezas = errors.New("el vehículo tiene piezas asociadas y no puede eliminarse")

	ErrEstadoInvalido     = errors.New("estado no válido")
	ErrPropietarioAmbiguo = errors.New("debe indicarse exactamente un propietario (id_pieza o id_vehiculo)")
	ErrClienteIncompleto  = errors.New("faltan datos de identificación para el tipo de cliente")
	ErrTransicionPedido   = errors.New("transición de estado de pedido no permitida")
	ErrFotoSinPropietario = errors.New("la foto no tiene propietario")
)
