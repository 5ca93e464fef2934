package dto

import "github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"

type CrearIncidenciaRequest struct {
	IDVehiculo  *int64 `json:"id_vehiculo"`
	IDPedido    *int64 `json:"id_pedido"`
	Tipo        string `json:"tipo"        validate:"required,min=2,max=60"`
	Descripcion string `json:"descripcion" validate:"required,min=5"`
	// NotificarA, when set, triggers an email notification job.
	NotificarA string `json:"notificar_a" validate:"omitempty,email"`
}

type CambiarEstadoIncidenciaRequest struct {
	Estado string `json:"estado" validate:"required,oneof=abierta en_curso resuelta cerrada"`
}

type IncidenciaFilter struct {
	IDVehiculo *int64 `form:"id_vehiculo"`
	IDPedido   *int64 `form:"id_pedido"`
	Estado     string `form:"estado"`
	Page       int    `form:"page,default=1"   validate:"min=1"`
	Limit      int    `form:"limit,default=20" validate:"min=1,max=100"`
}

type IncidenciaListResponse struct {
	Data       []model.Incidencia `json:"data"`
	Paginacion model.Paginacion   `json:"pagination"`
}
