package dto

import (
	"github.com/shopspring/decimal"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
)

type CrearPedidoRequest struct {
	IDCliente int64           `json:"id_cliente" validate:"required"`
	IDPieza   int64           `json:"id_pieza"   validate:"required"`
	Total     decimal.Decimal `json:"total"      validate:"required"`
}

type CambiarEstadoPedidoRequest struct {
	Estado string `json:"estado" validate:"required,oneof=pendiente pagado enviado entregado cancelado devuelto"`
}

type PedidoFilter struct {
	IDCliente *int64 `form:"id_cliente"`
	IDPieza   *int64 `form:"id_pieza"`
	Estado    string `form:"estado"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=20" validate:"min=1,max=100"`
}

type PedidoListResponse struct {
	Data       []model.Pedido   `json:"data"`
	Paginacion model.Paginacion `json:"pagination"`
}
