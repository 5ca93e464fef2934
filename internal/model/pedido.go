package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstadoPedido is the fulfilment state of an order.
type EstadoPedido string

const (
	PedidoPendiente EstadoPedido = "pendiente"
	PedidoPagado    EstadoPedido = "pagado"
	PedidoEnviado   EstadoPedido = "enviado"
	PedidoEntregado EstadoPedido = "entregado"
	PedidoCancelado EstadoPedido = "cancelado"
	PedidoDevuelto  EstadoPedido = "devuelto"
)

func (e EstadoPedido) Valido() bool {
	switch e {
	case PedidoPendiente, PedidoPagado, PedidoEnviado, PedidoEntregado, PedidoCancelado, PedidoDevuelto:
		return true
	}
	return false
}

// Terminal reports whether the pedido can no longer change the pieza it
// references. A pieza appearing in any non-terminal pedido is locked and
// must not be deleted.
func (e EstadoPedido) Terminal() bool {
	switch e {
	case PedidoEntregado, PedidoCancelado, PedidoDevuelto:
		return true
	}
	return false
}

// Pedido is a storefront order for a single pieza.
type Pedido struct {
	ID          int64           `json:"id"`
	IDCliente   int64           `json:"id_cliente"`
	IDPieza     int64           `json:"id_pieza"`
	Estado      EstadoPedido    `json:"estado"`
	Total       decimal.Decimal `json:"total"`
	FechaPedido time.Time       `json:"fecha_pedido"`
}

func (p Pedido) Clave() int64 { return p.ID }
