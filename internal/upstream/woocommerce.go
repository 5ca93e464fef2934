package upstream

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
)

// WooProducto is the payload the upstream's /woocommerce bridge expects when
// publishing a pieza to the WooCommerce store.
type WooProducto struct {
	IDPieza     int64           `json:"id_pieza"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Categoria   string          `json:"categoria"`
	ImagenURL   string          `json:"imagen_url,omitempty"`
}

// WooEstado reports the sync state of one pieza in the store.
type WooEstado struct {
	IDPieza         int64      `json:"id_pieza"`
	IDProductoWoo   *int64     `json:"id_producto_woo"`
	Sincronizado    bool       `json:"sincronizado"`
	UltimaSincronia *time.Time `json:"ultima_sincronia"`
	Error           string     `json:"error,omitempty"`
}

// WooAPI is the client for the upstream's WooCommerce bridge endpoints.
type WooAPI interface {
	Publicar(ctx context.Context, producto WooProducto) (*WooEstado, error)
	Estado(ctx context.Context, idPieza int64) (*WooEstado, error)
	Retirar(ctx context.Context, idPieza int64) error
}

type wooAPI struct{ c *Client }

func (c *Client) Woo() WooAPI { return &wooAPI{c: c} }

func (a *wooAPI) Publicar(ctx context.Context, producto WooProducto) (*WooEstado, error) {
	var estado WooEstado
	if err := a.c.do(ctx, http.MethodPost, "/woocommerce/productos", nil, producto, &estado); err != nil {
		return nil, err
	}
	return &estado, nil
}

func (a *wooAPI) Estado(ctx context.Context, idPieza int64) (*WooEstado, error) {
	var estado WooEstado
	path := fmt.Sprintf("/woocommerce/productos/%d", idPieza)
	if err := a.c.do(ctx, http.MethodGet, path, nil, nil, &estado); err != nil {
		return nil, err
	}
	return &estado, nil
}

func (a *wooAPI) Retirar(ctx context.Context, idPieza int64) error {
	return a.c.do(ctx, http.MethodDelete, fmt.Sprintf("/woocommerce/productos/%d", idPieza), nil, nil, nil)
}

// ProductoDesdePieza maps a pieza (plus its principal photo and origin
// metadata) to the store payload. Used by the woo sync worker.
func ProductoDesdePieza(p model.Pieza) WooProducto {
	producto := WooProducto{
		IDPieza:     p.ID,
		Nombre:      p.TipoPieza,
		Descripcion: p.Descripcion,
		Precio:      p.PrecioVenta,
		Categoria:   p.TipoPieza,
	}
	if origen := p.Origen(); origen.Marca != "" {
		producto.Nombre = fmt.Sprintf("%s %s %s", p.TipoPieza, origen.Marca, origen.Modelo)
	}
	if foto := p.FotoPrincipal(); foto != nil {
		producto.ImagenURL = foto.URL
	}
	return producto
}
