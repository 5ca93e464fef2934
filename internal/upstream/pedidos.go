package upstream

import (
	"context"
	"net/url"
	"strconv"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
)

type PedidoFiltro struct {
	IDCliente *int64
	IDPieza   *int64
	Estado    string
}

func (f PedidoFiltro) query() url.Values {
	q := url.Values{}
	if f.IDCliente != nil {
		q.Set("id_cliente", strconv.FormatInt(*f.IDCliente, 10))
	}
	if f.IDPieza != nil {
		q.Set("id_pieza", strconv.FormatInt(*f.IDPieza, 10))
	}
	if f.Estado != "" {
		q.Set("estado", f.Estado)
	}
	return q
}

// PedidosAPI is the fetcher contract for /pedidos.
type PedidosAPI interface {
	GetAll(ctx context.Context, filtro PedidoFiltro, pag PaginacionQuery) (*Pagina[model.Pedido], error)
	GetByID(ctx context.Context, id int64) (*model.Pedido, error)
	// PorPieza lists every pedido referencing one pieza — used for the
	// client-side lock check before deleting a pieza.
	PorPieza(ctx context.Context, idPieza int64) ([]model.Pedido, error)
	Create(ctx context.Context, p *model.Pedido) (*model.Pedido, error)
	Update(ctx context.Context, id int64, cambios map[string]any) (*model.Pedido, error)
	Delete(ctx context.Context, id int64) error
}

type pedidosAPI struct{ r recurso[model.Pedido] }

func (c *Client) Pedidos() PedidosAPI {
	return &pedidosAPI{r: recurso[model.Pedido]{c: c, path: "/pedidos"}}
}

func (a *pedidosAPI) GetAll(ctx context.Context, filtro PedidoFiltro, pag PaginacionQuery) (*Pagina[model.Pedido], error) {
	return a.r.getAll(ctx, filtro.query(), pag)
}

func (a *pedidosAPI) GetByID(ctx context.Context, id int64) (*model.Pedido, error) {
	return a.r.getByID(ctx, id)
}

func (a *pedidosAPI) PorPieza(ctx context.Context, idPieza int64) ([]model.Pedido, error) {
	pagina, err := a.r.getAll(ctx, PedidoFiltro{IDPieza: &idPieza}.query(), PaginacionQuery{})
	if err != nil {
		return nil, err
	}
	return pagina.Data, nil
}

func (a *pedidosAPI) Create(ctx context.Context, p *model.Pedido) (*model.Pedido, error) {
	return a.r.create(ctx, p)
}

func (a *pedidosAPI) Update(ctx context.Context, id int64, cambios map[string]any) (*model.Pedido, error) {
	return a.r.update(ctx, id, cambios)
}

func (a *pedidosAPI) Delete(ctx context.Context, id int64) error {
	return a.r.delete(ctx, id)
}
