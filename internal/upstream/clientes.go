package upstream

import (
	"context"
	"net/url"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
)

type ClienteFiltro struct {
	TipoCliente string
}

func (f ClienteFiltro) query() url.Values {
	q := url.Values{}
	if f.TipoCliente != "" {
		q.Set("tipo_cliente", f.TipoCliente)
	}
	return q
}

// ClientesAPI is the fetcher contract for /clientes.
type ClientesAPI interface {
	GetAll(ctx context.Context, filtro ClienteFiltro, pag PaginacionQuery) (*Pagina[model.Cliente], error)
	GetByID(ctx context.Context, id int64) (*model.Cliente, error)
	Create(ctx context.Context, c *model.Cliente) (*model.Cliente, error)
	Update(ctx context.Context, id int64, cambios map[string]any) (*model.Cliente, error)
	Delete(ctx context.Context, id int64) error
}

type clientesAPI struct{ r recurso[model.Cliente] }

func (c *Client) Clientes() ClientesAPI {
	return &clientesAPI{r: recurso[model.Cliente]{c: c, path: "/clientes"}}
}

func (a *clientesAPI) GetAll(ctx context.Context, filtro ClienteFiltro, pag PaginacionQuery) (*Pagina[model.Cliente], error) {
	return a.r.getAll(ctx, filtro.query(), pag)
}

func (a *clientesAPI) GetByID(ctx context.Context, id int64) (*model.Cliente, error) {
	return a.r.getByID(ctx, id)
}

func (a *clientesAPI) Create(ctx context.Context, cl *model.Cliente) (*model.Cliente, error) {
	return a.r.create(ctx, cl)
}

func (a *clientesAPI) Update(ctx context.Context, id int64, cambios map[string]any) (*model.Cliente, error) {
	return a.r.update(ctx, id, cambios)
}

func (a *clientesAPI) Delete(ctx context.Context, id int64) error {
	return a.r.delete(ctx, id)
}
