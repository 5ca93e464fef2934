package upstream

import (
	"context"
	"net/url"
	"strconv"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
)

// VehiculoFiltro are the list filters the upstream supports server-side.
// Anything beyond these (free-text search, cascading option sets) is applied
// client-side by internal/filtro.
type VehiculoFiltro struct {
	Estado    string
	IDCliente *int64
}

func (f VehiculoFiltro) query() url.Values {
	q := url.Values{}
	if f.Estado != "" {
		q.Set("estado", f.Estado)
	}
	if f.IDCliente != nil {
		q.Set("id_cliente", strconv.FormatInt(*f.IDCliente, 10))
	}
	return q
}

// VehiculosAPI is the fetcher contract for /vehiculos. Services depend on
// this interface, not on the HTTP implementation, enabling stub-based tests.
type VehiculosAPI interface {
	GetAll(ctx context.Context, filtro VehiculoFiltro, pag PaginacionQuery) (*Pagina[model.Vehiculo], error)
	GetByID(ctx context.Context, id int64) (*model.Vehiculo, error)
	Create(ctx context.Context, v *model.Vehiculo) (*model.Vehiculo, error)
	Update(ctx context.Context, id int64, cambios map[string]any) (*model.Vehiculo, error)
	Delete(ctx context.Context, id int64) error
}

type vehiculosAPI struct{ r recurso[model.Vehiculo] }

func (c *Client) Vehiculos() VehiculosAPI {
	return &vehiculosAPI{r: recurso[model.Vehiculo]{c: c, path: "/vehiculos"}}
}

func (a *vehiculosAPI) GetAll(ctx context.Context, filtro VehiculoFiltro, pag PaginacionQuery) (*Pagina[model.Vehiculo], error) {
	return a.r.getAll(ctx, filtro.query(), pag)
}

func (a *vehiculosAPI) GetByID(ctx context.Context, id int64) (*model.Vehiculo, error) {
	return a.r.getByID(ctx, id)
}

func (a *vehiculosAPI) Create(ctx context.Context, v *model.Vehiculo) (*model.Vehiculo, error) {
	return a.r.create(ctx, v)
}

func (a *vehiculosAPI) Update(ctx context.Context, id int64, cambios map[string]any) (*model.Vehiculo, error) {
	return a.r.update(ctx, id, cambios)
}

func (a *vehiculosAPI) Delete(ctx context.Context, id int64) error {
	return a.r.delete(ctx, id)
}
