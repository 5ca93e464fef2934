package upstream

import (
	"context"
	"net/url"
	"strconv"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
)

type IncidenciaFiltro struct {
	IDVehiculo *int64
	IDPedido   *int64
	Estado     string
}

func (f IncidenciaFiltro) query() url.Values {
	q := url.Values{}
	if f.IDVehiculo != nil {
		q.Set("id_vehiculo", strconv.FormatInt(*f.IDVehiculo, 10))
	}
	if f.IDPedido != nil {
		q.Set("id_pedido", strconv.FormatInt(*f.IDPedido, 10))
	}
	if f.Estado != "" {
		q.Set("estado", f.Estado)
	}
	return q
}

// IncidenciasAPI is the fetcher contract for /incidencias.
type IncidenciasAPI interface {
	GetAll(ctx context.Context, filtro IncidenciaFiltro, pag PaginacionQuery) (*Pagina[model.Incidencia], error)
	GetByID(ctx context.Context, id int64) (*model.Incidencia, error)
	Create(ctx context.Context, i *model.Incidencia) (*model.Incidencia, error)
	Update(ctx context.Context, id int64, cambios map[string]any) (*model.Incidencia, error)
	Delete(ctx context.Context, id int64) error
}

type incidenciasAPI struct{ r recurso[model.Incidencia] }

func (c *Client) Incidencias() IncidenciasAPI {
	return &incidenciasAPI{r: recurso[model.Incidencia]{c: c, path: "/incidencias"}}
}

func (a *incidenciasAPI) GetAll(ctx context.Context, filtro IncidenciaFiltro, pag PaginacionQuery) (*Pagina[model.Incidencia], error) {
	return a.r.getAll(ctx, filtro.query(), pag)
}

func (a *incidenciasAPI) GetByID(ctx context.Context, id int64) (*model.Incidencia, error) {
	return a.r.getByID(ctx, id)
}

func (a *incidenciasAPI) Create(ctx context.Context, i *model.Incidencia) (*model.Incidencia, error) {
	return a.r.create(ctx, i)
}

func (a *incidenciasAPI) Update(ctx context.Context, id int64, cambios map[string]any) (*model.Incidencia, error) {
	return a.r.update(ctx, id, cambios)
}

func (a *incidenciasAPI) Delete(ctx context.Context, id int64) error {
	return a.r.delete(ctx, id)
}
