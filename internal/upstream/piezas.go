package upstream

import (
	"context"
	"net/url"
	"strconv"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
)

type PiezaFiltro struct {
	IDVehiculo *int64
	TipoPieza  string
	Estado     string
}

func (f PiezaFiltro) query() url.Values {
	q := url.Values{}
	if f.IDVehiculo != nil {
		q.Set("id_vehiculo", strconv.FormatInt(*f.IDVehiculo, 10))
	}
	if f.TipoPieza != "" {
		q.Set("tipo_pieza", f.TipoPieza)
	}
	if f.Estado != "" {
		q.Set("estado", f.Estado)
	}
	return q
}

// PiezasAPI is the fetcher contract for /piezas.
type PiezasAPI interface {
	GetAll(ctx context.Context, filtro PiezaFiltro, pag PaginacionQuery) (*Pagina[model.Pieza], error)
	GetByID(ctx context.Context, id int64) (*model.Pieza, error)
	// PorVehiculo lists every pieza belonging to one donor vehicle —
	// the first level of the photo-enrichment fan-out.
	PorVehiculo(ctx context.Context, idVehiculo int64) ([]model.Pieza, error)
	Create(ctx context.Context, p *model.Pieza) (*model.Pieza, error)
	Update(ctx context.Context, id int64, cambios map[string]any) (*model.Pieza, error)
	Delete(ctx context.Context, id int64) error
}

type piezasAPI struct{ r recurso[model.Pieza] }

func (c *Client) Piezas() PiezasAPI {
	return &piezasAPI{r: recurso[model.Pieza]{c: c, path: "/piezas"}}
}

func (a *piezasAPI) GetAll(ctx context.Context, filtro PiezaFiltro, pag PaginacionQuery) (*Pagina[model.Pieza], error) {
	return a.r.getAll(ctx, filtro.query(), pag)
}

func (a *piezasAPI) GetByID(ctx context.Context, id int64) (*model.Pieza, error) {
	return a.r.getByID(ctx, id)
}

func (a *piezasAPI) PorVehiculo(ctx context.Context, idVehiculo int64) ([]model.Pieza, error) {
	pagina, err := a.r.getAll(ctx, PiezaFiltro{IDVehiculo: &idVehiculo}.query(), PaginacionQuery{})
	if err != nil {
		return nil, err
	}
	return pagina.Data, nil
}

func (a *piezasAPI) Create(ctx context.Context, p *model.Pieza) (*model.Pieza, error) {
	return a.r.create(ctx, p)
}

func (a *piezasAPI) Update(ctx context.Context, id int64, cambios map[string]any) (*model.Pieza, error) {
	return a.r.update(ctx, id, cambios)
}

func (a *piezasAPI) Delete(ctx context.Context, id int64) error {
	return a.r.delete(ctx, id)
}
