package upstream

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
)

// PropietarioFoto identifies the entity a foto (or documento) belongs to.
// Exactly one of the two ids must be set.
type PropietarioFoto struct {
	IDPieza    *int64
	IDVehiculo *int64
}

func (p PropietarioFoto) query() url.Values {
	q := url.Values{}
	if p.IDPieza != nil {
		q.Set("id_pieza", strconv.FormatInt(*p.IDPieza, 10))
	}
	if p.IDVehiculo != nil {
		q.Set("id_vehiculo", strconv.FormatInt(*p.IDVehiculo, 10))
	}
	return q
}

func (p PropietarioFoto) campos() map[string]string {
	campos := map[string]string{}
	if p.IDPieza != nil {
		campos["id_pieza"] = strconv.FormatInt(*p.IDPieza, 10)
	}
	if p.IDVehiculo != nil {
		campos["id_vehiculo"] = strconv.FormatInt(*p.IDVehiculo, 10)
	}
	return campos
}

// FotosAPI is the fetcher contract for /fotos, including multipart upload.
type FotosAPI interface {
	PorPropietario(ctx context.Context, owner PropietarioFoto) ([]model.Foto, error)
	GetByID(ctx context.Context, id int64) (*model.Foto, error)
	// Subir uploads the file and returns the created record with its public URL.
	Subir(ctx context.Context, owner PropietarioFoto, nombre string, archivo io.Reader) (*model.Foto, error)
	Update(ctx context.Context, id int64, cambios map[string]any) (*model.Foto, error)
	Delete(ctx context.Context, id int64) error
}

type fotosAPI struct{ r recurso[model.Foto] }

func (c *Client) Fotos() FotosAPI {
	return &fotosAPI{r: recurso[model.Foto]{c: c, path: "/fotos"}}
}

func (a *fotosAPI) PorPropietario(ctx context.Context, owner PropietarioFoto) ([]model.Foto, error) {
	pagina, err := a.r.getAll(ctx, owner.query(), PaginacionQuery{})
	if err != nil {
		return nil, err
	}
	return pagina.Data, nil
}

func (a *fotosAPI) GetByID(ctx context.Context, id int64) (*model.Foto, error) {
	return a.r.getByID(ctx, id)
}

func (a *fotosAPI) Subir(ctx context.Context, owner PropietarioFoto, nombre string, archivo io.Reader) (*model.Foto, error) {
	var foto model.Foto
	if err := a.r.c.subir(ctx, a.r.path, owner.campos(), "archivo", nombre, archivo, &foto); err != nil {
		return nil, err
	}
	return &foto, nil
}

func (a *fotosAPI) Update(ctx context.Context, id int64, cambios map[string]any) (*model.Foto, error) {
	return a.r.update(ctx, id, cambios)
}

func (a *fotosAPI) Delete(ctx context.Context, id int64) error {
	return a.r.delete(ctx, id)
}
