package upstream

import (
	"context"
	"io"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
)

// DocumentosAPI is the fetcher contract for /documentos. Documents are
// always uploaded files; this service never generates them.
type DocumentosAPI interface {
	PorPropietario(ctx context.Context, owner PropietarioFoto) ([]model.Documento, error)
	GetByID(ctx context.Context, id int64) (*model.Documento, error)
	Subir(ctx context.Context, owner PropietarioFoto, tipoDocumento, nombre string, archivo io.Reader) (*model.Documento, error)
	Delete(ctx context.Context, id int64) error
}

type documentosAPI struct{ r recurso[model.Documento] }

func (c *Client) Documentos() DocumentosAPI {
	return &documentosAPI{r: recurso[model.Documento]{c: c, path: "/documentos"}}
}

func (a *documentosAPI) PorPropietario(ctx context.Context, owner PropietarioFoto) ([]model.Documento, error) {
	pagina, err := a.r.getAll(ctx, owner.query(), PaginacionQuery{})
	if err != nil {
		return nil, err
	}
	return pagina.Data, nil
}

func (a *documentosAPI) GetByID(ctx context.Context, id int64) (*model.Documento, error) {
	return a.r.getByID(ctx, id)
}

func (a *documentosAPI) Subir(ctx context.Context, owner PropietarioFoto, tipoDocumento, nombre string, archivo io.Reader) (*model.Documento, error) {
	campos := owner.campos()
	if tipoDocumento != "" {
		campos["tipo_documento"] = tipoDocumento
	}
	var doc model.Documento
	if err := a.r.c.subir(ctx, a.r.path, campos, "archivo", nombre, archivo, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (a *documentosAPI) Delete(ctx context.Context, id int64) error {
	return a.r.delete(ctx, id)
}
