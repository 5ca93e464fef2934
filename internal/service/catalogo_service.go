package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/dto"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/filtro"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/joiner"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/upstream"
)

// CatalogoService builds the public storefront page: one upstream page of
// sellable piezas, narrowed by the client-side filters, pagination
// recomputed from the filtered subset, principal photos attached and the
// cascading dropdown options derived from the same page.
type CatalogoService interface {
	Listar(ctx context.Context, filter dto.CatalogoFilter) (*dto.CatalogoResponse, error)
}

type catalogoService struct {
	piezas upstream.PiezasAPI
	fotos  upstream.FotosAPI
}

func NewCatalogoService(piezas upstream.PiezasAPI, fotos upstream.FotosAPI) CatalogoService {
	return &catalogoService{piezas: piezas, fotos: fotos}
}

func (s *catalogoService) Listar(ctx context.Context, filter dto.CatalogoFilter) (*dto.CatalogoResponse, error) {
	pagina, err := s.piezas.GetAll(ctx, upstream.PiezaFiltro{},
		upstream.PaginacionQuery{Page: filter.Page, Limit: filter.Limit, Count: true})
	if err != nil {
		return nil, err
	}

	f := filtro.FiltrosPieza{
		Busqueda:  filter.Busqueda,
		Categoria: filter.Categoria,
		Marca:     filter.Marca,
		Modelo:    filter.Modelo,
		Anio:      filter.Anio,
	}
	if precio, ok := parsePrecio(filter.PrecioMin); ok {
		f.PrecioMin = precio
	}
	if precio, ok := parsePrecio(filter.PrecioMax); ok {
		f.PrecioMax = precio
	}

	// Cascading options first: a selection that fell out of its narrowed
	// candidate set resets to the sentinel before filtering runs.
	opciones := filtro.Opciones(pagina.Data, &f)
	filtradas := filtro.FiltrarPiezas(pagina.Data, f)

	// Principal photo per card; a failed fetch leaves the card photoless.
	filtradas = joiner.Enriquecer(ctx, filtradas, 0, func(ctx context.Context, p model.Pieza) (model.Pieza, error) {
		fotos, err := s.fotos.PorPropietario(ctx, upstream.PropietarioFoto{IDPieza: &p.ID})
		if err != nil {
			return p, err
		}
		p.Fotos = fotos
		return p, nil
	})

	return &dto.CatalogoResponse{
		Data:       filtradas,
		Paginacion: filtro.RecalcularPaginacion(len(filtradas), pagina.Paginacion.Limit, pagina.Paginacion.Page),
		Opciones:   opciones,
		FiltrosAplicados: dto.CatalogoFiltrosEco{
			Busqueda:  f.Busqueda,
			Categoria: f.Categoria,
			Marca:     f.Marca,
			Modelo:    f.Modelo,
			Anio:      f.Anio,
		},
	}, nil
}

func parsePrecio(v string) (*decimal.Decimal, bool) {
	if v == "" {
		return nil, false
	}
	precio, err := decimal.NewFromString(v)
	if err != nil {
		return nil, false
	}
	return &precio, true
}
