package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
)

// Pagina is one backend page of a resource: the data array plus a pagination
// block guaranteed to be normalized (Total/TotalPages always present).
type Pagina[T any] struct {
	Data       []T              `json:"data"`
	Paginacion model.Paginacion `json:"pagination"`
}

// listEnvelope mirrors the raw wire shape: the pagination block may be
// missing entirely when the endpoint was called without count=true.
type listEnvelope[T any] struct {
	Data       []T               `json:"data"`
	Paginacion *model.Paginacion `json:"pagination"`
}

// PaginacionQuery are the standard list parameters every upstream list
// endpoint accepts. Zero values mean "backend default".
type PaginacionQuery struct {
	Page  int
	Limit int
	Count bool
}

func (p PaginacionQuery) aplicar(q url.Values) {
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Count {
		q.Set("count", "true")
	}
}

// recurso implements the shared CRUD surface once; each resource API wraps
// it with its path and filter type.
type recurso[T any] struct {
	c    *Client
	path string
}

func (r recurso[T]) getAll(ctx context.Context, query url.Values, pag PaginacionQuery) (*Pagina[T], error) {
	if query == nil {
		query = url.Values{}
	}
	pag.aplicar(query)

	var env listEnvelope[T]
	if err := r.c.do(ctx, http.MethodGet, r.path, query, nil, &env); err != nil {
		return nil, err
	}

	// Normalize: endpoints called without count=true omit total/totalPages.
	bloque := model.Paginacion{Page: pag.Page, Limit: pag.Limit}
	if env.Paginacion != nil {
		bloque = *env.Paginacion
	}
	return &Pagina[T]{Data: env.Data, Paginacion: bloque.Normalizar(len(env.Data))}, nil
}

func (r recurso[T]) getByID(ctx context.Context, id int64) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodGet, r.item(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r recurso[T]) create(ctx context.Context, entidad any) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPost, r.path, nil, entidad, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r recurso[T]) update(ctx context.Context, id int64, cambios any) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPut, r.item(id), nil, cambios, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r recurso[T]) delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, r.item(id), nil, nil, nil)
}

func (r recurso[T]) item(id int64) string {
	return fmt.Sprintf("%s/%d", r.path, id)
}
